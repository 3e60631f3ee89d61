// internal/types/types.go
package types

// EntityID — идентификатор сущности сцены. Ноль не выдаётся никогда.
type EntityID uint64

// NoEntity is the zero handle.
const NoEntity EntityID = 0
