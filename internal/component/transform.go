// internal/component/transform.go
package component

import "github.com/go-gl/mathgl/mgl64"

// Transform хранит локальные позицию и масштаб относительно родителя
type Transform struct {
	Position mgl64.Vec3
	Scale    mgl64.Vec3
}

// NewTransform returns an identity transform.
func NewTransform() *Transform {
	return &Transform{Scale: mgl64.Vec3{1, 1, 1}}
}
