// internal/interfaces/scene.go
package interfaces

import (
	"go-range-marker/internal/component"
	"go-range-marker/internal/types"

	"github.com/go-gl/mathgl/mgl64"
)

// SceneGraph is everything the marker needs from the host engine.
type SceneGraph interface {
	NewNode(name string) types.EntityID
	Instantiate(prefab *component.Prefab) types.EntityID
	SetParent(child, parent types.EntityID)
	SetLocalPosition(id types.EntityID, pos mgl64.Vec3)
	SetLocalScale(id types.EntityID, scale mgl64.Vec3)
	SetActive(id types.EntityID, active bool)
	// Destroy removes id together with all of its children.
	Destroy(id types.EntityID)
}
