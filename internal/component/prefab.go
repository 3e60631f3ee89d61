// internal/component/prefab.go
package component

// Prefab describes the visual cloned for every marker node.
type Prefab struct {
	Name       string
	Renderable Renderable
}
