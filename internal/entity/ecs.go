// internal/entity/ecs.go
package entity

import (
	"go-range-marker/internal/component"
	"go-range-marker/internal/types"

	"github.com/go-gl/mathgl/mgl64"
)

// ECS — хранилище компонентов сцены. Реализует interfaces.SceneGraph.
type ECS struct {
	NextID      types.EntityID
	Names       map[types.EntityID]string
	Transforms  map[types.EntityID]*component.Transform
	Parents     map[types.EntityID]types.EntityID
	Children    map[types.EntityID][]types.EntityID
	Active      map[types.EntityID]bool
	Renderables map[types.EntityID]*component.Renderable
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Names:       make(map[types.EntityID]string),
		Transforms:  make(map[types.EntityID]*component.Transform),
		Parents:     make(map[types.EntityID]types.EntityID),
		Children:    make(map[types.EntityID][]types.EntityID),
		Active:      make(map[types.EntityID]bool),
		Renderables: make(map[types.EntityID]*component.Renderable),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// NewNode создаёт пустой активный узел с единичным трансформом
func (ecs *ECS) NewNode(name string) types.EntityID {
	id := ecs.NewEntity()
	ecs.Names[id] = name
	ecs.Transforms[id] = component.NewTransform()
	ecs.Active[id] = true
	return id
}

// Instantiate клонирует префаб в новый узел. Nil-префаб даёт узел без Renderable.
func (ecs *ECS) Instantiate(prefab *component.Prefab) types.EntityID {
	if prefab == nil {
		return ecs.NewNode("")
	}
	id := ecs.NewNode(prefab.Name)
	r := prefab.Renderable
	ecs.Renderables[id] = &r
	return id
}

// SetParent перевешивает child под parent. NoEntity отвязывает узел.
func (ecs *ECS) SetParent(child, parent types.EntityID) {
	if !ecs.Exists(child) || child == parent {
		return
	}
	if old, ok := ecs.Parents[child]; ok {
		ecs.Children[old] = removeID(ecs.Children[old], child)
		delete(ecs.Parents, child)
	}
	if parent == types.NoEntity || !ecs.Exists(parent) {
		return
	}
	ecs.Parents[child] = parent
	ecs.Children[parent] = append(ecs.Children[parent], child)
}

func (ecs *ECS) SetLocalPosition(id types.EntityID, pos mgl64.Vec3) {
	if t, ok := ecs.Transforms[id]; ok {
		t.Position = pos
	}
}

func (ecs *ECS) SetLocalScale(id types.EntityID, scale mgl64.Vec3) {
	if t, ok := ecs.Transforms[id]; ok {
		t.Scale = scale
	}
}

func (ecs *ECS) SetActive(id types.EntityID, active bool) {
	if _, ok := ecs.Active[id]; ok {
		ecs.Active[id] = active
	}
}

// Destroy удаляет сущность и всё её поддерево
func (ecs *ECS) Destroy(id types.EntityID) {
	if !ecs.Exists(id) {
		return
	}
	for _, child := range append([]types.EntityID(nil), ecs.Children[id]...) {
		ecs.Destroy(child)
	}
	if parent, ok := ecs.Parents[id]; ok {
		ecs.Children[parent] = removeID(ecs.Children[parent], id)
	}
	delete(ecs.Names, id)
	delete(ecs.Transforms, id)
	delete(ecs.Parents, id)
	delete(ecs.Children, id)
	delete(ecs.Active, id)
	delete(ecs.Renderables, id)
}

// Exists reports whether id is alive.
func (ecs *ECS) Exists(id types.EntityID) bool {
	_, ok := ecs.Transforms[id]
	return ok
}

// Len returns the number of live entities.
func (ecs *ECS) Len() int {
	return len(ecs.Transforms)
}

// ActiveInHierarchy is true when id and every ancestor are active.
func (ecs *ECS) ActiveInHierarchy(id types.EntityID) bool {
	for cur := id; ; {
		active, ok := ecs.Active[cur]
		if !ok || !active {
			return false
		}
		parent, hasParent := ecs.Parents[cur]
		if !hasParent {
			return true
		}
		cur = parent
	}
}

// WorldTransform складывает цепочку родителей: позиция масштабируется
// масштабом родителя, масштабы перемножаются. Вращений нет.
func (ecs *ECS) WorldTransform(id types.EntityID) (pos, scale mgl64.Vec3) {
	t, ok := ecs.Transforms[id]
	if !ok {
		return mgl64.Vec3{}, mgl64.Vec3{}
	}
	pos, scale = t.Position, t.Scale
	for parent, ok := ecs.Parents[id]; ok; parent, ok = ecs.Parents[parent] {
		pt := ecs.Transforms[parent]
		pos = mul(pos, pt.Scale).Add(pt.Position)
		scale = mul(scale, pt.Scale)
	}
	return pos, scale
}

// WorldPosition returns only the position part of WorldTransform.
func (ecs *ECS) WorldPosition(id types.EntityID) mgl64.Vec3 {
	pos, _ := ecs.WorldTransform(id)
	return pos
}

func mul(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func removeID(ids []types.EntityID, id types.EntityID) []types.EntityID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
