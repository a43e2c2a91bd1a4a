package ecs

import (
	"reflect"
	"testing"
)

type posComponent struct {
	X, Y float64
}

type tagComponent struct {
	Name string
}

func TestCreateEntityAssignsUniqueIDs(t *testing.T) {
	em := NewEntityManager()

	a := em.CreateEntity()
	b := em.CreateEntity()

	if a == 0 || b == 0 {
		t.Error("entity ID 0 is reserved as invalid")
	}
	if a == b {
		t.Errorf("duplicate entity IDs: %d", a)
	}
	if em.EntityCount() != 2 {
		t.Errorf("EntityCount = %d, want 2", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &posComponent{X: 1, Y: 2})

	pos, ok := GetComponent[*posComponent](em, id)
	if !ok {
		t.Fatal("component not found")
	}
	if pos.X != 1 || pos.Y != 2 {
		t.Errorf("component = %+v, want {1 2}", pos)
	}

	if _, ok := GetComponent[*tagComponent](em, id); ok {
		t.Error("found component that was never added")
	}
}

func TestDestroyIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &posComponent{})

	em.DestroyEntity(id)

	// 标记后、压缩前实体仍然存活，帧内的其它系统还能访问它
	if !em.IsAlive(id) {
		t.Error("entity removed before RemoveMarkedEntities")
	}

	em.RemoveMarkedEntities()
	if em.IsAlive(id) {
		t.Error("entity still alive after RemoveMarkedEntities")
	}
	if em.EntityCount() != 0 {
		t.Errorf("EntityCount = %d, want 0", em.EntityCount())
	}
}

func TestDoubleDestroyIsSafe(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.DestroyEntity(id)
	em.DestroyEntity(id)
	em.RemoveMarkedEntities()

	if em.IsAlive(id) {
		t.Error("entity still alive")
	}
	// 压缩后再次压缩不应 panic
	em.RemoveMarkedEntities()
}

func TestRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &posComponent{})

	em.RemoveComponent(id, reflect.TypeOf(&posComponent{}))

	if _, ok := GetComponent[*posComponent](em, id); ok {
		t.Error("component still present after removal")
	}
	if !em.IsAlive(id) {
		t.Error("removing a component must not destroy the entity")
	}
}

func TestGetEntitiesWithFiltersByComponentSet(t *testing.T) {
	em := NewEntityManager()

	both := em.CreateEntity()
	em.AddComponent(both, &posComponent{})
	em.AddComponent(both, &tagComponent{Name: "both"})

	posOnly := em.CreateEntity()
	em.AddComponent(posOnly, &posComponent{})

	em.CreateEntity() // 无组件

	if got := GetEntitiesWith1[*posComponent](em); len(got) != 2 {
		t.Errorf("entities with pos = %d, want 2", len(got))
	}
	got := GetEntitiesWith2[*posComponent, *tagComponent](em)
	if len(got) != 1 || got[0] != both {
		t.Errorf("entities with pos+tag = %v, want [%d]", got, both)
	}
}

func TestMustGetComponentReturnsZeroWhenMissing(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if comp := MustGetComponent[*posComponent](em, id); comp != nil {
		t.Errorf("MustGetComponent on missing component = %v, want nil", comp)
	}
}
