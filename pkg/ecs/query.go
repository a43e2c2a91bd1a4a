package ecs

import "reflect"

// GetComponent 获取实体的 T 类型组件（泛型封装，免去调用方的类型断言）
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponentByType(id, reflect.TypeOf(zero))
	if !ok {
		return zero, false
	}
	return comp.(T), true
}

// MustGetComponent 获取实体的 T 类型组件，组件不存在时返回零值
// 仅在调用方确定组件存在时使用
func MustGetComponent[T any](em *EntityManager, id EntityID) T {
	comp, _ := GetComponent[T](em, id)
	return comp
}

// GetEntitiesWith1 查询拥有 T1 组件的所有实体
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	var z1 T1
	return em.GetEntitiesWith(reflect.TypeOf(z1))
}

// GetEntitiesWith2 查询同时拥有 T1 和 T2 组件的所有实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	var z1 T1
	var z2 T2
	return em.GetEntitiesWith(reflect.TypeOf(z1), reflect.TypeOf(z2))
}

// GetEntitiesWith3 查询同时拥有 T1、T2 和 T3 组件的所有实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	var z1 T1
	var z2 T2
	var z3 T3
	return em.GetEntitiesWith(reflect.TypeOf(z1), reflect.TypeOf(z2), reflect.TypeOf(z3))
}
