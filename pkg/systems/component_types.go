package systems

import (
	"reflect"

	"github.com/gonewx/tolik/pkg/components"
)

// 高频查询的组件类型，避免每帧重复 reflect.TypeOf
var (
	playerComponentType     = reflect.TypeOf(&components.PlayerComponent{})
	projectileComponentType = reflect.TypeOf(&components.ProjectileComponent{})
)
