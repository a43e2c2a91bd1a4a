// Package dungeon 实现程序生成的地牢：房间图、门状态机和难度曲线
package dungeon

import (
	"fmt"
	"math/rand"

	"github.com/gonewx/tolik/pkg/config"
	"github.com/gonewx/tolik/pkg/utils"
)

// Direction 门的方向
type Direction int

const (
	DirTop Direction = iota
	DirBottom
	DirLeft
	DirRight
)

// Directions 四个方向的固定列表，生成器按需打乱副本
var Directions = [4]Direction{DirTop, DirBottom, DirLeft, DirRight}

// Opposite 返回相反方向
func (d Direction) Opposite() Direction {
	switch d {
	case DirTop:
		return DirBottom
	case DirBottom:
		return DirTop
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Offset 返回该方向在网格上的位移
func (d Direction) Offset() (int, int) {
	switch d {
	case DirTop:
		return 0, -1
	case DirBottom:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// String 实现 fmt.Stringer
func (d Direction) String() string {
	switch d {
	case DirTop:
		return "top"
	case DirBottom:
		return "bottom"
	case DirLeft:
		return "left"
	default:
		return "right"
	}
}

// RoomType 房间类型
type RoomType int

const (
	// RoomStart 起始房间，出生即安全
	RoomStart RoomType = iota
	// RoomNormal 普通战斗房间
	RoomNormal
	// RoomBoss Boss 房间，每层恰好一个
	RoomBoss
	// RoomShop 商店房间
	RoomShop
	// RoomTreasure 宝藏房间
	RoomTreasure
)

// String 实现 fmt.Stringer
func (t RoomType) String() string {
	switch t {
	case RoomStart:
		return "start"
	case RoomNormal:
		return "normal"
	case RoomBoss:
		return "boss"
	case RoomShop:
		return "shop"
	default:
		return "treasure"
	}
}

// Door 连接相邻房间的门
// 不变量: Locked 为 true 时 Open 必为 false
type Door struct {
	Direction Direction
	Locked    bool
	Open      bool
	Target    GridPos // 对面房间的网格坐标
}

// Lock 锁门（同时强制关闭）
func (d *Door) Lock() {
	d.Locked = true
	d.Open = false
}

// Unlock 解锁并打开门
func (d *Door) Unlock() {
	d.Locked = false
	d.Open = true
}

// TryOpen 尝试开门，锁着时无效
func (d *Door) TryOpen() {
	if !d.Locked {
		d.Open = true
	}
}

// Room 地牢中的单个房间
type Room struct {
	Pos        GridPos
	Type       RoomType
	Doors      map[Direction]*Door
	Cleared    bool    // 首次肃清后永久为 true
	Visited    bool    // 首次进入后永久为 true
	EnemyCount int     // 该房间应生成的敌对单位数
	Difficulty float64 // 难度系数，随离起点的距离增长
}

// NewRoom 创建房间
// 起始/商店/宝藏房间没有战斗关卡，出生即视为已肃清
func NewRoom(pos GridPos, roomType RoomType) *Room {
	r := &Room{
		Pos:   pos,
		Type:  roomType,
		Doors: make(map[Direction]*Door),
	}
	if roomType == RoomStart || roomType == RoomShop || roomType == RoomTreasure {
		r.Cleared = true
	}
	return r
}

// AddDoor 在指定方向添加门
// 已肃清房间的门直接处于打开状态
func (r *Room) AddDoor(direction Direction, target GridPos) {
	door := &Door{Direction: direction, Target: target}
	if r.Cleared {
		door.Open = true
	}
	r.Doors[direction] = door
}

// HasDoor 检查指定方向是否有门
func (r *Room) HasDoor(direction Direction) bool {
	_, ok := r.Doors[direction]
	return ok
}

// GetDoor 获取指定方向的门，不存在时返回 nil
func (r *Room) GetDoor(direction Direction) *Door {
	return r.Doors[direction]
}

// IsCombatRoom 该房间是否有战斗关卡（普通房和Boss房）
func (r *Room) IsCombatRoom() bool {
	return r.Type == RoomNormal || r.Type == RoomBoss
}

// Enter 玩家进入房间
// 未肃清的战斗房间锁上所有门，防止中途退出或跳过Boss
func (r *Room) Enter() {
	r.Visited = true

	if r.IsCombatRoom() && !r.Cleared {
		for _, door := range r.Doors {
			door.Lock()
		}
	}
}

// Clear 肃清房间：解锁并打开所有门
// 幂等操作，对已肃清房间重复调用无效果
func (r *Room) Clear() {
	if r.Cleared {
		return
	}
	r.Cleared = true
	for _, door := range r.Doors {
		door.Unlock()
	}
}

// SpawnPositions 生成房间内的敌人出生点
// 位置在可活动区域内，与边缘保持间距
func (r *Room) SpawnPositions(rng *rand.Rand, count int) []utils.Vector2D {
	const margin = 100.0

	positions := make([]utils.Vector2D, 0, count)
	for i := 0; i < count; i++ {
		x := config.RoomOffsetX + margin + rng.Float64()*(config.RoomWidth-2*margin)
		y := config.RoomOffsetY + margin + rng.Float64()*(config.RoomHeight-2*margin)
		positions = append(positions, utils.NewVector2D(x, y))
	}
	return positions
}

// String 实现 fmt.Stringer，调试输出用
func (r *Room) String() string {
	return fmt.Sprintf("Room(%d,%d,%s)", r.Pos.X, r.Pos.Y, r.Type)
}
