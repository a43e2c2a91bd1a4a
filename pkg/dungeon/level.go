package dungeon

import (
	"log"
	"math/rand"

	"github.com/gonewx/tolik/pkg/config"
)

// GridPos 房间在地牢网格中的坐标
type GridPos struct {
	X int
	Y int
}

// Manhattan 到另一坐标的曼哈顿距离
func (p GridPos) Manhattan(other GridPos) int {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Neighbor 指定方向上的相邻坐标
func (p GridPos) Neighbor(d Direction) GridPos {
	dx, dy := d.Offset()
	return GridPos{X: p.X + dx, Y: p.Y + dy}
}

// Level 一层地牢：房间图与当前所在房间
type Level struct {
	Number   int // 层数，从 1 开始
	Rooms    map[GridPos]*Room
	StartPos GridPos
	BossPos  GridPos
	Current  *Room

	// 房间的生成顺序。map 的遍历顺序不确定，所有依赖
	// 遍历顺序的生成逻辑必须走这个切片，保证同种子可复现
	order []GridPos
}

// GenerateLevel 用 BFS 从原点向外扩张生成一层地牢
//
// 从起始房间开始逐格扩张，离起点越远新房间的接受概率越低；
// 到达目标数量时最后一个房间成为 Boss 房，若 BFS 提前枯竭
// 则强制把离起点最远的房间改为 Boss 房。
// 相同的 rng 种子和参数生成完全相同的地牢。
func GenerateLevel(cfg *config.LevelGenConfig, number int, difficulty int, rng *rand.Rand) *Level {
	targetRooms := cfg.MinRooms
	if cfg.MaxRooms > cfg.MinRooms {
		targetRooms += rng.Intn(cfg.MaxRooms - cfg.MinRooms + 1)
	}

	level := &Level{
		Number:   number,
		Rooms:    make(map[GridPos]*Room),
		StartPos: GridPos{0, 0},
	}

	start := NewRoom(level.StartPos, RoomStart)
	level.Rooms[level.StartPos] = start
	level.order = append(level.order, level.StartPos)
	level.Current = start
	start.Visited = true

	bossPlaced := false
	queue := []GridPos{level.StartPos}

	for len(queue) > 0 && len(level.Rooms) < targetRooms {
		pos := queue[0]
		queue = queue[1:]
		room := level.Rooms[pos]

		dirs := Directions
		rng.Shuffle(len(dirs), func(i, j int) {
			dirs[i], dirs[j] = dirs[j], dirs[i]
		})

		for _, dir := range dirs {
			if len(level.Rooms) >= targetRooms {
				break
			}
			target := pos.Neighbor(dir)

			if neighbor, ok := level.Rooms[target]; ok {
				// 相邻房间已存在：补上双向门，不新建房间
				if !room.HasDoor(dir) {
					room.AddDoor(dir, target)
					neighbor.AddDoor(dir.Opposite(), pos)
				}
				continue
			}

			chance := cfg.BaseChance - cfg.DistancePenalty*float64(level.StartPos.Manhattan(target))
			if chance < 0 {
				chance = 0
			}
			if chance > 1 {
				chance = 1
			}
			if rng.Float64() >= chance {
				continue
			}

			roomType := RoomNormal
			switch {
			case !bossPlaced && len(level.Rooms) == targetRooms-1:
				roomType = RoomBoss
				bossPlaced = true
				level.BossPos = target
			case rng.Float64() < cfg.ShopChance:
				roomType = RoomShop
			case rng.Float64() < cfg.TreasureChance:
				roomType = RoomTreasure
			}

			level.addRoom(room, dir, target, roomType)
			queue = append(queue, target)
		}
	}

	// BFS 提前枯竭时从已有房间强制扩张，补足房间数下限
	for len(level.Rooms) < cfg.MinRooms && level.growOne(cfg, rng) {
	}

	if !bossPlaced {
		level.forceBossRoom()
	}

	level.assignDifficulty(cfg, difficulty)

	log.Printf("[Dungeon] 生成第 %d 层: %d 个房间, Boss 位于 (%d,%d)",
		number, len(level.Rooms), level.BossPos.X, level.BossPos.Y)
	return level
}

// addRoom 新建房间并连上双向门，同时记录生成顺序
func (l *Level) addRoom(parent *Room, dir Direction, target GridPos, roomType RoomType) *Room {
	newRoom := NewRoom(target, roomType)
	parent.AddDoor(dir, target)
	newRoom.AddDoor(dir.Opposite(), parent.Pos)
	l.Rooms[target] = newRoom
	l.order = append(l.order, target)
	return newRoom
}

// growOne 按生成顺序找到第一个有空邻格的房间并强制扩张一格
// 不经过接受概率，专供补足房间数下限使用
func (l *Level) growOne(cfg *config.LevelGenConfig, rng *rand.Rand) bool {
	for _, pos := range l.order {
		room := l.Rooms[pos]

		dirs := Directions
		rng.Shuffle(len(dirs), func(i, j int) {
			dirs[i], dirs[j] = dirs[j], dirs[i]
		})

		for _, dir := range dirs {
			target := pos.Neighbor(dir)
			if _, ok := l.Rooms[target]; ok {
				continue
			}

			roomType := RoomNormal
			switch {
			case rng.Float64() < cfg.ShopChance:
				roomType = RoomShop
			case rng.Float64() < cfg.TreasureChance:
				roomType = RoomTreasure
			}
			l.addRoom(room, dir, target, roomType)
			return true
		}
	}
	return false
}

// forceBossRoom 把离起点曼哈顿距离最大的房间改为 Boss 房
// BFS 在达到目标数量前枯竭时的兜底，保证每层恰好一个 Boss。
// 距离并列时取先生成的房间，同种子结果可复现
func (l *Level) forceBossRoom() {
	var furthest *Room
	maxDist := -1
	for _, pos := range l.order {
		room := l.Rooms[pos]
		if room.Type == RoomStart && len(l.Rooms) > 1 {
			continue
		}
		if d := l.StartPos.Manhattan(pos); d > maxDist {
			maxDist = d
			furthest = room
		}
	}
	if furthest == nil {
		return
	}
	furthest.Type = RoomBoss
	l.BossPos = furthest.Pos
	// 原先是商店/宝藏房时出生即已肃清，改成Boss房后要重新参与战斗门禁
	if furthest.Pos != l.StartPos {
		furthest.Cleared = false
	}
}

// assignDifficulty 按离起点的距离给每个房间分配难度和敌人数量
func (l *Level) assignDifficulty(cfg *config.LevelGenConfig, difficulty int) {
	baseCount := config.DifficultyAsteroidCount[difficulty]
	for pos, room := range l.Rooms {
		dist := float64(l.StartPos.Manhattan(pos))
		d := cfg.DifficultyBase + dist*cfg.DifficultyPerRoom
		if d > cfg.MaxDifficulty {
			d = cfg.MaxDifficulty
		}
		room.Difficulty = d

		switch room.Type {
		case RoomNormal:
			room.EnemyCount = int(float64(baseCount) * d)
			if room.EnemyCount < 1 {
				room.EnemyCount = 1
			}
		case RoomBoss:
			room.EnemyCount = 1
		default:
			room.EnemyCount = 0
		}
	}
}

// RoomAt 按网格坐标查找房间，不存在时返回 nil
func (l *Level) RoomAt(pos GridPos) *Room {
	return l.Rooms[pos]
}

// AdjacentRoom 返回指定房间某方向上有门连通的相邻房间
func (l *Level) AdjacentRoom(room *Room, dir Direction) *Room {
	door := room.GetDoor(dir)
	if door == nil {
		return nil
	}
	return l.Rooms[door.Target]
}

// EnterRoom 把当前房间切换到目标房间并触发其进入逻辑
func (l *Level) EnterRoom(room *Room) {
	l.Current = room
	room.Enter()
}

// RoomCount 房间总数
func (l *Level) RoomCount() int {
	return len(l.Rooms)
}

// ClearedCount 已肃清的房间数
func (l *Level) ClearedCount() int {
	n := 0
	for _, room := range l.Rooms {
		if room.Cleared {
			n++
		}
	}
	return n
}

// VisitedCount 已访问的房间数
func (l *Level) VisitedCount() int {
	n := 0
	for _, room := range l.Rooms {
		if room.Visited {
			n++
		}
	}
	return n
}

// IsComplete 本层是否通关（Boss 房已肃清）
func (l *Level) IsComplete() bool {
	boss := l.Rooms[l.BossPos]
	return boss != nil && boss.Cleared
}

// GridBounds 返回房间网格的包围盒 (minX, minY, maxX, maxY)，小地图用
func (l *Level) GridBounds() (int, int, int, int) {
	minX, minY := 0, 0
	maxX, maxY := 0, 0
	for pos := range l.Rooms {
		if pos.X < minX {
			minX = pos.X
		}
		if pos.Y < minY {
			minY = pos.Y
		}
		if pos.X > maxX {
			maxX = pos.X
		}
		if pos.Y > maxY {
			maxY = pos.Y
		}
	}
	return minX, minY, maxX, maxY
}
