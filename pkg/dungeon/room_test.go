package dungeon

import (
	"math/rand"
	"testing"

	"github.com/gonewx/tolik/pkg/config"
)

func TestNewRoomClearedByType(t *testing.T) {
	cases := []struct {
		roomType RoomType
		cleared  bool
	}{
		{RoomStart, true},
		{RoomShop, true},
		{RoomTreasure, true},
		{RoomNormal, false},
		{RoomBoss, false},
	}

	for _, c := range cases {
		r := NewRoom(GridPos{0, 0}, c.roomType)
		if r.Cleared != c.cleared {
			t.Errorf("NewRoom(%s).Cleared = %v, 期望 %v", c.roomType, r.Cleared, c.cleared)
		}
	}
}

func TestEnterLocksCombatRoomDoors(t *testing.T) {
	r := NewRoom(GridPos{1, 0}, RoomNormal)
	r.AddDoor(DirLeft, GridPos{0, 0})
	r.AddDoor(DirRight, GridPos{2, 0})

	r.Enter()

	if !r.Visited {
		t.Error("进入后 Visited 应为 true")
	}
	for dir, door := range r.Doors {
		if !door.Locked || door.Open {
			t.Errorf("未肃清战斗房进入后 %s 门应锁闭, got locked=%v open=%v", dir, door.Locked, door.Open)
		}
	}
}

func TestEnterDoesNotLockClearedRoom(t *testing.T) {
	r := NewRoom(GridPos{1, 0}, RoomShop)
	r.AddDoor(DirLeft, GridPos{0, 0})

	r.Enter()

	door := r.GetDoor(DirLeft)
	if door.Locked {
		t.Error("已肃清房间进入后门不应上锁")
	}
	if !door.Open {
		t.Error("已肃清房间的门应保持打开")
	}
}

func TestEnterBossRoomLocksDoors(t *testing.T) {
	r := NewRoom(GridPos{3, 0}, RoomBoss)
	r.AddDoor(DirLeft, GridPos{2, 0})

	r.Enter()

	if !r.GetDoor(DirLeft).Locked {
		t.Error("未肃清 Boss 房进入后门应上锁")
	}
}

func TestClearUnlocksAndOpensDoors(t *testing.T) {
	r := NewRoom(GridPos{1, 0}, RoomNormal)
	r.AddDoor(DirLeft, GridPos{0, 0})
	r.AddDoor(DirTop, GridPos{1, -1})
	r.Enter()

	r.Clear()

	if !r.Cleared {
		t.Fatal("Clear 后 Cleared 应为 true")
	}
	for dir, door := range r.Doors {
		if door.Locked || !door.Open {
			t.Errorf("肃清后 %s 门应解锁打开, got locked=%v open=%v", dir, door.Locked, door.Open)
		}
	}
}

func TestClearIsIdempotent(t *testing.T) {
	r := NewRoom(GridPos{1, 0}, RoomNormal)
	r.AddDoor(DirLeft, GridPos{0, 0})
	r.Enter()
	r.Clear()

	// 手动关上门再重复 Clear，状态不应被改动
	r.GetDoor(DirLeft).Open = false
	r.Clear()

	if r.GetDoor(DirLeft).Open {
		t.Error("对已肃清房间重复 Clear 不应有副作用")
	}
}

func TestDoorLockInvariant(t *testing.T) {
	d := &Door{Direction: DirTop, Open: true}

	d.Lock()
	if !d.Locked || d.Open {
		t.Errorf("Lock 后应 locked 且关闭, got locked=%v open=%v", d.Locked, d.Open)
	}

	d.TryOpen()
	if d.Open {
		t.Error("锁着的门 TryOpen 不应打开")
	}

	d.Unlock()
	if d.Locked || !d.Open {
		t.Errorf("Unlock 后应解锁打开, got locked=%v open=%v", d.Locked, d.Open)
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, dir := range Directions {
		if dir.Opposite().Opposite() != dir {
			t.Errorf("方向 %s 的两次取反应回到自身", dir)
		}
		dx1, dy1 := dir.Offset()
		dx2, dy2 := dir.Opposite().Offset()
		if dx1+dx2 != 0 || dy1+dy2 != 0 {
			t.Errorf("方向 %s 与相反方向的位移应互相抵消", dir)
		}
	}
}

func TestSpawnPositionsInsidePlayArea(t *testing.T) {
	r := NewRoom(GridPos{0, 0}, RoomNormal)
	rng := rand.New(rand.NewSource(7))

	positions := r.SpawnPositions(rng, 20)
	if len(positions) != 20 {
		t.Fatalf("期望 20 个出生点, got %d", len(positions))
	}
	for _, p := range positions {
		if p.X < config.RoomOffsetX || p.X > config.RoomOffsetX+config.RoomWidth ||
			p.Y < config.RoomOffsetY || p.Y > config.RoomOffsetY+config.RoomHeight {
			t.Errorf("出生点 (%v,%v) 超出房间范围", p.X, p.Y)
		}
	}
}
