package systems

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/gonewx/tolik/pkg/components"
	"github.com/gonewx/tolik/pkg/config"
	"github.com/gonewx/tolik/pkg/ecs"
	"github.com/gonewx/tolik/pkg/entities"
	"github.com/gonewx/tolik/pkg/game"
	"github.com/gonewx/tolik/pkg/utils"
)

func newTestCombat(t *testing.T) (*ecs.EntityManager, *game.GameState, *CombatSystem) {
	t.Helper()
	em := ecs.NewEntityManager()
	gs := game.NewGameState(config.DifficultyNormal)
	am := game.NewAudioManager(nil, nil)
	rng := rand.New(rand.NewSource(1))
	return em, gs, NewCombatSystem(em, gs, am, rng, components.BoundsWrap)
}

// newCircleEntity 创建一个指定包围半径的测试实体
func newCircleEntity(em *ecs.EntityManager, pos utils.Vector2D, radius float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{Position: pos})
	em.AddComponent(id, components.NewShapeComponent(utils.RegularPolygon(8, radius), color.RGBA{A: 255}))
	return id
}

func TestCollidesCircleTest(t *testing.T) {
	em, _, cs := newTestCombat(t)

	a := newCircleEntity(em, utils.NewVector2D(100, 100), 5)
	near := newCircleEntity(em, utils.NewVector2D(109, 100), 5)
	far := newCircleEntity(em, utils.NewVector2D(111, 100), 5)

	if !cs.collides(a, near) {
		t.Error("半径 5+5 距离 9 应碰撞")
	}
	if cs.collides(a, far) {
		t.Error("半径 5+5 距离 11 不应碰撞")
	}
}

func TestCollidesIsSymmetric(t *testing.T) {
	em, _, cs := newTestCombat(t)

	a := newCircleEntity(em, utils.NewVector2D(100, 100), 8)
	b := newCircleEntity(em, utils.NewVector2D(110, 105), 6)

	if cs.collides(a, b) != cs.collides(b, a) {
		t.Error("碰撞判定应对称")
	}
}

func TestShotKillsSmallAsteroidNoSplit(t *testing.T) {
	em, gs, cs := newTestCombat(t)
	rng := rand.New(rand.NewSource(2))

	pos := utils.NewVector2D(300, 300)
	_, err := entities.NewAsteroid(em, rng, pos, utils.Vector2D{}, components.AsteroidSizeSmall, components.BoundsWrap)
	if err != nil {
		t.Fatalf("NewAsteroid 失败: %v", err)
	}
	if _, err := entities.NewPlayerShot(em, pos, 0, 1, false); err != nil {
		t.Fatalf("NewPlayerShot 失败: %v", err)
	}

	cs.Update(1.0 / 60)
	em.RemoveMarkedEntities()

	if n := len(ecs.GetEntitiesWith1[*components.AsteroidComponent](em)); n != 0 {
		t.Errorf("尺寸 1 小行星被击毁后不应有残留小行星, got %d", n)
	}
	if gs.Stats.AsteroidsDestroyed != 1 {
		t.Errorf("击毁统计应为 1, got %d", gs.Stats.AsteroidsDestroyed)
	}
	// 得分 = 100 × 普通难度倍率 1.0
	if gs.Score != 100 {
		t.Errorf("尺寸 1 应得 100 分, got %d", gs.Score)
	}
}

func TestShotSplitsLargeAsteroid(t *testing.T) {
	em, _, cs := newTestCombat(t)
	rng := rand.New(rand.NewSource(3))

	pos := utils.NewVector2D(400, 300)
	id, err := entities.NewAsteroid(em, rng, pos, utils.NewVector2D(50, 0), components.AsteroidSizeLarge, components.BoundsWrap)
	if err != nil {
		t.Fatalf("NewAsteroid 失败: %v", err)
	}
	// 直接打掉全部生命
	health := ecs.MustGetComponent[*components.HealthComponent](em, id)
	health.Current = 1

	if _, err := entities.NewPlayerShot(em, pos, 0, 1, false); err != nil {
		t.Fatalf("NewPlayerShot 失败: %v", err)
	}

	cs.Update(1.0 / 60)
	em.RemoveMarkedEntities()

	var children []ecs.EntityID
	for _, aid := range ecs.GetEntitiesWith1[*components.AsteroidComponent](em) {
		children = append(children, aid)
	}
	if len(children) < config.AsteroidSplitMin || len(children) > config.AsteroidSplitMax {
		t.Fatalf("分裂产物数量 %d 超出 [%d,%d]", len(children), config.AsteroidSplitMin, config.AsteroidSplitMax)
	}
	for _, cid := range children {
		ast := ecs.MustGetComponent[*components.AsteroidComponent](em, cid)
		if ast.Size != components.AsteroidSizeMedium {
			t.Errorf("分裂产物应为尺寸 2, got %d", ast.Size)
		}
	}
}

func TestPiercingShotDoesNotRehit(t *testing.T) {
	em, _, cs := newTestCombat(t)
	rng := rand.New(rand.NewSource(4))

	pos := utils.NewVector2D(300, 300)
	targetID, err := entities.NewAsteroid(em, rng, pos, utils.Vector2D{}, components.AsteroidSizeLarge, components.BoundsWrap)
	if err != nil {
		t.Fatalf("NewAsteroid 失败: %v", err)
	}
	if _, err := entities.NewPlayerShot(em, pos, 0, 1, true); err != nil {
		t.Fatalf("NewPlayerShot 失败: %v", err)
	}

	// 连续两帧保持重叠，穿透弹只应造成一次伤害
	cs.Update(1.0 / 60)
	cs.Update(1.0 / 60)
	em.RemoveMarkedEntities()

	health := ecs.MustGetComponent[*components.HealthComponent](em, targetID)
	if health.Current != 2 {
		t.Errorf("穿透弹重叠两帧应只造成 1 点伤害, 剩余生命 got %d want 2", health.Current)
	}

	// 穿透弹本身不应消失
	if n := len(ecs.GetEntitiesWith1[*components.ProjectileComponent](em)); n != 1 {
		t.Errorf("穿透弹命中后应存活, got %d 个弹体", n)
	}
}

func TestPlayerContactDamageAndInvulnerability(t *testing.T) {
	em, gs, cs := newTestCombat(t)
	rng := rand.New(rand.NewSource(5))

	pos := utils.NewVector2D(500, 300)
	playerID, err := entities.NewPlayerShip(em, pos, components.BoundsWrap)
	if err != nil {
		t.Fatalf("NewPlayerShip 失败: %v", err)
	}
	if _, err := entities.NewAsteroid(em, rng, pos, utils.Vector2D{}, components.AsteroidSizeMedium, components.BoundsWrap); err != nil {
		t.Fatalf("NewAsteroid 失败: %v", err)
	}

	cs.Update(1.0 / 60)

	health := ecs.MustGetComponent[*components.HealthComponent](em, playerID)
	if health.Current != config.ShipMaxHealth-1 {
		t.Errorf("接触伤害应扣 1 半心, got %d", health.Current)
	}
	player := ecs.MustGetComponent[*components.PlayerComponent](em, playerID)
	if player.InvulnerableTimer <= 0 {
		t.Error("受击后应进入无敌")
	}
	if gs.Stats.DamageTaken != 1 {
		t.Errorf("受伤统计应为 1, got %d", gs.Stats.DamageTaken)
	}

	// 无敌期间再次结算不应扣血
	cs.Update(1.0 / 60)
	if health.Current != config.ShipMaxHealth-1 {
		t.Error("无敌期间不应再次受伤")
	}
}

func TestPlayerDeathEndsRunOnce(t *testing.T) {
	em, gs, cs := newTestCombat(t)
	rng := rand.New(rand.NewSource(6))

	pos := utils.NewVector2D(500, 300)
	playerID, err := entities.NewPlayerShip(em, pos, components.BoundsWrap)
	if err != nil {
		t.Fatalf("NewPlayerShip 失败: %v", err)
	}
	health := ecs.MustGetComponent[*components.HealthComponent](em, playerID)
	health.Current = 1

	if _, err := entities.NewAsteroid(em, rng, pos, utils.Vector2D{}, components.AsteroidSizeMedium, components.BoundsWrap); err != nil {
		t.Fatalf("NewAsteroid 失败: %v", err)
	}

	cs.Update(1.0 / 60)
	em.RemoveMarkedEntities()

	if !gs.GameOver {
		t.Error("生命归零应结束本局")
	}
	if em.IsAlive(playerID) {
		t.Error("死亡的玩家实体应被销毁")
	}
	if health.Current != 0 {
		t.Errorf("生命值应停在 0, got %d", health.Current)
	}
}

func TestCoinPickupAddsCoins(t *testing.T) {
	em, gs, cs := newTestCombat(t)
	rng := rand.New(rand.NewSource(7))

	pos := utils.NewVector2D(400, 400)
	if _, err := entities.NewPlayerShip(em, pos, components.BoundsWrap); err != nil {
		t.Fatalf("NewPlayerShip 失败: %v", err)
	}
	coinID, err := entities.NewCoin(em, rng, pos, components.CoinValueMedium)
	if err != nil {
		t.Fatalf("NewCoin 失败: %v", err)
	}

	cs.Update(1.0 / 60)
	em.RemoveMarkedEntities()

	if gs.Coins != components.CoinValueMedium {
		t.Errorf("拾取中币应得 %d 金币, got %d", components.CoinValueMedium, gs.Coins)
	}
	if em.IsAlive(coinID) {
		t.Error("被拾取的金币应被销毁")
	}
}

func TestPowerUpPickupActivatesBuff(t *testing.T) {
	em, _, cs := newTestCombat(t)

	pos := utils.NewVector2D(400, 400)
	playerID, err := entities.NewPlayerShip(em, pos, components.BoundsWrap)
	if err != nil {
		t.Fatalf("NewPlayerShip 失败: %v", err)
	}
	if _, err := entities.NewPowerUp(em, components.PowerUpShield, pos); err != nil {
		t.Fatalf("NewPowerUp 失败: %v", err)
	}

	cs.Update(1.0 / 60)

	player := ecs.MustGetComponent[*components.PlayerComponent](em, playerID)
	if !player.HasShield || !player.HasPowerUp(components.PowerUpShield) {
		t.Error("拾取护盾后应激活护盾增益")
	}
}

func TestExtraLifeHealsImmediately(t *testing.T) {
	em, _, cs := newTestCombat(t)

	pos := utils.NewVector2D(400, 400)
	playerID, err := entities.NewPlayerShip(em, pos, components.BoundsWrap)
	if err != nil {
		t.Fatalf("NewPlayerShip 失败: %v", err)
	}
	health := ecs.MustGetComponent[*components.HealthComponent](em, playerID)
	health.Current = 2

	if _, err := entities.NewPowerUp(em, components.PowerUpExtraLife, pos); err != nil {
		t.Fatalf("NewPowerUp 失败: %v", err)
	}

	cs.Update(1.0 / 60)

	if health.Current != 4 {
		t.Errorf("extra_life 应立即回复一颗整心(2), got %d", health.Current)
	}
	player := ecs.MustGetComponent[*components.PlayerComponent](em, playerID)
	if player.HasPowerUp(components.PowerUpExtraLife) {
		t.Error("extra_life 不应作为限时增益驻留")
	}
}

func TestShopPurchaseDeductsCoinsAndAppliesEffect(t *testing.T) {
	em, gs, cs := newTestCombat(t)

	pos := utils.NewVector2D(400, 400)
	playerID, err := entities.NewPlayerShip(em, pos, components.BoundsWrap)
	if err != nil {
		t.Fatalf("NewPlayerShip 失败: %v", err)
	}
	player := ecs.MustGetComponent[*components.PlayerComponent](em, playerID)
	damageBefore := player.Damage

	offer := entities.ShopOffer{Effect: components.ShopEffectDamage, Price: 20}
	itemID, err := entities.NewShopItem(em, offer, pos)
	if err != nil {
		t.Fatalf("NewShopItem 失败: %v", err)
	}

	gs.Coins = 25
	cs.Update(1.0 / 60)
	em.RemoveMarkedEntities()

	if gs.Coins != 5 {
		t.Errorf("购买后余额应为 5, got %d", gs.Coins)
	}
	if player.Damage != damageBefore+1 {
		t.Errorf("购买伤害商品后 Damage 应 +1, got %d", player.Damage)
	}
	if em.IsAlive(itemID) {
		t.Error("售出的商品应从货架移除")
	}
}

func TestShopPurchaseRequiresCoins(t *testing.T) {
	em, gs, cs := newTestCombat(t)

	pos := utils.NewVector2D(400, 400)
	playerID, err := entities.NewPlayerShip(em, pos, components.BoundsWrap)
	if err != nil {
		t.Fatalf("NewPlayerShip 失败: %v", err)
	}
	player := ecs.MustGetComponent[*components.PlayerComponent](em, playerID)
	damageBefore := player.Damage

	offer := entities.ShopOffer{Effect: components.ShopEffectDamage, Price: 20}
	itemID, err := entities.NewShopItem(em, offer, pos)
	if err != nil {
		t.Fatalf("NewShopItem 失败: %v", err)
	}

	gs.Coins = 3
	cs.Update(1.0 / 60)
	em.RemoveMarkedEntities()

	if gs.Coins != 3 {
		t.Errorf("余额不足时金币不应变动, got %d", gs.Coins)
	}
	if player.Damage != damageBefore {
		t.Errorf("余额不足时不应获得效果, got %d", player.Damage)
	}
	if !em.IsAlive(itemID) {
		t.Error("买不起的商品应留在货架上")
	}
}

func TestShopShieldPurchaseIsTimed(t *testing.T) {
	em, gs, cs := newTestCombat(t)

	pos := utils.NewVector2D(400, 400)
	playerID, err := entities.NewPlayerShip(em, pos, components.BoundsWrap)
	if err != nil {
		t.Fatalf("NewPlayerShip 失败: %v", err)
	}

	offer := entities.ShopOffer{Effect: components.ShopEffectShield, Price: 8}
	if _, err := entities.NewShopItem(em, offer, pos); err != nil {
		t.Fatalf("NewShopItem 失败: %v", err)
	}

	gs.Coins = 10
	cs.Update(1.0 / 60)

	player := ecs.MustGetComponent[*components.PlayerComponent](em, playerID)
	if !player.HasShield || !player.HasPowerUp(components.PowerUpShield) {
		t.Error("购买护盾商品应激活限时护盾")
	}
	if gs.Coins != 2 {
		t.Errorf("购买后余额应为 2, got %d", gs.Coins)
	}
}

func TestBossKillDropsCoinShower(t *testing.T) {
	em, gs, cs := newTestCombat(t)
	rng := rand.New(rand.NewSource(8))

	pos := utils.NewVector2D(600, 300)
	bossID, err := entities.NewBoss(em, rng, 1, pos)
	if err != nil {
		t.Fatalf("NewBoss 失败: %v", err)
	}
	health := ecs.MustGetComponent[*components.HealthComponent](em, bossID)
	health.Current = 1

	if _, err := entities.NewPlayerShot(em, pos, 0, 1, false); err != nil {
		t.Fatalf("NewPlayerShot 失败: %v", err)
	}

	cs.Update(1.0 / 60)
	em.RemoveMarkedEntities()

	if gs.Stats.BossesKilled != 1 {
		t.Errorf("Boss 击杀统计应为 1, got %d", gs.Stats.BossesKilled)
	}
	if gs.Score != config.BossKillScore {
		t.Errorf("Boss 击杀应得 %d 分, got %d", config.BossKillScore, gs.Score)
	}

	total := 0
	for _, id := range ecs.GetEntitiesWith1[*components.PickupComponent](em) {
		pickup := ecs.MustGetComponent[*components.PickupComponent](em, id)
		if pickup.Kind == components.PickupCoin {
			total += pickup.CoinValue
		}
	}
	if total < config.BossCoinDropMin || total > config.BossCoinDropMax {
		t.Errorf("Boss 金币雨总面值 %d 超出 [%d,%d]", total, config.BossCoinDropMin, config.BossCoinDropMax)
	}
}
