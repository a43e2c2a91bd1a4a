package entities

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/gonewx/tolik/pkg/components"
	"github.com/gonewx/tolik/pkg/config"
	"github.com/gonewx/tolik/pkg/ecs"
	"github.com/gonewx/tolik/pkg/utils"
)

// powerUpColor 各增益道具的标识色
func powerUpColor(kind components.PowerUpType) color.RGBA {
	switch kind {
	case components.PowerUpShield:
		return color.RGBA{R: 90, G: 160, B: 255, A: 255}
	case components.PowerUpRapidFire:
		return color.RGBA{R: 255, G: 200, B: 60, A: 255}
	case components.PowerUpTripleShot:
		return color.RGBA{R: 120, G: 255, B: 120, A: 255}
	default: // extra_life
		return color.RGBA{R: 255, G: 100, B: 140, A: 255}
	}
}

// RandomPowerUpType 等概率挑选一种增益道具
func RandomPowerUpType(rng *rand.Rand) components.PowerUpType {
	kinds := []components.PowerUpType{
		components.PowerUpShield,
		components.PowerUpRapidFire,
		components.PowerUpTripleShot,
		components.PowerUpExtraLife,
	}
	return kinds[rng.Intn(len(kinds))]
}

// NewPowerUp 创建增益道具实体
// 道具原地悬浮（带上下浮动动画），超时未拾取自动消失
func NewPowerUp(em *ecs.EntityManager, kind components.PowerUpType, pos utils.Vector2D) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.TransformComponent{Position: pos})

	vertices := utils.RegularPolygon(6, config.PowerUpSize)
	em.AddComponent(entityID, components.NewShapeComponent(vertices, powerUpColor(kind)))

	em.AddComponent(entityID, &components.LifetimeComponent{
		MaxLifetime: config.PowerUpLifetime,
	})

	em.AddComponent(entityID, &components.PickupComponent{
		Kind:     components.PickupPowerUp,
		PowerUp:  kind,
		Duration: config.PowerUpDuration,
	})

	em.AddComponent(entityID, &components.BehaviorComponent{Type: components.BehaviorPowerUp})

	return entityID, nil
}

// NewCoin 创建金币实体
// 金币以随机方向散出，受摩擦减速，超时未拾取自动消失
func NewCoin(em *ecs.EntityManager, rng *rand.Rand, pos utils.Vector2D, value int) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()

	scatter := utils.VectorFromAngle(rng.Float64()*2*math.Pi, 60+rng.Float64()*120)
	em.AddComponent(entityID, &components.TransformComponent{
		Position: pos,
		Velocity: scatter,
	})

	size := 5.0
	clr := color.RGBA{R: 255, G: 215, B: 0, A: 255}
	switch {
	case value >= components.CoinValueLarge:
		size = 9
		clr = color.RGBA{R: 255, G: 170, B: 0, A: 255}
	case value >= components.CoinValueMedium:
		size = 7
	}
	em.AddComponent(entityID, components.NewShapeComponent(utils.RegularPolygon(8, size), clr))

	em.AddComponent(entityID, &components.LifetimeComponent{
		MaxLifetime: config.CoinLifetime,
	})

	em.AddComponent(entityID, &components.PickupComponent{
		Kind:      components.PickupCoin,
		CoinValue: value,
	})

	em.AddComponent(entityID, &components.BehaviorComponent{Type: components.BehaviorCoin})

	return entityID, nil
}

// ShopOffer 商店货架上的一种商品
type ShopOffer struct {
	Effect components.ShopItemEffect
	Price  int
}

// ShopCatalog 商店的完整商品池，每个商店从中抽取若干上架
var ShopCatalog = []ShopOffer{
	{Effect: components.ShopEffectHeal, Price: 5},
	{Effect: components.ShopEffectMaxHealth, Price: 15},
	{Effect: components.ShopEffectDamage, Price: 20},
	{Effect: components.ShopEffectFireRate, Price: 15},
	{Effect: components.ShopEffectSpeed, Price: 10},
	{Effect: components.ShopEffectShield, Price: 8},
	{Effect: components.ShopEffectTripleShot, Price: 8},
}

// shopItemColor 商品按效果着色
func shopItemColor(effect components.ShopItemEffect) color.RGBA {
	switch effect {
	case components.ShopEffectHeal, components.ShopEffectMaxHealth:
		return color.RGBA{R: 255, G: 100, B: 140, A: 255}
	case components.ShopEffectDamage, components.ShopEffectFireRate:
		return color.RGBA{R: 255, G: 200, B: 60, A: 255}
	case components.ShopEffectSpeed:
		return color.RGBA{R: 120, G: 200, B: 255, A: 255}
	default: // shield / triple_shot
		return color.RGBA{R: 120, G: 255, B: 120, A: 255}
	}
}

// NewShopItem 创建一件货架商品
// 商品不会过期，碰触时由战斗系统结算购买
func NewShopItem(em *ecs.EntityManager, offer ShopOffer, pos utils.Vector2D) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.TransformComponent{Position: pos})

	vertices := utils.RegularPolygon(4, config.PowerUpSize)
	em.AddComponent(entityID, components.NewShapeComponent(vertices, shopItemColor(offer.Effect)))

	em.AddComponent(entityID, &components.PickupComponent{
		Kind:     components.PickupShopItem,
		Effect:   offer.Effect,
		Price:    offer.Price,
		Duration: config.PowerUpDuration,
	})

	em.AddComponent(entityID, &components.BehaviorComponent{Type: components.BehaviorPowerUp})

	return entityID, nil
}

// SpawnShopItems 在房间中部横向摆出 count 件不重复的随机商品
func SpawnShopItems(em *ecs.EntityManager, rng *rand.Rand, count int) ([]ecs.EntityID, error) {
	if count > len(ShopCatalog) {
		count = len(ShopCatalog)
	}

	picks := rng.Perm(len(ShopCatalog))[:count]
	ids := make([]ecs.EntityID, 0, count)

	centerY := float64(config.RoomOffsetY + config.RoomHeight/2)
	spacing := float64(config.RoomWidth) / float64(count+1)
	for i, pick := range picks {
		pos := utils.NewVector2D(config.RoomOffsetX+spacing*float64(i+1), centerY)
		id, err := NewShopItem(em, ShopCatalog[pick], pos)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// SpawnCoinBurst 在指定位置散落一批总面值为 total 的金币
// 优先用大面值凑数，剩余用小面值补齐
func SpawnCoinBurst(em *ecs.EntityManager, rng *rand.Rand, pos utils.Vector2D, total int) error {
	for total >= components.CoinValueLarge && rng.Float64() < 0.5 {
		if _, err := NewCoin(em, rng, pos, components.CoinValueLarge); err != nil {
			return err
		}
		total -= components.CoinValueLarge
	}
	for total >= components.CoinValueMedium && rng.Float64() < 0.5 {
		if _, err := NewCoin(em, rng, pos, components.CoinValueMedium); err != nil {
			return err
		}
		total -= components.CoinValueMedium
	}
	for total > 0 {
		if _, err := NewCoin(em, rng, pos, components.CoinValueSmall); err != nil {
			return err
		}
		total -= components.CoinValueSmall
	}
	return nil
}
