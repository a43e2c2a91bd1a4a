package components

// PowerUpType 增益道具类型
type PowerUpType string

const (
	PowerUpShield     PowerUpType = "shield"      // 护盾：免疫接触伤害
	PowerUpRapidFire  PowerUpType = "rapid_fire"  // 快速射击：缩短射击冷却
	PowerUpTripleShot PowerUpType = "triple_shot" // 三向射击
	PowerUpExtraLife  PowerUpType = "extra_life"  // 回复一颗整心（立即生效，无持续时间）
)

// PickupKind 拾取物种类
type PickupKind int

const (
	// PickupPowerUp 增益道具
	PickupPowerUp PickupKind = iota
	// PickupCoin 金币
	PickupCoin
	// PickupShopItem 商店商品，碰触时花费金币购买
	PickupShopItem
)

// ShopItemEffect 商店商品的购买效果
type ShopItemEffect int

const (
	// ShopEffectHeal 回复两颗半心
	ShopEffectHeal ShopItemEffect = iota
	// ShopEffectMaxHealth 生命上限 +2 并回满新增部分
	ShopEffectMaxHealth
	// ShopEffectDamage 本局弹体伤害 +1
	ShopEffectDamage
	// ShopEffectFireRate 本局射速加成 +0.2
	ShopEffectFireRate
	// ShopEffectSpeed 本局推进加成 +0.15
	ShopEffectSpeed
	// ShopEffectShield 护盾增益（限时）
	ShopEffectShield
	// ShopEffectTripleShot 三向射击增益（限时）
	ShopEffectTripleShot
)

// 金币面值
const (
	CoinValueSmall  = 1
	CoinValueMedium = 5
	CoinValueLarge  = 10
)

// PickupComponent 拾取物状态
type PickupComponent struct {
	Kind      PickupKind
	PowerUp   PowerUpType // Kind == PickupPowerUp 时有效
	CoinValue int         // Kind == PickupCoin 时有效
	Duration  float64     // 增益持续时间（秒）
	BobTimer  float64     // 浮动动画计时器

	// 商店商品属性，Kind == PickupShopItem 时有效
	Effect ShopItemEffect
	Price  int
}
