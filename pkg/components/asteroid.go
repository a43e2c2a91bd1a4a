package components

// AsteroidSize 小行星尺寸等级
type AsteroidSize int

const (
	AsteroidSizeSmall  AsteroidSize = 1
	AsteroidSizeMedium AsteroidSize = 2
	AsteroidSizeLarge  AsteroidSize = 3
)

// AsteroidComponent 小行星状态
// Size 只会在分裂时减小：3(大) → 2(中) → 1(小) → 销毁
type AsteroidComponent struct {
	Size AsteroidSize // 尺寸等级 1-3
}

// ScoreValue 返回击毁该小行星的得分
// 越小的行星越难打中，分值越高
func (a *AsteroidComponent) ScoreValue() int {
	switch a.Size {
	case AsteroidSizeLarge:
		return 20
	case AsteroidSizeMedium:
		return 50
	case AsteroidSizeSmall:
		return 100
	}
	return 20
}
