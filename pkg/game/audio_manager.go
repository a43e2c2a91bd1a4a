package game

import (
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const audioSampleRate = 44100

// 音效ID
const (
	SoundShoot          = "shoot"
	SoundExplosion      = "explosion"
	SoundExplosionSmall = "explosion_small"
	SoundPowerUp        = "powerup"
	SoundCoin           = "coin"
	SoundHit            = "hit"
	SoundDoor           = "door"
)

// AudioManager 音频管理器
// 音效由程序合成（方波/噪声），启动时生成 PCM 数据并缓存，
// 播放时按设置中的音量创建播放器
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager
	samples         map[string][]byte // 音效ID -> 16bit 立体声 PCM
}

// NewAudioManager 创建音频管理器并合成所有音效
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil（降级模式，播放调用变为空操作）
//   - sm: 设置管理器，用于读取音量和开关，可为 nil
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	am := &AudioManager{
		context:         ctx,
		settingsManager: sm,
		samples:         make(map[string][]byte),
	}
	am.synthesize()
	return am
}

// PlaySound 播放一个音效
// 音效被禁用、上下文缺失或ID未知时静默返回 false
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.context == nil {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	sample, ok := am.samples[soundID]
	if !ok {
		log.Printf("[AudioManager] 未知音效: %s", soundID)
		return false
	}

	player := am.context.NewPlayerFromBytes(sample)
	player.SetVolume(am.soundVolume())
	player.Play()
	return true
}

func (am *AudioManager) soundVolume() float64 {
	if am.settingsManager == nil {
		return 0.8
	}
	return am.settingsManager.GetSettings().SoundVolume
}

// synthesize 生成全部音效的 PCM 数据
func (am *AudioManager) synthesize() {
	am.samples[SoundShoot] = sweepTone(880, 220, 0.08, 0.5)
	am.samples[SoundExplosion] = noiseBurst(0.45, 0.9)
	am.samples[SoundExplosionSmall] = noiseBurst(0.2, 0.6)
	am.samples[SoundPowerUp] = sweepTone(440, 1320, 0.25, 0.5)
	am.samples[SoundCoin] = sweepTone(1200, 1800, 0.1, 0.4)
	am.samples[SoundHit] = sweepTone(300, 80, 0.15, 0.7)
	am.samples[SoundDoor] = sweepTone(200, 400, 0.2, 0.4)
}

// sweepTone 生成频率从 from 滑向 to 的方波，带线性衰减包络
func sweepTone(from, to, duration, gain float64) []byte {
	n := int(duration * audioSampleRate)
	buf := make([]byte, n*4) // 16bit × 2声道

	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := from + (to-from)*t
		phase += freq / audioSampleRate
		v := -1.0
		if math.Mod(phase, 1.0) < 0.5 {
			v = 1.0
		}
		envelope := 1.0 - t
		writeSample(buf, i, v*gain*envelope)
	}
	return buf
}

// noiseBurst 生成白噪声爆破音，带指数衰减包络
func noiseBurst(duration, gain float64) []byte {
	n := int(duration * audioSampleRate)
	buf := make([]byte, n*4)
	rng := rand.New(rand.NewSource(1)) // 固定种子，重复播放听感一致

	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		envelope := math.Exp(-4 * t)
		writeSample(buf, i, (rng.Float64()*2-1)*gain*envelope)
	}
	return buf
}

// writeSample 把 [-1,1] 的采样写入双声道缓冲区第 i 帧
func writeSample(buf []byte, i int, v float64) {
	s := int16(v * math.MaxInt16)
	buf[i*4] = byte(s)
	buf[i*4+1] = byte(s >> 8)
	buf[i*4+2] = byte(s)
	buf[i*4+3] = byte(s >> 8)
}
