package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// newTestGdata 在临时目录创建 gdata manager，避免污染真实存档
func newTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

func TestSettingsManagerSaveAndLoad(t *testing.T) {
	m := newTestGdata(t, "test_tolik_settings")

	sm, err := NewSettingsManager(m)
	if err != nil {
		t.Fatalf("NewSettingsManager 失败: %v", err)
	}

	sm.SetSoundVolume(0.3)
	sm.SetSoundEnabled(false)
	sm.SetShowMinimap(false)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save 失败: %v", err)
	}

	sm2, err := NewSettingsManager(m)
	if err != nil {
		t.Fatalf("重新加载失败: %v", err)
	}
	s := sm2.GetSettings()
	if s.SoundVolume != 0.3 || s.SoundEnabled || s.ShowMinimap {
		t.Errorf("加载的设置与保存的不一致: %+v", s)
	}
}

func TestSettingsManagerDegradedMode(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("降级模式创建失败: %v", err)
	}
	sm.SetSoundVolume(2.5)
	if sm.GetSettings().SoundVolume != 1.0 {
		t.Error("音量应被钳制到 1.0")
	}
	if err := sm.Save(); err != nil {
		t.Errorf("降级模式 Save 不应报错: %v", err)
	}
}

func TestHighscoreManagerTopTenOrdering(t *testing.T) {
	hm, err := NewHighscoreManager(nil)
	if err != nil {
		t.Fatalf("NewHighscoreManager 失败: %v", err)
	}

	for score := 100; score <= 1200; score += 100 {
		if _, err := hm.Submit(score, 1, 1); err != nil {
			t.Fatalf("Submit 失败: %v", err)
		}
	}

	entries := hm.Entries()
	if len(entries) != maxHighscoreEntries {
		t.Fatalf("榜单应保留 %d 条, got %d", maxHighscoreEntries, len(entries))
	}
	if entries[0].Score != 1200 {
		t.Errorf("榜首应为 1200, got %d", entries[0].Score)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Score > entries[i-1].Score {
			t.Fatal("榜单应按得分降序")
		}
	}
	// 最低的两条（100 和 200）应被挤出
	if entries[len(entries)-1].Score != 300 {
		t.Errorf("榜尾应为 300, got %d", entries[len(entries)-1].Score)
	}
}

func TestHighscoreManagerPersistence(t *testing.T) {
	m := newTestGdata(t, "test_tolik_highscores")

	hm, err := NewHighscoreManager(m)
	if err != nil {
		t.Fatalf("NewHighscoreManager 失败: %v", err)
	}
	qualified, err := hm.Submit(500, 3, 2)
	if err != nil || !qualified {
		t.Fatalf("首条成绩应进榜, qualified=%v err=%v", qualified, err)
	}

	hm2, err := NewHighscoreManager(m)
	if err != nil {
		t.Fatalf("重新加载失败: %v", err)
	}
	if hm2.Best() != 500 {
		t.Errorf("重新加载后最高分应为 500, got %d", hm2.Best())
	}
	entries := hm2.Entries()
	if len(entries) != 1 || entries[0].Wave != 3 || entries[0].Difficulty != 2 {
		t.Errorf("加载的记录内容不一致: %+v", entries)
	}
	if entries[0].Date == "" {
		t.Error("记录应带日期")
	}
}

func TestHighscoreRejectsZeroScore(t *testing.T) {
	hm, _ := NewHighscoreManager(nil)
	qualified, err := hm.Submit(0, 1, 1)
	if err != nil {
		t.Fatalf("Submit 失败: %v", err)
	}
	if qualified {
		t.Error("零分不应进榜")
	}
}

func TestAchievementUnlockByProgress(t *testing.T) {
	am, err := NewAchievementManager(nil)
	if err != nil {
		t.Fatalf("NewAchievementManager 失败: %v", err)
	}

	am.AddProgress(AchExterminator, 30)
	if am.IsUnlocked(AchExterminator) {
		t.Error("30/50 不应解锁")
	}
	am.AddProgress(AchExterminator, 25)
	if !am.IsUnlocked(AchExterminator) {
		t.Error("55/50 应解锁")
	}

	unlocked := am.DrainNewlyUnlocked()
	if len(unlocked) != 1 || unlocked[0] != AchExterminator {
		t.Errorf("新解锁列表应只含 exterminator, got %v", unlocked)
	}
	if len(am.DrainNewlyUnlocked()) != 0 {
		t.Error("Drain 后列表应清空")
	}
}

func TestAchievementRecordRunPersists(t *testing.T) {
	m := newTestGdata(t, "test_tolik_achievements")

	am, err := NewAchievementManager(m)
	if err != nil {
		t.Fatalf("NewAchievementManager 失败: %v", err)
	}

	stats := RunStats{AsteroidsDestroyed: 40, BossesKilled: 1}
	if err := am.RecordRun(12000, stats); err != nil {
		t.Fatalf("RecordRun 失败: %v", err)
	}

	am2, err := NewAchievementManager(m)
	if err != nil {
		t.Fatalf("重新加载失败: %v", err)
	}
	if !am2.IsUnlocked(AchBossSlayer) {
		t.Error("击败 Boss 后 boss_slayer 应解锁并持久化")
	}
	if !am2.IsUnlocked(AchScoreHunter) {
		t.Error("单局 12000 分应解锁 score_hunter")
	}
	if am2.IsUnlocked(AchAsteroidMiner) {
		t.Error("40/100 不应解锁 asteroid_miner")
	}

	// 进度应跨局累计
	for _, a := range am2.Achievements() {
		if a.ID == AchAsteroidMiner && a.Progress != 40 {
			t.Errorf("asteroid_miner 进度应为 40, got %d", a.Progress)
		}
	}
}

func TestProgressManagerPurchaseFlow(t *testing.T) {
	m := newTestGdata(t, "test_tolik_progress")

	pm, err := NewProgressManager(m)
	if err != nil {
		t.Fatalf("NewProgressManager 失败: %v", err)
	}

	if err := pm.PurchaseUpgrade(UpgradeSpeed); err == nil {
		t.Error("余额为 0 时购买应失败")
	}

	if err := pm.AddCurrency(200); err != nil {
		t.Fatalf("AddCurrency 失败: %v", err)
	}
	if err := pm.PurchaseUpgrade(UpgradeSpeed); err != nil {
		t.Fatalf("购买失败: %v", err)
	}
	if pm.Currency() != 160 {
		t.Errorf("第 1 级引擎强化应花费 40, 余额应为 160, got %d", pm.Currency())
	}

	// 第 2 级价格翻倍
	cost, ok := pm.UpgradeCost(UpgradeSpeed)
	if !ok || cost != 80 {
		t.Errorf("第 2 级价格应为 80, got %d (ok=%v)", cost, ok)
	}

	pm2, err := NewProgressManager(m)
	if err != nil {
		t.Fatalf("重新加载失败: %v", err)
	}
	if pm2.UpgradeLevel(UpgradeSpeed) != 1 || pm2.Currency() != 160 {
		t.Errorf("元进度应持久化, level=%d currency=%d", pm2.UpgradeLevel(UpgradeSpeed), pm2.Currency())
	}
}

func TestProgressManagerMaxLevel(t *testing.T) {
	pm, _ := NewProgressManager(nil)
	_ = pm.AddCurrency(100000)

	for i := 0; i < 3; i++ {
		if err := pm.PurchaseUpgrade(UpgradeMaxHealth); err != nil {
			t.Fatalf("第 %d 级购买失败: %v", i+1, err)
		}
	}
	if err := pm.PurchaseUpgrade(UpgradeMaxHealth); err == nil {
		t.Error("满级后购买应失败")
	}
}

func TestGameStateEndRunIdempotent(t *testing.T) {
	gs := NewGameState(1)
	gs.AddScore(100)
	gs.AddCoins(5)

	gs.EndRun()
	gs.EndRun()

	if !gs.GameOver {
		t.Error("EndRun 后 GameOver 应为 true")
	}
	if gs.Score != 100 || gs.Coins != 5 || gs.Stats.CoinsCollected != 5 {
		t.Errorf("状态被意外修改: %+v", gs)
	}
}
