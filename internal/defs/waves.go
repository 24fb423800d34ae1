// internal/defs/waves.go
package defs

import "math"

const (
	BaseWaveSize     = 5
	WaveGrowth       = 1.15
	ExitRoundEvery   = 5  // rounds that end in exit selection
	BossRoundEvery   = 10 // rounds whose first enemy is a boss
	HellhoundFrom    = 3  // hellhounds roll only when round > HellhoundFrom
	HellhoundChance  = 0.2
	CrawlerFrom      = 5
	CrawlerChance    = 0.1
	HealthBonusEvery = 3
	SpeedJitterMin   = 0.8
	SpeedJitterRange = 0.4
)

// EnemyCountForRound returns floor(5 * 1.15^(round-1)).
func EnemyCountForRound(round int) int {
	if round < 1 {
		round = 1
	}
	return int(math.Floor(BaseWaveSize * math.Pow(WaveGrowth, float64(round-1))))
}

// HealthBonusForRound is added to every enemy's base health.
func HealthBonusForRound(round int) int {
	return round / HealthBonusEvery
}

// IsExitRound reports whether clearing round leads to exit selection.
func IsExitRound(round int) bool {
	return round > 0 && round%ExitRoundEvery == 0
}

// IsBossRound reports whether round opens with a boss.
func IsBossRound(round int) bool {
	return round > 0 && round%BossRoundEvery == 0
}
