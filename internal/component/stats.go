package component

import "emoji-survivors/internal/ecs"

const CGameStats ecs.ComponentType = 36

// GameStats accumulates per-run totals on the player entity.
type GameStats struct {
	Kills             int     `json:"kills"`
	BossesKilled      int     `json:"bosses_killed"`
	DamageDealt       float64 `json:"damage_dealt"`
	DamageTaken       float64 `json:"damage_taken"`
	PowerUpsCollected int     `json:"power_ups_collected"`
	AbilitiesCast     int     `json:"abilities_cast"`
	WeaponsEvolved    int     `json:"weapons_evolved"`
	HighestWave       int     `json:"highest_wave"`
	SurvivalTime      float64 `json:"survival_time"`
}

func (GameStats) Type() ecs.ComponentType { return CGameStats }
