package game

import (
	"math"

	"emoji-survivors/internal/component"
	"emoji-survivors/internal/config"
)

// HeadlessResult summarizes an unattended run.
type HeadlessResult struct {
	Run         RunLog
	Frames      int
	Sounds      map[component.SoundKind]int
	DamageShown float64 // sum of every damage number raised
}

// RunHeadless plays a session without a terminal for up to seconds of game
// time, using a simple kiting bot. It stops early when the player dies.
func RunHeadless(opts Options, seconds float64) (HeadlessResult, error) {
	s, err := NewSession(opts)
	if err != nil {
		return HeadlessResult{}, err
	}
	res := HeadlessResult{Sounds: make(map[component.SoundKind]int)}
	const dt = 1.0 / config.FPS
	limit := int(seconds * config.FPS)

	for res.Frames < limit && !s.PlayerDead() {
		if s.Paused() {
			if err := s.ChooseUpgrade(0); err != nil {
				return res, err
			}
			continue
		}
		s.steerBot(float64(res.Frames) * dt)
		s.Tick(dt)
		res.Frames++
		for _, k := range s.DrainAudio() {
			res.Sounds[k]++
		}
		for _, n := range s.DrainDamageNumbers() {
			res.DamageShown += n.Amount
		}
	}
	res.Run = s.RunLog("bot")
	s.log.Info("headless run finished",
		"frames", res.Frames, "wave", s.Wave(), "kills", res.Run.Stats.Kills, "died", res.Run.Died)
	return res, nil
}

// steerBot circles the arena center and casts whatever is ready.
func (s *Session) steerBot(t float64) {
	angle := t * 0.8
	s.input.SetMove(math.Cos(angle+math.Pi/2), math.Sin(angle+math.Pi/2))
	for slot := component.AbilitySlot(0); slot < component.NumAbilitySlots; slot++ {
		s.input.Press(slot)
	}
}
