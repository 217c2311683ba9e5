package game

import (
	"fmt"

	"emoji-survivors/assets"
	"emoji-survivors/internal/component"
	"emoji-survivors/internal/render"
)

// Snapshot copies everything the renderer needs out of the world.
func (s *Session) Snapshot() render.Frame {
	w := s.world
	f := render.Frame{
		Width:  s.cfg.Width,
		Height: s.cfg.Height,
		Floor:  s.arena.Floor,
	}

	for _, id := range w.Query(component.CRenderable, component.CPosition) {
		pos := w.Get(id, component.CPosition).(component.Position)
		r := w.Get(id, component.CRenderable).(component.Renderable)
		f.Sprites = append(f.Sprites, render.Sprite{
			X: pos.X, Y: pos.Y,
			Glyph: r.Glyph,
			Color: r.FGColor,
			Order: r.RenderOrder,
			Flash: w.Has(id, component.CHitFlash),
		})
	}
	for _, id := range w.Query(component.CDamageNumber, component.CPosition) {
		pos := w.Get(id, component.CPosition).(component.Position)
		d := w.Get(id, component.CDamageNumber).(component.DamageNumber)
		f.Numbers = append(f.Numbers, render.FloatText{
			X: pos.X, Y: pos.Y,
			Text:     fmt.Sprintf("%.0f", d.Amount),
			OnPlayer: d.OnPlayer,
		})
	}
	for _, id := range w.Query(component.CScreenEffect) {
		f.Effects = append(f.Effects, w.Get(id, component.CScreenEffect).(component.ScreenEffect).Kind)
	}

	f.HUD = s.hud()
	return f
}

func (s *Session) hud() render.HUD {
	w, id := s.world, s.player
	stats := s.Stats()
	h := render.HUD{
		Class:      s.class.Name,
		Difficulty: s.cfg.Difficulty().String(),
		Wave:       s.spawner.Wave,
		Kills:      stats.Kills,
		Time:       stats.SurvivalTime,
		Dead:       s.PlayerDead(),
	}
	if c := w.Get(id, component.CHealth); c != nil {
		hp := c.(component.Health)
		h.HP, h.MaxHP = hp.Current, hp.Max
	}
	if c := w.Get(id, component.CExperience); c != nil {
		exp := c.(component.Experience)
		h.Level, h.XP, h.NextXP = exp.Level, exp.XP, exp.Next
	}
	if c := w.Get(id, component.CAbilities); c != nil {
		h.Cooldowns = c.(component.Abilities).Remaining
	}
	if c := w.Get(id, component.CDamageBoost); c != nil {
		h.Boost = c.(component.DamageBoost).Remaining
	}
	if c := w.Get(id, component.CWeaponInventory); c != nil {
		inv := c.(component.WeaponInventory)
		for _, wid := range inv.Order {
			def, _ := assets.Weapon(wid)
			h.Weapons = append(h.Weapons, render.WeaponStatus{Glyph: def.Glyph, Name: def.Name, Level: inv.Levels[wid]})
		}
	}
	if c := w.Get(id, component.CLevelUpPending); c != nil {
		p := c.(component.LevelUpPending)
		h.Pending = p.Count
		inv, _ := w.Get(id, component.CWeaponInventory).(component.WeaponInventory)
		for _, wid := range p.Choices {
			h.Choices = append(h.Choices, describeChoice(inv, wid))
		}
	}
	return h
}

// describeChoice labels an upgrade as new, a level bump, or an evolution.
func describeChoice(inv component.WeaponInventory, wid assets.WeaponID) string {
	def, _ := assets.Weapon(wid)
	lvl := inv.Levels[wid]
	switch {
	case lvl == 0:
		return fmt.Sprintf("%s %s (new)", def.Glyph, def.Name)
	case lvl < def.MaxLevel():
		return fmt.Sprintf("%s %s → Lv %d", def.Glyph, def.Name, lvl+1)
	}
	evo, _ := assets.EvolutionOf(wid)
	edef, _ := assets.Weapon(evo)
	return fmt.Sprintf("%s %s evolves into %s %s", def.Glyph, def.Name, edef.Glyph, edef.Name)
}
