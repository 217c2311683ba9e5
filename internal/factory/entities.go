package factory

import (
	"emoji-survivors/assets"
	"emoji-survivors/internal/component"
	"emoji-survivors/internal/config"
	"emoji-survivors/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// NewPlayer creates the player entity at (x, y) using the given class
// definition. Max health is scaled by the difficulty's PlayerHealth.
func NewPlayer(w *ecs.World, x, y float64, class assets.ClassDef, m config.Multipliers) ecs.EntityID {
	id := w.CreateEntity()
	maxHP := class.MaxHP * m.PlayerHealth
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Velocity{})
	w.Add(id, component.Size{W: config.PlayerSize, H: config.PlayerSize})
	w.Add(id, component.Health{Current: maxHP, Max: maxHP, Regen: config.PlayerRegen})
	w.Add(id, component.Damage{Amount: config.PlayerContactDamage})
	w.Add(id, component.Team{Side: component.SidePlayer})
	w.Add(id, component.Renderable{
		Glyph:       class.Glyph,
		FGColor:     tcell.ColorYellow,
		BGColor:     tcell.ColorDefault,
		RenderOrder: 10,
	})
	w.Add(id, component.Player{Class: class.ID, FacingY: -1})
	w.Add(id, component.Experience{Level: 1, Next: config.XPBase})
	w.Add(id, component.AutoAttack{
		Damage:   class.Damage,
		Range:    config.AutoAttackRange,
		Cooldown: config.AutoAttackCooldown,
		Timer:    config.AutoAttackCooldown,
	})
	w.Add(id, component.Abilities{})
	w.Add(id, component.NewWeaponInventory(class.StartWeapon))
	w.Add(id, component.GameStats{})
	w.Add(id, component.TagPlayer{})
	return id
}

// NewEnemy creates a regular enemy. healthMult is the wave/time scaling on
// top of the archetype and difficulty multipliers.
func NewEnemy(w *ecs.World, x, y, healthMult float64, kind assets.EnemyType, elite bool, m config.Multipliers) ecs.EntityID {
	def := assets.Enemy(kind)
	hp := assets.EnemyBaseHealth * def.Health * healthMult * m.EnemyHealth
	dmg := assets.EnemyBaseDamage * def.Damage * m.EnemyDamage
	xp := float64(assets.EnemyBaseXP) * def.XP
	glyph := def.Glyph
	fg := tcell.ColorRed
	if elite {
		hp *= config.EliteHealthMult
		dmg *= config.EliteDamageMult
		xp *= config.EliteXPMult
		glyph = assets.GlyphElite
		fg = tcell.ColorPurple
	}
	size := assets.EnemyBaseSize * def.Size

	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Velocity{})
	w.Add(id, component.Size{W: size, H: size})
	w.Add(id, component.Health{Current: hp, Max: hp})
	w.Add(id, component.Damage{Amount: dmg})
	w.Add(id, component.Team{Side: component.SideEnemy})
	w.Add(id, component.Enemy{Kind: kind, XPValue: int(xp), IsElite: elite})
	w.Add(id, component.AIChase{Speed: assets.EnemyBaseSpeed * def.Speed * m.EnemySpeed})
	if def.AttackRange > 0 {
		w.Add(id, component.AIRanged{
			Range:        def.AttackRange,
			KeepDistance: def.KeepDistance,
			Cooldown:     def.AttackCD,
		})
	}
	w.Add(id, component.Renderable{
		Glyph:       glyph,
		FGColor:     fg,
		BGColor:     tcell.ColorDefault,
		RenderOrder: 5,
	})
	w.Add(id, component.TagEnemy{})
	if elite {
		w.Add(id, component.GuaranteedDrop{})
	}
	return id
}

// NewBoss creates a boss of the given archetype.
func NewBoss(w *ecs.World, x, y, healthMult float64, boss assets.BossID, m config.Multipliers) ecs.EntityID {
	def, ok := assets.Boss(boss)
	if !ok {
		def, _ = assets.Boss(assets.BossBloodTitan)
	}
	hp := assets.EnemyBaseHealth * def.Health * healthMult * m.EnemyHealth
	size := assets.EnemyBaseSize * def.Size

	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Velocity{})
	w.Add(id, component.Size{W: size, H: size})
	w.Add(id, component.Health{Current: hp, Max: hp})
	w.Add(id, component.Damage{Amount: assets.EnemyBaseDamage * def.Damage * m.EnemyDamage})
	w.Add(id, component.Team{Side: component.SideEnemy})
	w.Add(id, component.Enemy{
		XPValue: int(float64(assets.EnemyBaseXP) * def.XP),
		IsBoss:  true,
		BossID:  def.ID,
	})
	w.Add(id, component.AIChase{Speed: assets.EnemyBaseSpeed * def.Speed * m.EnemySpeed})
	w.Add(id, component.Renderable{
		Glyph:       def.Glyph,
		FGColor:     tcell.ColorDarkRed,
		BGColor:     tcell.ColorDefault,
		RenderOrder: 6,
	})
	w.Add(id, component.TagEnemy{})
	w.Add(id, component.GuaranteedDrop{})
	return id
}
