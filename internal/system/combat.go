package system

import (
	"math"

	"emoji-survivors/assets"
	"emoji-survivors/internal/component"
	"emoji-survivors/internal/config"
	"emoji-survivors/internal/ecs"
	"emoji-survivors/internal/factory"
)

// AABBOverlap reports whether two centered boxes overlap. Touching edges do not count.
func AABBOverlap(a component.Position, as component.Size, b component.Position, bs component.Size) bool {
	return math.Abs(a.X-b.X) < (as.W+bs.W)/2 && math.Abs(a.Y-b.Y) < (as.H+bs.H)/2
}

// CircleOverlap compares squared center distance against the squared radius sum.
func CircleOverlap(a component.Position, ar float64, b component.Position, br float64) bool {
	r := ar + br
	return distSq(a, b) < r*r
}

// ApplyDamage subtracts amount from target's health and returns the damage
// actually dealt. Invulnerable, dead and health-less targets take nothing.
// Every hit flashes the target, floats a damage number and updates the
// player's run statistics.
func ApplyDamage(w *ecs.World, target ecs.EntityID, amount float64) float64 {
	if amount <= 0 || IsInvulnerable(w, target) {
		return 0
	}
	h, ok := livingHealth(w, target)
	if !ok {
		return 0
	}
	onPlayer := w.Has(target, component.CTagPlayer)
	if onPlayer {
		if c := w.Get(target, component.CPlayer); c != nil {
			amount *= assets.Class(c.(component.Player).Class).DamageTakenMult
		}
	}
	dealt := math.Min(amount, h.Current)
	h.Current = clamp(h.Current-amount, 0, h.Max)
	w.Add(target, h)
	w.Add(target, component.HitFlash{Remaining: config.HitFlashTime})

	if pos, ok := position(w, target); ok {
		factory.NewDamageNumber(w, pos.X, pos.Y, dealt, onPlayer)
	}
	if onPlayer {
		updateStats(w, target, func(s *component.GameStats) { s.DamageTaken += dealt })
		factory.NewAudioEvent(w, component.SoundPlayerHit)
	} else {
		updateStats(w, PlayerID(w), func(s *component.GameStats) { s.DamageDealt += dealt })
	}
	return dealt
}

// updateStats applies fn to id's GameStats, if it has one.
func updateStats(w *ecs.World, id ecs.EntityID, fn func(*component.GameStats)) {
	c := w.Get(id, component.CGameStats)
	if c == nil {
		return
	}
	s := c.(component.GameStats)
	fn(&s)
	w.Add(id, s)
}

// ProjectileCollision resolves projectile hits. A projectile damages the
// first opposing, living, non-invulnerable entity it overlaps and is
// destroyed, unless it pierces.
type ProjectileCollision struct{}

func (ProjectileCollision) Update(w *ecs.World, _ float64) {
	targets := w.Query(component.CTeam, component.CPosition, component.CSize, component.CHealth)
	for _, id := range w.Query(component.CProjectile, component.CPosition, component.CSize) {
		pc := w.Get(id, component.CProjectile)
		if pc == nil {
			continue
		}
		p := pc.(component.Projectile)
		ppos, _ := position(w, id)
		psize := sizeOf(w, id)

		for _, t := range targets {
			if !component.Opposes(p.OwnerTeam, sideOf(w, t)) || p.Hits[t] {
				continue
			}
			if _, alive := livingHealth(w, t); !alive || IsInvulnerable(w, t) {
				continue
			}
			tpos, ok := position(w, t)
			if !ok || !AABBOverlap(ppos, psize, tpos, sizeOf(w, t)) {
				continue
			}
			ApplyDamage(w, t, p.Damage)
			if p.Slow > 0 {
				ApplySlow(w, t, p.Slow, 2)
			}
			if !p.Piercing {
				w.DestroyEntity(id)
				break
			}
			p.Hits[t] = true
		}
	}
}

type pairKey struct{ a, b ecs.EntityID }

func makePair(a, b ecs.EntityID) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// Contact applies melee damage between overlapping opposing bodies. Both
// sides hit each other using their pre-hit state, at most once per
// Cooldown seconds per pair.
type Contact struct {
	Cooldown float64
	elapsed  float64
	last     map[pairKey]float64
}

// NewContact returns a Contact pass with the default pair cooldown.
func NewContact() *Contact {
	return &Contact{Cooldown: config.ContactCooldown, last: make(map[pairKey]float64)}
}

type body struct {
	id     ecs.EntityID
	pos    component.Position
	radius float64
	damage float64
	invuln bool
}

type hit struct {
	target ecs.EntityID
	amount float64
}

func (c *Contact) Update(w *ecs.World, dt float64) {
	c.elapsed += dt
	var players, enemies []body
	for _, id := range w.Query(component.CTeam, component.CPosition, component.CSize, component.CHealth, component.CDamage) {
		if w.Has(id, component.CProjectile) {
			continue
		}
		if _, alive := livingHealth(w, id); !alive {
			continue
		}
		pos, _ := position(w, id)
		b := body{
			id:     id,
			pos:    pos,
			radius: sizeOf(w, id).Radius(),
			damage: w.Get(id, component.CDamage).(component.Damage).Amount,
			invuln: IsInvulnerable(w, id),
		}
		switch sideOf(w, id) {
		case component.SidePlayer:
			players = append(players, b)
		case component.SideEnemy:
			enemies = append(enemies, b)
		}
	}

	var hits []hit
	for _, p := range players {
		for _, e := range enemies {
			if !CircleOverlap(p.pos, p.radius, e.pos, e.radius) {
				continue
			}
			key := makePair(p.id, e.id)
			if t, seen := c.last[key]; seen && c.elapsed-t < c.Cooldown {
				continue
			}
			c.last[key] = c.elapsed
			if !p.invuln {
				hits = append(hits, hit{p.id, e.damage})
			}
			if !e.invuln {
				hits = append(hits, hit{e.id, p.damage})
			}
		}
	}
	for _, h := range hits {
		ApplyDamage(w, h.target, h.amount)
	}

	for key := range c.last {
		if !w.Alive(key.a) || !w.Alive(key.b) {
			delete(c.last, key)
		}
	}
}
