package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBossForWaveFirstIsFixed(t *testing.T) {
	assert.Equal(t, BossBloodTitan, BossForWave(1))
	assert.Equal(t, BossBloodTitan, BossForWave(0))
}

func TestBossForWaveRotation(t *testing.T) {
	want := []BossID{
		BossVoidReaver, BossFrostColossus, BossPlagueHerald, BossInfernoLord,
		BossVoidReaver, BossFrostColossus,
	}
	for i, id := range want {
		assert.Equal(t, id, BossForWave(i+2), "boss wave %d", i+2)
	}
}

func TestEveryBossHasDefinition(t *testing.T) {
	for n := 1; n <= 10; n++ {
		_, ok := Boss(BossForWave(n))
		assert.True(t, ok, "boss wave %d", n)
	}
	_, ok := Boss(BossNone)
	assert.False(t, ok)
}

func TestEnemyWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, et := range EnemyTypes() {
		sum += Enemy(et).Weight
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestPickEnemyTypeBands(t *testing.T) {
	assert.Equal(t, EnemyBasic, PickEnemyType(0))
	assert.Equal(t, EnemyBasic, PickEnemyType(0.49))
	assert.Equal(t, EnemyFast, PickEnemyType(0.5))
	assert.Equal(t, EnemyTank, PickEnemyType(0.8))
	assert.Equal(t, EnemyRanged, PickEnemyType(0.95))
	assert.Equal(t, EnemyBasic, PickEnemyType(1.5))
}

func TestWeaponLevelAccessorsClamp(t *testing.T) {
	d, ok := Weapon(WeaponArcaneSeeker)
	require.True(t, ok)
	assert.Equal(t, 12.0, d.DamageAt(0))
	assert.Equal(t, 12.0, d.DamageAt(1))
	assert.Equal(t, 50.0, d.DamageAt(5))
	assert.Equal(t, 50.0, d.DamageAt(9))
	assert.Equal(t, 5, d.CountAt(5))
	assert.Equal(t, MaxWeaponLevel, d.MaxLevel())
}

func TestWeaponPoolAndEvolutions(t *testing.T) {
	for _, id := range WeaponPool() {
		d, ok := Weapon(id)
		require.True(t, ok, "weapon %d", id)
		assert.False(t, d.Evolved)
		if evo, ok := EvolutionOf(id); ok {
			ed, ok := Weapon(evo)
			require.True(t, ok)
			assert.True(t, ed.Evolved)
		}
	}
}

func TestClassAndMapLookup(t *testing.T) {
	c, ok := ClassByKey("mage")
	require.True(t, ok)
	assert.Equal(t, ClassBloodMage, c.ID)
	assert.Equal(t, 1.5, c.AbilityDamageMult)

	_, ok = ClassByKey("bard")
	assert.False(t, ok)

	m, ok := MapByKey("crypts")
	require.True(t, ok)
	assert.Equal(t, HazardSpikeTrap, m.Hazard)
	h, ok := Hazard(m.Hazard)
	require.True(t, ok)
	assert.Equal(t, 2.0, h.Toggle)
}
