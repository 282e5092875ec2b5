package autobattle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FaabB/auto-battle-1-sub002/common/utils/vector"
)

func TestDamageDeliveredOnOverlap(t *testing.T) {
	game := newTestGame()
	game.ticknum = 1

	enemy := game.NewEntityUnit(TeamEnemy, vector.MakeVector2(100, 100))
	projectile := game.NewEntityProjectile(TeamPlayer, enemy.GetID(), vector.MakeVector2(100, 100), 10)

	overlaps := systemCollisions(game)
	assert.Equal(t, 1, len(overlaps))

	systemDamage(game, overlaps)
	systemDeath(game)
	systemDeleteEntities(game)

	health := game.healthOf(t, enemy)
	assert.Equal(t, health.GetMaxLife()-10, health.GetLife())

	// the projectile is spent
	assert.Nil(t, game.getEntity(projectile.GetID(), game.projectileComponent))
}

func TestDamageSingleVictimPerProjectile(t *testing.T) {
	game := newTestGame()
	game.ticknum = 1

	a := game.NewEntityUnit(TeamEnemy, vector.MakeVector2(100, 100))
	b := game.NewEntityUnit(TeamEnemy, vector.MakeVector2(110, 100))
	game.NewEntityProjectile(TeamPlayer, a.GetID(), vector.MakeVector2(105, 100), 10)

	overlaps := systemCollisions(game)
	systemDamage(game, overlaps)

	healthA := game.healthOf(t, a)
	healthB := game.healthOf(t, b)

	damaged := 0
	if healthA.GetLife() < healthA.GetMaxLife() {
		damaged++
	}
	if healthB.GetLife() < healthB.GetMaxLife() {
		damaged++
	}

	assert.Equal(t, 1, damaged)
}

func TestDamageFriendlyOverlapPassesThrough(t *testing.T) {
	game := newTestGame()
	game.ticknum = 1

	friend := game.NewEntityUnit(TeamPlayer, vector.MakeVector2(100, 100))
	enemy := game.NewEntityUnit(TeamEnemy, vector.MakeVector2(400, 100))
	projectile := game.NewEntityProjectile(TeamPlayer, enemy.GetID(), vector.MakeVector2(100, 100), 10)

	overlaps := systemCollisions(game)
	systemDamage(game, overlaps)
	systemDeath(game)
	systemDeleteEntities(game)

	// the friend is untouched and the projectile flies on
	health := game.healthOf(t, friend)
	assert.Equal(t, health.GetMaxLife(), health.GetLife())
	assert.NotNil(t, game.getEntity(projectile.GetID(), game.projectileComponent))

	// having reached an opponent, it delivers and expires
	game.physicalOf(t, projectile).SetPosition(vector.MakeVector2(400, 100))

	overlaps = systemCollisions(game)
	systemDamage(game, overlaps)
	systemDeath(game)
	systemDeleteEntities(game)

	enemyHealth := game.healthOf(t, enemy)
	assert.Equal(t, enemyHealth.GetMaxLife()-10, enemyHealth.GetLife())
	assert.Nil(t, game.getEntity(projectile.GetID(), game.projectileComponent))
}

func TestDamageStructuresTakeHits(t *testing.T) {
	game := newTestGame()
	game.ticknum = 1

	building := game.NewEntityBuilding(TeamEnemy, vector.MakeVector2(200, 200))
	game.NewEntityProjectile(TeamPlayer, building.GetID(), vector.MakeVector2(200, 200), 25)

	overlaps := systemCollisions(game)
	systemDamage(game, overlaps)

	health := game.healthOf(t, building)
	assert.Equal(t, health.GetMaxLife()-25, health.GetLife())
}
