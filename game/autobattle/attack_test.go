package autobattle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FaabB/auto-battle-1-sub002/common/utils/vector"
)

func TestAttackFiresWhenReadyAndInRange(t *testing.T) {
	game := newTestGame()

	unit := game.NewEntityUnit(TeamPlayer, vector.MakeVector2(100, 100))
	enemy := game.NewEntityUnit(TeamEnemy, vector.MakeVector2(150, 100))

	game.targetingOf(t, unit).SetTarget(enemy.GetID())

	// a full cooldown accrues in one pass
	systemAttack(game, game.cfg.Unit.AttackCooldown)

	projectiles := game.projectilesView.Get()
	assert.Equal(t, 1, len(projectiles))

	projectileAspect := game.CastProjectile(projectiles[0].Components[game.projectileComponent])
	assert.Equal(t, enemy.GetID(), projectileAspect.GetTarget())
	assert.Equal(t, game.cfg.Unit.Damage, projectileAspect.GetDamage())

	// spawned at the firing unit's position
	physicalAspect := game.CastPhysicalBody(projectiles[0].Components[game.physicalBodyComponent])
	assert.InDelta(t, 100, physicalAspect.GetPosition().GetX(), 0.001)
}

func TestAttackRespectsCooldown(t *testing.T) {
	game := newTestGame()

	unit := game.NewEntityUnit(TeamPlayer, vector.MakeVector2(100, 100))
	enemy := game.NewEntityUnit(TeamEnemy, vector.MakeVector2(150, 100))

	game.targetingOf(t, unit).SetTarget(enemy.GetID())

	halfCooldown := game.cfg.Unit.AttackCooldown / 2

	systemAttack(game, halfCooldown)
	assert.Equal(t, 0, len(game.projectilesView.Get()))

	systemAttack(game, halfCooldown)
	assert.Equal(t, 1, len(game.projectilesView.Get()))

	// the timer resets on fire
	systemAttack(game, halfCooldown)
	assert.Equal(t, 1, len(game.projectilesView.Get()))
}

func TestAttackDoesNotAccrueOutOfRange(t *testing.T) {
	game := newTestGame()

	unit := game.NewEntityUnit(TeamPlayer, vector.MakeVector2(100, 100))
	enemy := game.NewEntityUnit(TeamEnemy, vector.MakeVector2(800, 100))

	game.targetingOf(t, unit).SetTarget(enemy.GetID())

	// far out of range: no amount of waiting builds up readiness
	systemAttack(game, game.cfg.Unit.AttackCooldown*10)
	assert.Equal(t, 0, len(game.projectilesView.Get()))

	// once in range the full cooldown must still elapse
	game.physicalOf(t, enemy).SetPosition(vector.MakeVector2(150, 100))

	systemAttack(game, game.cfg.Unit.AttackCooldown/2)
	assert.Equal(t, 0, len(game.projectilesView.Get()))

	systemAttack(game, game.cfg.Unit.AttackCooldown/2)
	assert.Equal(t, 1, len(game.projectilesView.Get()))
}

func TestAttackFortressFiresBack(t *testing.T) {
	game := newTestGame()

	fortress := game.NewEntityFortress(TeamEnemy, vector.MakeVector2(1216, 320))
	intruder := game.NewEntityUnit(TeamPlayer, vector.MakeVector2(1216-64-100, 320))

	systemTargeting(game)

	target, ok := game.targetingOf(t, fortress).GetTarget()
	assert.True(t, ok)
	assert.Equal(t, intruder.GetID(), target)

	systemAttack(game, game.cfg.Fortress.AttackCooldown)

	found := false
	for _, projectileresult := range game.projectilesView.Get() {
		projectileAspect := game.CastProjectile(projectileresult.Components[game.projectileComponent])
		if projectileAspect.GetTarget() == intruder.GetID() {
			found = true
			assert.Equal(t, game.cfg.Fortress.Damage, projectileAspect.GetDamage())
		}
	}
	assert.True(t, found)
}
