package autobattle

import (
	"testing"

	"github.com/bytearena/ecs"
	"github.com/stretchr/testify/assert"

	"github.com/FaabB/auto-battle-1-sub002/common/config"
	"github.com/FaabB/auto-battle-1-sub002/common/utils/vector"
)

func newTestGame() *AutobattleGame {
	return NewAutobattleGame(config.Default())
}

func (game *AutobattleGame) targetingOf(t *testing.T, entity *ecs.Entity) *Targeting {
	qr := game.getEntity(entity.GetID(), game.targetingComponent)
	assert.NotNil(t, qr)
	return game.CastTargeting(qr.Components[game.targetingComponent])
}

func (game *AutobattleGame) healthOf(t *testing.T, entity *ecs.Entity) *Health {
	qr := game.getEntity(entity.GetID(), game.healthComponent)
	assert.NotNil(t, qr)
	return game.CastHealth(qr.Components[game.healthComponent])
}

func (game *AutobattleGame) physicalOf(t *testing.T, entity *ecs.Entity) *PhysicalBody {
	qr := game.getEntity(entity.GetID(), game.physicalBodyComponent)
	assert.NotNil(t, qr)
	return game.CastPhysicalBody(qr.Components[game.physicalBodyComponent])
}

func TestTargetingPicksNearestOpponent(t *testing.T) {
	game := newTestGame()

	unit := game.NewEntityUnit(TeamPlayer, vector.MakeVector2(100, 100))
	near := game.NewEntityUnit(TeamEnemy, vector.MakeVector2(150, 100))
	game.NewEntityUnit(TeamEnemy, vector.MakeVector2(300, 100))

	systemTargeting(game)

	target, ok := game.targetingOf(t, unit).GetTarget()
	assert.True(t, ok)
	assert.Equal(t, near.GetID(), target)
}

func TestTargetingIgnoresAllies(t *testing.T) {
	game := newTestGame()

	unit := game.NewEntityUnit(TeamPlayer, vector.MakeVector2(100, 100))
	game.NewEntityUnit(TeamPlayer, vector.MakeVector2(110, 100))

	systemTargeting(game)

	_, ok := game.targetingOf(t, unit).GetTarget()
	assert.False(t, ok)
}

func TestTargetingBacktrackGuard(t *testing.T) {
	game := newTestGame()
	backtrack := game.cfg.Simulation.BacktrackDistance

	unit := game.NewEntityUnit(TeamPlayer, vector.MakeVector2(500, 100))

	// closer, but farther behind the advance axis than tolerated
	game.NewEntityUnit(TeamEnemy, vector.MakeVector2(500-backtrack-50, 100))
	ahead := game.NewEntityUnit(TeamEnemy, vector.MakeVector2(900, 100))

	systemTargeting(game)

	target, ok := game.targetingOf(t, unit).GetTarget()
	assert.True(t, ok)
	assert.Equal(t, ahead.GetID(), target)
}

func TestTargetingObjectiveFallback(t *testing.T) {
	game := newTestGame()

	// the enemy fortress sits far behind the unit: the regular scan
	// rejects it, the objective fallback still latches onto it
	unit := game.NewEntityUnit(TeamPlayer, vector.MakeVector2(1000, 320))
	fortress := game.NewEntityFortress(TeamEnemy, vector.MakeVector2(64, 320))

	systemTargeting(game)

	target, ok := game.targetingOf(t, unit).GetTarget()
	assert.True(t, ok)
	assert.Equal(t, fortress.GetID(), target)
}

func TestTargetingImmediateRetargetOnLoss(t *testing.T) {
	game := newTestGame()

	unit := game.NewEntityUnit(TeamPlayer, vector.MakeVector2(100, 100))
	doomed := game.NewEntityUnit(TeamEnemy, vector.MakeVector2(150, 100))
	backup := game.NewEntityUnit(TeamEnemy, vector.MakeVector2(400, 100))

	systemTargeting(game)
	target, _ := game.targetingOf(t, unit).GetTarget()
	assert.Equal(t, doomed.GetID(), target)

	game.manager.DisposeEntities(doomed)

	// pick a tick where the unit would normally be throttled
	interval := game.cfg.Simulation.RetargetInterval
	game.ticknum = 1
	for (int(unit.GetID())+game.ticknum)%interval == 0 {
		game.ticknum++
	}

	systemTargeting(game)

	target, ok := game.targetingOf(t, unit).GetTarget()
	assert.True(t, ok)
	assert.Equal(t, backup.GetID(), target)
}

func TestTargetingThrottledWhileTargetLives(t *testing.T) {
	game := newTestGame()
	interval := game.cfg.Simulation.RetargetInterval

	unit := game.NewEntityUnit(TeamPlayer, vector.MakeVector2(100, 100))
	first := game.NewEntityUnit(TeamEnemy, vector.MakeVector2(300, 100))

	systemTargeting(game)
	target, _ := game.targetingOf(t, unit).GetTarget()
	assert.Equal(t, first.GetID(), target)

	// a closer opponent appears, but the unit is between re-evaluations
	closer := game.NewEntityUnit(TeamEnemy, vector.MakeVector2(150, 100))

	game.ticknum = 1
	for (int(unit.GetID())+game.ticknum)%interval == 0 {
		game.ticknum++
	}
	systemTargeting(game)

	target, _ = game.targetingOf(t, unit).GetTarget()
	assert.Equal(t, first.GetID(), target)

	// on its re-evaluation tick it switches
	for (int(unit.GetID())+game.ticknum)%interval != 0 {
		game.ticknum++
	}
	systemTargeting(game)

	target, _ = game.targetingOf(t, unit).GetTarget()
	assert.Equal(t, closer.GetID(), target)
}
