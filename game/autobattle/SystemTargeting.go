package autobattle

import (
	"math"

	"github.com/bytearena/ecs"

	"github.com/FaabB/auto-battle-1-sub002/common/utils/shape"
)

// systemTargeting picks a current target for every targeting agent.
//
// Agents holding a live target only re-evaluate once every
// RetargetInterval ticks, staggered by entity id so the quadratic
// candidate scan is spread across ticks. Agents whose target is unset or
// destroyed evaluate immediately.
func systemTargeting(game *AutobattleGame) {
	interval := game.cfg.Simulation.RetargetInterval

	for _, entityresult := range game.targetingView.Get() {
		targetingAspect := game.CastTargeting(entityresult.Components[game.targetingComponent])
		allegianceAspect := game.CastAllegiance(entityresult.Components[game.allegianceComponent])
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

		holdsValidTarget := false
		if target, ok := targetingAspect.GetTarget(); ok {
			holdsValidTarget = game.getEntity(target, game.healthComponent) != nil
		}

		staggered := (int(entityresult.Entity.GetID())+game.ticknum)%interval == 0
		if holdsValidTarget && !staggered {
			continue
		}

		target, found := game.findNearestOpponent(
			entityresult.Entity.GetID(),
			allegianceAspect.GetTeam(),
			physicalAspect,
		)

		if found {
			targetingAspect.SetTarget(target)
		} else {
			targetingAspect.ClearTarget()
		}
	}
}

// findNearestOpponent scans all opposing damageable agents and keeps the
// one with the smallest surface distance. Candidates too far behind the
// team's advance axis are skipped (backtrack guard); when nothing
// qualifies, the opposing objective is selected so the agent still
// advances on something.
func (game *AutobattleGame) findNearestOpponent(self ecs.EntityID, team Team, physicalAspect *PhysicalBody) (ecs.EntityID, bool) {
	myPosition := physicalAspect.GetPosition()
	myFootprint := physicalAspect.GetFootprint()
	opponent := team.Opponent()

	var nearest ecs.EntityID
	nearestDist := math.MaxFloat64
	found := false

	for _, candidate := range game.agentsView.Get() {
		if candidate.Entity.GetID() == self {
			continue
		}

		candidateAllegiance := game.CastAllegiance(candidate.Components[game.allegianceComponent])
		if candidateAllegiance.GetTeam() != opponent {
			continue
		}

		candidatePhysical := game.CastPhysicalBody(candidate.Components[game.physicalBodyComponent])
		candidatePosition := candidatePhysical.GetPosition()

		behind := (myPosition.GetX() - candidatePosition.GetX()) * team.AdvanceSign()
		if behind > game.cfg.Simulation.BacktrackDistance {
			continue
		}

		dist := shape.SurfaceDistance(myFootprint, myPosition, candidatePhysical.GetFootprint(), candidatePosition)
		if dist < nearestDist {
			nearest = candidate.Entity.GetID()
			nearestDist = dist
			found = true
		}
	}

	if found {
		return nearest, true
	}

	// no live opposition ahead; fall back on the opposing objective
	for _, objective := range game.objectivesView.Get() {
		objectiveAllegiance := game.CastAllegiance(objective.Components[game.allegianceComponent])
		if objectiveAllegiance.GetTeam() == opponent {
			return objective.Entity.GetID(), true
		}
	}

	return 0, false
}
