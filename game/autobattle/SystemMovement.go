package autobattle

import (
	"github.com/FaabB/auto-battle-1-sub002/common/utils/shape"
	"github.com/FaabB/auto-battle-1-sub002/common/utils/vector"
)

// systemMovement decides each agent's velocity: advance straight toward
// the current target until the surface distance drops to attack range,
// then hold position. Center-to-center heading is good enough for the
// direction; the stop condition is what needs the surface metric.
func systemMovement(game *AutobattleGame) {
	for _, entityresult := range game.attackersView.Get() {
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
		targetingAspect := game.CastTargeting(entityresult.Components[game.targetingComponent])
		combatAspect := game.CastCombat(entityresult.Components[game.combatComponent])

		if physicalAspect.IsImmobile() {
			continue
		}

		target, ok := targetingAspect.GetTarget()
		if !ok {
			physicalAspect.SetVelocity(vector.MakeNullVector2())
			continue
		}

		targetResult := game.getEntity(target, game.physicalBodyComponent)
		if targetResult == nil {
			// target destroyed since it was chosen; hold until retargeted
			physicalAspect.SetVelocity(vector.MakeNullVector2())
			continue
		}

		targetPhysical := game.CastPhysicalBody(targetResult.Components[game.physicalBodyComponent])

		myPosition := physicalAspect.GetPosition()
		targetPosition := targetPhysical.GetPosition()

		dist := shape.SurfaceDistance(
			physicalAspect.GetFootprint(), myPosition,
			targetPhysical.GetFootprint(), targetPosition,
		)

		if dist <= combatAspect.GetAttackRange() {
			// in firing position
			physicalAspect.SetVelocity(vector.MakeNullVector2())
			continue
		}

		heading := targetPosition.Sub(myPosition)
		if heading.IsNull() {
			physicalAspect.SetVelocity(vector.MakeNullVector2())
			continue
		}

		physicalAspect.SetVelocity(heading.Normalize().Scale(physicalAspect.GetMaxSpeed()))
	}
}
