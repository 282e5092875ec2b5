package autobattle

import (
	"github.com/FaabB/auto-battle-1-sub002/common/utils/shape"
)

// systemAttack advances cooldown timers and fires.
//
// The timer only accrues while a valid target is within attack range:
// readiness is not banked while repositioning, so an agent arriving at
// the range boundary must still wait out its full cooldown.
func systemAttack(game *AutobattleGame, dt float64) {
	for _, entityresult := range game.attackersView.Get() {
		combatAspect := game.CastCombat(entityresult.Components[game.combatComponent])
		targetingAspect := game.CastTargeting(entityresult.Components[game.targetingComponent])
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
		allegianceAspect := game.CastAllegiance(entityresult.Components[game.allegianceComponent])

		target, ok := targetingAspect.GetTarget()
		if !ok {
			continue
		}

		targetResult := game.getEntity(target, game.physicalBodyComponent)
		if targetResult == nil {
			continue
		}

		targetPhysical := game.CastPhysicalBody(targetResult.Components[game.physicalBodyComponent])

		dist := shape.SurfaceDistance(
			physicalAspect.GetFootprint(), physicalAspect.GetPosition(),
			targetPhysical.GetFootprint(), targetPhysical.GetPosition(),
		)

		if dist > combatAspect.GetAttackRange() {
			continue
		}

		if combatAspect.Accrue(dt) {
			game.NewEntityProjectile(
				allegianceAspect.GetTeam(),
				target,
				physicalAspect.GetPosition(),
				combatAspect.GetDamage(),
			)
		}
	}
}
