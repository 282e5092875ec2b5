package autobattle

import "github.com/bytearena/ecs"

// systemDeath marks every agent whose health reached zero as dead this
// tick. Actual removal happens in systemDeleteEntities at the end of
// the pipeline, so a dying agent is still observable (and targetable)
// for the remainder of the current tick.
func systemDeath(game *AutobattleGame) {
	for _, entityresult := range game.mortalView.Get() {
		healthAspect := game.CastHealth(entityresult.Components[game.healthComponent])
		if !healthAspect.IsDepleted() {
			continue
		}

		lifecycleAspect := game.CastLifecycle(entityresult.Components[game.lifecycleComponent])
		lifecycleAspect.SetDeath(game.ticknum)
	}
}

// systemDeleteEntities disposes every entity marked dead, firing its
// onDeath hook first. Disposal destroys the box2d body through the
// component destructor and invalidates every stored reference to the
// entity: getEntity returns nil for it from the next lookup on.
func systemDeleteEntities(game *AutobattleGame) {
	entitiesToRemove := make([]*ecs.Entity, 0)

	for _, entityresult := range game.lifecycleView.Get() {
		lifecycleAspect := game.CastLifecycle(entityresult.Components[game.lifecycleComponent])
		if !lifecycleAspect.IsDead() {
			continue
		}

		if lifecycleAspect.onDeath != nil {
			lifecycleAspect.onDeath()
			lifecycleAspect.onDeath = nil
		}

		entitiesToRemove = append(entitiesToRemove, entityresult.Entity)
	}

	if len(entitiesToRemove) > 0 {
		game.manager.DisposeEntities(entitiesToRemove...)
	}
}
