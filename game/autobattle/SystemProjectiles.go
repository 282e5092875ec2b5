package autobattle

// systemProjectiles moves every live projectile toward the current
// position of its target. Motion is applied as an explicit transform
// update rather than a velocity so the physics step never integrates
// projectile bodies (they stay kinematic with zero linear velocity).
//
// When a single step would carry a projectile past its target, the
// projectile is snapped onto the target position instead of
// overshooting; the overlap pass the same tick then registers the hit.
func systemProjectiles(game *AutobattleGame, dt float64) {
	for _, entityresult := range game.projectilesView.Get() {
		lifecycleAspect := game.CastLifecycle(entityresult.Components[game.lifecycleComponent])
		if lifecycleAspect.IsDead() {
			continue
		}

		projectileAspect := game.CastProjectile(entityresult.Components[game.projectileComponent])
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

		targetResult := game.getEntity(projectileAspect.GetTarget(), game.physicalBodyComponent)
		if targetResult == nil {
			// target gone; the projectile expires without dealing damage
			lifecycleAspect.SetDeath(game.ticknum)
			continue
		}

		targetPhysical := game.CastPhysicalBody(targetResult.Components[game.physicalBodyComponent])

		position := physicalAspect.GetPosition()
		delta := targetPhysical.GetPosition().Sub(position)
		dist := delta.Mag()
		if dist == 0 {
			continue
		}

		step := projectileAspect.GetSpeed() * dt
		if step >= dist {
			physicalAspect.SetPosition(targetPhysical.GetPosition())
		} else {
			physicalAspect.SetPosition(position.Add(delta.Scale(step / dist)))
		}
	}
}
