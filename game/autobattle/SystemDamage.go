package autobattle

// systemDamage resolves the overlaps found this tick. A projectile
// delivers its full payload to at most one victim, then expires. An
// overlap with a friendly agent is simply skipped: the projectile
// flies on undiminished until it reaches an opponent or its target
// disappears.
func systemDamage(game *AutobattleGame, overlaps []overlap) {
	for _, ov := range overlaps {
		lifecycleAspect := game.CastLifecycle(ov.projectile.Components[game.lifecycleComponent])
		if lifecycleAspect.IsDead() {
			continue
		}

		projectileAspect := game.CastProjectile(ov.projectile.Components[game.projectileComponent])

		allegianceQr := game.getEntity(ov.projectile.Entity.GetID(), game.allegianceComponent)
		if allegianceQr == nil {
			continue
		}
		projectileTeam := game.CastAllegiance(allegianceQr.Components[game.allegianceComponent]).GetTeam()

		for _, otherid := range ov.others {
			otherQr := game.getEntity(otherid, game.healthComponent, game.allegianceComponent)
			if otherQr == nil {
				continue
			}

			otherTeam := game.CastAllegiance(otherQr.Components[game.allegianceComponent]).GetTeam()
			if otherTeam == projectileTeam {
				continue
			}

			healthAspect := game.CastHealth(otherQr.Components[game.healthComponent])
			healthAspect.AddLife(-projectileAspect.GetDamage())

			lifecycleAspect.SetDeath(game.ticknum)
			break
		}
	}
}
