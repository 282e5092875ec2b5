package autobattle

import (
	"github.com/bytearena/ecs"

	"github.com/FaabB/auto-battle-1-sub002/common/utils/shape"
)

type overlap struct {
	projectile *ecs.QueryResult
	others     []ecs.EntityID
}

// systemCollisions finds every agent a live projectile currently
// overlaps, surface to surface. Overlap here means a surface distance
// of exactly zero, so grazing contact counts.
//
// Projectile fixtures are sensors and the contact filter rejects their
// pairs outright; this pass is the only source of hit detection.
func systemCollisions(game *AutobattleGame) []overlap {
	overlaps := make([]overlap, 0)

	for _, projectileresult := range game.projectilesView.Get() {
		lifecycleAspect := game.CastLifecycle(projectileresult.Components[game.lifecycleComponent])
		if lifecycleAspect.IsDead() {
			continue
		}

		physicalAspect := game.CastPhysicalBody(projectileresult.Components[game.physicalBodyComponent])

		collidableQr := game.getEntity(projectileresult.Entity.GetID(), game.collidableComponent)
		if collidableQr == nil {
			continue
		}
		collidableAspect := game.CastCollidable(collidableQr.Components[game.collidableComponent])

		others := make([]ecs.EntityID, 0)

		for _, agentresult := range game.agentsView.Get() {
			if agentresult.Entity.GetID() == projectileresult.Entity.GetID() {
				continue
			}

			agentCollidable := game.CastCollidable(agentresult.Components[game.collidableComponent])
			if !collidableAspect.MayContact(*agentCollidable) {
				continue
			}

			agentPhysical := game.CastPhysicalBody(agentresult.Components[game.physicalBodyComponent])

			if shape.Overlaps(
				physicalAspect.GetFootprint(), physicalAspect.GetPosition(),
				agentPhysical.GetFootprint(), agentPhysical.GetPosition(),
			) {
				others = append(others, agentresult.Entity.GetID())
			}
		}

		if len(others) > 0 {
			overlaps = append(overlaps, overlap{
				projectile: projectileresult,
				others:     others,
			})
		}
	}

	return overlaps
}
