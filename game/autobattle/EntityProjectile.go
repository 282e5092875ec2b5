package autobattle

import (
	"github.com/bytearena/box2d"
	"github.com/bytearena/ecs"

	commontypes "github.com/FaabB/auto-battle-1-sub002/common/types"
	"github.com/FaabB/auto-battle-1-sub002/common/utils/shape"
	"github.com/FaabB/auto-battle-1-sub002/common/utils/vector"
)

// NewEntityProjectile spawns a damage carrier at the firing agent's
// position. The team is copied from the firer here and never re-derived;
// the target reference only steers flight.
func (game *AutobattleGame) NewEntityProjectile(team Team, target ecs.EntityID, position vector.Vector2, damage float64) *ecs.Entity {
	stats := game.cfg.Projectile

	projectile := game.manager.NewEntity()

	bodydef := box2d.MakeB2BodyDef()
	bodydef.Position.Set(position.GetX(), position.GetY())
	bodydef.Type = box2d.B2BodyType.B2_kinematicBody
	bodydef.FixedRotation = true

	body := game.PhysicalWorld.CreateBody(&bodydef)

	circleshape := box2d.MakeB2CircleShape()
	circleshape.SetRadius(stats.Radius)

	fixturedef := box2d.MakeB2FixtureDef()
	fixturedef.Shape = &circleshape
	fixturedef.IsSensor = true // never deflected by solid bodies
	body.CreateFixtureFromDef(&fixturedef)
	body.SetUserData(commontypes.MakePhysicalBodyDescriptor(
		commontypes.PhysicalBodyDescriptorType.Projectile,
		projectile.GetID().String(),
	))
	body.SetBullet(true)

	return projectile.
		AddComponent(game.physicalBodyComponent, &PhysicalBody{
			body:      body,
			footprint: shape.MakeCircle(stats.Radius),
			maxSpeed:  stats.Speed,
		}).
		AddComponent(game.allegianceComponent, NewAllegiance(team)).
		AddComponent(game.projectileComponent, NewProjectile(target, damage, stats.Speed)).
		AddComponent(game.renderComponent, &Render{
			type_:  "projectile",
			static: false,
		}).
		AddComponent(game.collidableComponent, NewCollidable(
			RoleAttackContact,
			RoleDamageable,
		)).
		AddComponent(game.lifecycleComponent, &Lifecycle{
			tickBirth: game.ticknum,
		})
}
