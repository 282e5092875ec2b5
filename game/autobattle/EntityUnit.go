package autobattle

import (
	"time"

	notify "github.com/bitly/go-notify"
	"github.com/bytearena/box2d"
	"github.com/bytearena/ecs"

	commontypes "github.com/FaabB/auto-battle-1-sub002/common/types"
	"github.com/FaabB/auto-battle-1-sub002/common/utils/shape"
	"github.com/FaabB/auto-battle-1-sub002/common/utils/vector"
)

func (game *AutobattleGame) NewEntityUnit(team Team, position vector.Vector2) *ecs.Entity {
	stats := game.cfg.Unit

	unit := game.manager.NewEntity()

	bodydef := box2d.MakeB2BodyDef()
	bodydef.Position.Set(position.GetX(), position.GetY())
	bodydef.Type = box2d.B2BodyType.B2_dynamicBody
	bodydef.AllowSleep = false
	bodydef.FixedRotation = true

	body := game.PhysicalWorld.CreateBody(&bodydef)

	circleshape := box2d.MakeB2CircleShape()
	circleshape.SetRadius(stats.Radius)

	fixturedef := box2d.MakeB2FixtureDef()
	fixturedef.Shape = &circleshape
	fixturedef.Density = 20.0
	body.CreateFixtureFromDef(&fixturedef)
	body.SetUserData(commontypes.MakePhysicalBodyDescriptor(
		commontypes.PhysicalBodyDescriptorType.Unit,
		unit.GetID().String(),
	))
	body.SetBullet(false)

	return unit.
		AddComponent(game.physicalBodyComponent, &PhysicalBody{
			body:      body,
			footprint: shape.MakeCircle(stats.Radius),
			maxSpeed:  stats.MoveSpeed,
		}).
		AddComponent(game.healthComponent, NewHealth(stats.Health)).
		AddComponent(game.allegianceComponent, NewAllegiance(team)).
		AddComponent(game.combatComponent, NewCombat(stats.Damage, stats.AttackRange, stats.AttackCooldown)).
		AddComponent(game.targetingComponent, &Targeting{}).
		AddComponent(game.renderComponent, &Render{
			type_:  "unit",
			static: false,
		}).
		AddComponent(game.collidableComponent, NewCollidable(
			RoleBlocking|RoleDamageable,
			RoleBlocking|RoleAttackContact,
		)).
		AddComponent(game.lifecycleComponent, &Lifecycle{
			tickBirth: game.ticknum,
			onDeath: func() {
				notify.PostTimeout(EventDestroyed, DestroyedEvent{
					EntityID: unit.GetID().String(),
					Type:     "unit",
					Team:     team.String(),
				}, time.Millisecond)
			},
		})
}
