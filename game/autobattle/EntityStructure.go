package autobattle

import (
	"time"

	notify "github.com/bitly/go-notify"
	"github.com/bytearena/box2d"
	"github.com/bytearena/ecs"

	"github.com/FaabB/auto-battle-1-sub002/common/config"
	commontypes "github.com/FaabB/auto-battle-1-sub002/common/types"
	"github.com/FaabB/auto-battle-1-sub002/common/utils/shape"
	"github.com/FaabB/auto-battle-1-sub002/common/utils/vector"
)

// NewEntityBuilding spawns a passive structure: solid, targetable and
// damageable, but unable to move or attack.
func (game *AutobattleGame) NewEntityBuilding(team Team, position vector.Vector2) *ecs.Entity {
	building := newEntityStructure(game, team, position, game.cfg.Building, "building")

	building.AddComponent(game.lifecycleComponent, &Lifecycle{
		tickBirth: game.ticknum,
		onDeath: func() {
			notify.PostTimeout(EventDestroyed, DestroyedEvent{
				EntityID: building.GetID().String(),
				Type:     "building",
				Team:     team.String(),
			}, time.Millisecond)
		},
	})

	return building
}

// NewEntityFortress spawns a team's base objective. A fortress fights
// back (movement speed stays 0) and its destruction ends the battle.
func (game *AutobattleGame) NewEntityFortress(team Team, position vector.Vector2) *ecs.Entity {
	stats := game.cfg.Fortress

	fortress := newEntityStructure(game, team, position, stats, "fortress").
		AddComponent(game.objectiveComponent, &Objective{}).
		AddComponent(game.combatComponent, NewCombat(stats.Damage, stats.AttackRange, stats.AttackCooldown)).
		AddComponent(game.targetingComponent, &Targeting{})

	fortress.AddComponent(game.lifecycleComponent, &Lifecycle{
		tickBirth: game.ticknum,
		onDeath: func() {
			notify.PostTimeout(EventDestroyed, DestroyedEvent{
				EntityID: fortress.GetID().String(),
				Type:     "fortress",
				Team:     team.String(),
			}, time.Millisecond)

			game.finished = true
			game.hasWinner = true
			game.winner = team.Opponent()

			notify.PostTimeout(EventBattleOver, BattleOverEvent{
				BattleID: game.battleID,
				Winner:   game.winner.String(),
			}, time.Millisecond)
		},
	})

	return fortress
}

func newEntityStructure(game *AutobattleGame, team Team, position vector.Vector2, stats config.StructureConfig, kind string) *ecs.Entity {
	structure := game.manager.NewEntity()

	bodydef := box2d.MakeB2BodyDef()
	bodydef.Position.Set(position.GetX(), position.GetY())
	bodydef.Type = box2d.B2BodyType.B2_staticBody

	body := game.PhysicalWorld.CreateBody(&bodydef)

	boxshape := box2d.MakeB2PolygonShape()
	boxshape.SetAsBox(stats.HalfWidth, stats.HalfHeight)

	fixturedef := box2d.MakeB2FixtureDef()
	fixturedef.Shape = &boxshape
	body.CreateFixtureFromDef(&fixturedef)
	body.SetUserData(commontypes.MakePhysicalBodyDescriptor(
		commontypes.PhysicalBodyDescriptorType.Structure,
		structure.GetID().String(),
	))

	return structure.
		AddComponent(game.physicalBodyComponent, &PhysicalBody{
			body:      body,
			footprint: shape.MakeBox(stats.HalfWidth, stats.HalfHeight),
			maxSpeed:  0, // structures never move; they may still be damaged and destroyed
		}).
		AddComponent(game.healthComponent, NewHealth(stats.Health)).
		AddComponent(game.allegianceComponent, NewAllegiance(team)).
		AddComponent(game.renderComponent, &Render{
			type_:  kind,
			static: true,
		}).
		AddComponent(game.collidableComponent, NewCollidable(
			RoleBlocking|RoleDamageable,
			RoleBlocking|RoleAttackContact,
		))
}
