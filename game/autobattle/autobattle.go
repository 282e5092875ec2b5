package autobattle

import (
	json "encoding/json"

	"github.com/bytearena/box2d"
	"github.com/bytearena/ecs"
	uuid "github.com/satori/go.uuid"

	"github.com/FaabB/auto-battle-1-sub002/common/config"
	commontypes "github.com/FaabB/auto-battle-1-sub002/common/types"
	"github.com/FaabB/auto-battle-1-sub002/common/utils/shape"
)

type AutobattleGame struct {
	battleID string
	ticknum  int
	cfg      config.BattleConfig

	manager *ecs.Manager

	physicalBodyComponent *ecs.Component
	healthComponent       *ecs.Component
	allegianceComponent   *ecs.Component
	combatComponent       *ecs.Component
	targetingComponent    *ecs.Component
	projectileComponent   *ecs.Component
	collidableComponent   *ecs.Component
	lifecycleComponent    *ecs.Component
	renderComponent       *ecs.Component
	objectiveComponent    *ecs.Component

	// agentsView holds every damageable combatant (units, buildings,
	// fortresses); projectiles carry no health and stay out of it.
	agentsView      *ecs.View
	targetingView   *ecs.View
	attackersView   *ecs.View
	projectilesView *ecs.View
	mortalView      *ecs.View
	lifecycleView   *ecs.View
	renderableView  *ecs.View
	objectivesView  *ecs.View

	PhysicalWorld *box2d.B2World

	finished  bool
	hasWinner bool
	winner    Team
}

func NewAutobattleGame(cfg config.BattleConfig) *AutobattleGame {
	manager := ecs.NewManager()

	game := &AutobattleGame{
		battleID: uuid.NewV4().String(),
		cfg:      cfg,
		manager:  manager,

		physicalBodyComponent: manager.NewComponent(),
		healthComponent:       manager.NewComponent(),
		allegianceComponent:   manager.NewComponent(),
		combatComponent:       manager.NewComponent(),
		targetingComponent:    manager.NewComponent(),
		projectileComponent:   manager.NewComponent(),
		collidableComponent:   manager.NewComponent(),
		lifecycleComponent:    manager.NewComponent(),
		renderComponent:       manager.NewComponent(),
		objectiveComponent:    manager.NewComponent(),
	}

	gravity := box2d.MakeB2Vec2(0.0, 0.0) // battlefield is seen from the top
	world := box2d.MakeB2World(gravity)
	game.PhysicalWorld = &world

	game.agentsView = manager.CreateView(
		game.allegianceComponent,
		game.physicalBodyComponent,
		game.healthComponent,
		game.collidableComponent,
	)

	game.targetingView = manager.CreateView(
		game.targetingComponent,
		game.allegianceComponent,
		game.physicalBodyComponent,
	)

	game.attackersView = manager.CreateView(
		game.combatComponent,
		game.targetingComponent,
		game.allegianceComponent,
		game.physicalBodyComponent,
	)

	game.projectilesView = manager.CreateView(
		game.projectileComponent,
		game.physicalBodyComponent,
		game.lifecycleComponent,
	)

	game.mortalView = manager.CreateView(
		game.healthComponent,
		game.lifecycleComponent,
	)

	game.lifecycleView = manager.CreateView(
		game.lifecycleComponent,
	)

	game.renderableView = manager.CreateView(
		game.renderComponent,
		game.physicalBodyComponent,
	)

	game.objectivesView = manager.CreateView(
		game.objectiveComponent,
		game.allegianceComponent,
		game.physicalBodyComponent,
	)

	game.physicalBodyComponent.SetDestructor(func(entity *ecs.Entity, data interface{}) {
		physicalAspect := data.(*PhysicalBody)
		game.PhysicalWorld.DestroyBody(physicalAspect.GetBody())
	})

	game.PhysicalWorld.SetContactFilter(newCollisionFilter(game))

	return game
}

func (game AutobattleGame) getEntity(id ecs.EntityID, tagelements ...interface{}) *ecs.QueryResult {
	return game.manager.GetEntityByID(id, tagelements...)
}

func (game AutobattleGame) GetBattleID() string {
	return game.battleID
}

func (game AutobattleGame) GetTick() int {
	return game.ticknum
}

// <GameInterface>

// Step advances the battle by one simulation tick of dt seconds.
//
// The stage order is a hard contract:
// targeting and movement decide from start-of-tick positions, the
// physical world then integrates positions and resolves blocking
// pushback, attacks observe post-movement positions, projectiles move
// before damage is resolved so a projectile reaching its target
// registers the hit in the same tick, and dead entities are disposed
// last so every weak reference to them is invalid by the next read.
func (game *AutobattleGame) Step(dt float64) {
	game.ticknum++

	systemTargeting(game)
	systemMovement(game)
	systemPhysics(game, dt)
	systemAttack(game, dt)
	systemProjectiles(game, dt)
	overlaps := systemCollisions(game)
	systemDamage(game, overlaps)
	systemDeath(game)
	systemDeleteEntities(game)
}

func (game *AutobattleGame) IsFinished() bool {
	return game.finished
}

// Winner reports the winning team once an objective has fallen.
func (game AutobattleGame) Winner() (Team, bool) {
	return game.winner, game.hasWinner
}

func (game *AutobattleGame) ProduceVizMessageJson() []byte {
	msg := commontypes.VizMessage{
		BattleID: game.battleID,
		Tick:     game.ticknum,
		Objects:  []commontypes.VizMessageObject{},
	}

	for _, entityresult := range game.renderableView.Get() {
		renderAspect := game.CastRender(entityresult.Components[game.renderComponent])
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

		object := commontypes.VizMessageObject{
			Id:       entityresult.Entity.GetID().String(),
			Type:     renderAspect.GetType(),
			Position: physicalAspect.GetPosition(),
		}

		footprint := physicalAspect.GetFootprint()
		if footprint.GetKind() == shape.KindCircle {
			object.Radius = footprint.GetRadius()
		} else {
			hw, hh := footprint.GetHalfExtents()
			object.HalfExtents = [2]float64{hw, hh}
		}

		entityid := entityresult.Entity.GetID()

		if allegianceQr := game.getEntity(entityid, game.allegianceComponent); allegianceQr != nil {
			object.Team = game.CastAllegiance(allegianceQr.Components[game.allegianceComponent]).GetTeam().String()
		}

		if healthQr := game.getEntity(entityid, game.healthComponent); healthQr != nil {
			healthAspect := game.CastHealth(healthQr.Components[game.healthComponent])
			object.Health = healthAspect.GetLife()
			object.MaxHealth = healthAspect.GetMaxLife()
		}

		if targetingQr := game.getEntity(entityid, game.targetingComponent); targetingQr != nil {
			if target, ok := game.CastTargeting(targetingQr.Components[game.targetingComponent]).GetTarget(); ok {
				object.Target = target.String()
			}
		}

		msg.Objects = append(msg.Objects, object)
	}

	res, _ := json.Marshal(msg)
	return res
}

// </GameInterface>
