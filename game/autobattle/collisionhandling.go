package autobattle

import (
	"strconv"

	"github.com/bytearena/box2d"
	"github.com/bytearena/ecs"

	commontypes "github.com/FaabB/auto-battle-1-sub002/common/types"
)

///////////////////////////////////////////////////////////////////////////////
// Collision Handling
//
// The physical world only ever resolves Blocking-vs-Blocking contacts.
// Attack-contact footprints (projectiles) are sensors and are additionally
// filtered out here, so the solver never deflects them; their overlaps are
// gathered by systemCollisions as a plain query instead.
///////////////////////////////////////////////////////////////////////////////

type collisionFilter struct { /* implements box2d.B2World.B2ContactFilterInterface */
	game *AutobattleGame
}

func newCollisionFilter(game *AutobattleGame) *collisionFilter {
	return &collisionFilter{
		game: game,
	}
}

func (filter *collisionFilter) ShouldCollide(fixtureA *box2d.B2Fixture, fixtureB *box2d.B2Fixture) bool {
	collidableA := filter.game.collidableForFixture(fixtureA)
	collidableB := filter.game.collidableForFixture(fixtureB)

	if collidableA == nil || collidableB == nil {
		return false
	}

	if collidableA.Advertises(RoleAttackContact) || collidableB.Advertises(RoleAttackContact) {
		// damage is an overlap query, not a contact-resolution outcome
		return false
	}

	return collidableA.MayContact(*collidableB)
}

// collidableForFixture maps a physical fixture back to the Collidable
// aspect of its entity through the body descriptor.
func (game *AutobattleGame) collidableForFixture(fixture *box2d.B2Fixture) *Collidable {
	descriptor, ok := fixture.GetBody().GetUserData().(commontypes.PhysicalBodyDescriptor)
	if !ok {
		return nil
	}

	id, err := strconv.Atoi(descriptor.ID)
	if err != nil {
		return nil
	}

	entityresult := game.getEntity(ecs.EntityID(id), game.collidableComponent)
	if entityresult == nil {
		return nil
	}

	return game.CastCollidable(entityresult.Components[game.collidableComponent])
}
