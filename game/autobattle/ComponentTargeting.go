package autobattle

import "github.com/bytearena/ecs"

// Targeting tracks the entity this agent is currently moving toward and
// attacking. The target is held as a plain entity id, never as a pointer:
// it is validated against the manager on every read, so a reference to a
// destroyed entity is never acted upon.
type Targeting struct {
	target    ecs.EntityID
	hasTarget bool
}

func (game AutobattleGame) CastTargeting(data interface{}) *Targeting {
	return data.(*Targeting)
}

func (t *Targeting) SetTarget(id ecs.EntityID) {
	t.target = id
	t.hasTarget = true
}

func (t *Targeting) ClearTarget() {
	t.target = 0
	t.hasTarget = false
}

func (t Targeting) GetTarget() (ecs.EntityID, bool) {
	return t.target, t.hasTarget
}
