package autobattle

type Lifecycle struct {
	tickBirth int
	tickDeath int
	dead      bool
	onDeath   func()
}

func (game AutobattleGame) CastLifecycle(data interface{}) *Lifecycle {
	return data.(*Lifecycle)
}

func (lc Lifecycle) GetBirth() int {
	return lc.tickBirth
}

func (lc Lifecycle) GetDeath() int {
	return lc.tickDeath
}

func (lc Lifecycle) IsDead() bool {
	return lc.dead
}

// SetDeath marks the entity dead as of the given tick; only the first
// call takes effect.
func (lc *Lifecycle) SetDeath(tick int) *Lifecycle {
	if !lc.dead {
		lc.dead = true
		lc.tickDeath = tick
	}

	return lc
}
