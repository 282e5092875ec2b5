package autobattle

// CollisionRole is the closed set of roles a footprint can advertise.
//
//   - RoleBlocking contributes to physical pushback between bodies.
//   - RoleAttackContact exists purely to detect arrival at a damageable
//     surface; it never takes part in contact resolution.
//   - RoleDamageable marks a surface that attack contacts look for.
type CollisionRole uint8

const (
	RoleBlocking CollisionRole = 1 << iota
	RoleAttackContact
	RoleDamageable
)

// Collidable describes what an entity's footprint advertises and which
// roles it accepts contact from.
type Collidable struct {
	advertises CollisionRole
	accepts    CollisionRole
}

func NewCollidable(advertises CollisionRole, accepts CollisionRole) *Collidable {
	return &Collidable{
		advertises: advertises,
		accepts:    accepts,
	}
}

func (game AutobattleGame) CastCollidable(data interface{}) *Collidable {
	return data.(*Collidable)
}

func (c Collidable) Advertises(role CollisionRole) bool {
	return c.advertises&role != 0
}

func (c Collidable) Accepts(role CollisionRole) bool {
	return c.accepts&role != 0
}

// MayContact reports whether the two footprints may report overlap with
// each other: each side must accept at least one role the other advertises.
func (c Collidable) MayContact(other Collidable) bool {
	return c.accepts&other.advertises != 0 && other.accepts&c.advertises != 0
}
