package autobattle

import "github.com/bytearena/ecs"

// Projectile is the payload of a damage carrier in flight. The intended
// target only steers movement; who actually takes the damage is decided
// by the overlap query, restricted by team, not by this reference.
type Projectile struct {
	target ecs.EntityID
	damage float64
	speed  float64
}

func NewProjectile(target ecs.EntityID, damage float64, speed float64) *Projectile {
	return &Projectile{
		target: target,
		damage: damage,
		speed:  speed,
	}
}

func (game AutobattleGame) CastProjectile(data interface{}) *Projectile {
	return data.(*Projectile)
}

func (p Projectile) GetTarget() ecs.EntityID {
	return p.target
}

func (p Projectile) GetDamage() float64 {
	return p.damage
}

func (p Projectile) GetSpeed() float64 {
	return p.speed
}
