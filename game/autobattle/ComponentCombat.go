package autobattle

// Combat holds the attack stats of an agent and its cooldown timer.
// The timer only accrues readiness while a valid target is within range;
// returning into range after repositioning restarts from where accrual
// stopped, never from a fully charged timer.
type Combat struct {
	damage      float64
	attackRange float64
	cooldown    float64 // Const; seconds between shots
	elapsed     float64 // accrued readiness
}

func NewCombat(damage float64, attackRange float64, cooldown float64) *Combat {
	return &Combat{
		damage:      damage,
		attackRange: attackRange,
		cooldown:    cooldown,
	}
}

func (game AutobattleGame) CastCombat(data interface{}) *Combat {
	return data.(*Combat)
}

func (c Combat) GetDamage() float64 {
	return c.damage
}

func (c Combat) GetAttackRange() float64 {
	return c.attackRange
}

// Accrue advances the cooldown timer and reports whether a shot is due.
// When it returns true the timer has been reset for the next shot.
func (c *Combat) Accrue(dt float64) bool {
	c.elapsed += dt
	if c.elapsed < c.cooldown {
		return false
	}

	c.elapsed = 0
	return true
}
