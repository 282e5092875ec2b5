package autobattle

// Team is one of the two sides of a battle.
type Team int

const (
	TeamPlayer Team = iota
	TeamEnemy
)

func (t Team) String() string {
	if t == TeamPlayer {
		return "player"
	}

	return "enemy"
}

func (t Team) Opponent() Team {
	if t == TeamPlayer {
		return TeamEnemy
	}

	return TeamPlayer
}

// AdvanceSign is the sign of the team's forward advance along the x axis:
// the player army pushes toward +x, the enemy army toward -x.
func (t Team) AdvanceSign() float64 {
	if t == TeamPlayer {
		return 1
	}

	return -1
}

// Allegiance carries the team an entity fights for. On projectiles the
// value is copied from the firing agent at spawn time and never re-derived.
type Allegiance struct {
	team Team
}

func NewAllegiance(team Team) *Allegiance {
	return &Allegiance{
		team: team,
	}
}

func (game AutobattleGame) CastAllegiance(data interface{}) *Allegiance {
	return data.(*Allegiance)
}

func (a Allegiance) GetTeam() Team {
	return a.team
}
