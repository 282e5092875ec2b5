package autobattle

// Objective marks a team's base structure. Agents with no live opposition
// fall back to the opposing objective, and destroying an objective ends
// the battle.
type Objective struct{}

func (game AutobattleGame) CastObjective(data interface{}) *Objective {
	return data.(*Objective)
}
