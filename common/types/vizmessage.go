package types

import (
	"github.com/FaabB/auto-battle-1-sub002/common/utils/vector"
)

// VizMessage is the per-tick state frame exposed to external renderers:
// positions, footprints, health and (for debugging) current targets.
type VizMessage struct {
	BattleID string
	Tick     int
	Objects  []VizMessageObject
}

type VizMessageObject struct {
	Id       string
	Type     string
	Team     string
	Position vector.Vector2

	// Footprint; Radius for circles, HalfExtents for boxes
	Radius      float64 `json:",omitempty"`
	HalfExtents [2]float64

	Health    float64
	MaxHealth float64

	// Target is the entity id of the current target, empty when none.
	// Debug visualization only; nothing downstream depends on it.
	Target string `json:",omitempty"`
}
