package common

// GameInterface is what entrypoints need from a game implementation.
type GameInterface interface {
	Step(dt float64)
	ProduceVizMessageJson() []byte
	IsFinished() bool
}
