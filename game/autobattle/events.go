package autobattle

// Notify topics published by the game for external collaborators
// (death/despawn bookkeeping, endgame banners). Payloads below.
const (
	EventDestroyed  = "battle:destroyed"
	EventBattleOver = "battle:over"
)

type DestroyedEvent struct {
	EntityID string
	Type     string
	Team     string
}

type BattleOverEvent struct {
	BattleID string
	Winner   string
}
