package autobattle

// systemPhysics hands the tick over to the physical world: position
// integration from the velocities decided by systemMovement, plus
// authoritative resolution of Blocking-vs-Blocking overlap (pushback).
func systemPhysics(game *AutobattleGame, dt float64) {
	game.PhysicalWorld.Step(
		dt,
		8, // velocityIterations; default 8 in the box2d testbed
		3, // positionIterations; default 3 in the box2d testbed
	)
}
