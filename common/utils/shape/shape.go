package shape

import (
	"math"

	"github.com/FaabB/auto-battle-1-sub002/common/utils/number"
	"github.com/FaabB/auto-battle-1-sub002/common/utils/vector"
)

// Kind discriminates the closed set of footprint variants.
// The set is small and closed on purpose: SurfaceDistance switches over
// shape pairs instead of dispatching through shape objects.
type Kind int

const (
	KindCircle Kind = iota
	KindBox
)

// MaxDistance is returned for footprint pairs the distance computation
// does not support; callers treat the pair as out of range.
const MaxDistance = math.MaxFloat64

// Footprint is the collision silhouette of an entity: a circle or an
// axis-aligned box. Footprints do not rotate.
type Footprint struct {
	kind   Kind
	radius float64
	halfW  float64
	halfH  float64
}

func MakeCircle(radius float64) Footprint {
	return Footprint{
		kind:   KindCircle,
		radius: radius,
	}
}

func MakeBox(halfWidth float64, halfHeight float64) Footprint {
	return Footprint{
		kind:  KindBox,
		halfW: halfWidth,
		halfH: halfHeight,
	}
}

func (f Footprint) GetKind() Kind {
	return f.kind
}

func (f Footprint) GetRadius() float64 {
	return f.radius
}

func (f Footprint) GetHalfExtents() (float64, float64) {
	return f.halfW, f.halfH
}

// SurfaceDistance returns the shortest distance between the boundaries of
// two footprints placed at the given world positions. Overlapping or
// touching footprints report exactly 0; the result is never negative.
// Unsupported pairings report MaxDistance instead of failing the caller.
func SurfaceDistance(a Footprint, posA vector.Vector2, b Footprint, posB vector.Vector2) float64 {
	switch {
	case a.kind == KindCircle && b.kind == KindCircle:
		return circleCircleDistance(a, posA, b, posB)
	case a.kind == KindCircle && b.kind == KindBox:
		return circleBoxDistance(a, posA, b, posB)
	case a.kind == KindBox && b.kind == KindCircle:
		return circleBoxDistance(b, posB, a, posA)
	case a.kind == KindBox && b.kind == KindBox:
		return boxBoxDistance(a, posA, b, posB)
	}

	return MaxDistance
}

// Overlaps reports whether the two footprints intersect or touch.
func Overlaps(a Footprint, posA vector.Vector2, b Footprint, posB vector.Vector2) bool {
	return SurfaceDistance(a, posA, b, posB) <= 0
}

func circleCircleDistance(a Footprint, posA vector.Vector2, b Footprint, posB vector.Vector2) float64 {
	dist := posA.Dist(posB) - a.radius - b.radius
	if dist < 0 {
		return 0
	}

	return dist
}

func circleBoxDistance(circle Footprint, circlePos vector.Vector2, box Footprint, boxPos vector.Vector2) float64 {
	// closest point of the box to the circle center
	closest := vector.MakeVector2(
		number.Clamp(circlePos.GetX(), boxPos.GetX()-box.halfW, boxPos.GetX()+box.halfW),
		number.Clamp(circlePos.GetY(), boxPos.GetY()-box.halfH, boxPos.GetY()+box.halfH),
	)

	dist := circlePos.Dist(closest) - circle.radius
	if dist < 0 {
		return 0
	}

	return dist
}

func boxBoxDistance(a Footprint, posA vector.Vector2, b Footprint, posB vector.Vector2) float64 {
	gapX := number.Abs(posA.GetX()-posB.GetX()) - (a.halfW + b.halfW)
	gapY := number.Abs(posA.GetY()-posB.GetY()) - (a.halfH + b.halfH)

	if gapX < 0 {
		gapX = 0
	}

	if gapY < 0 {
		gapY = 0
	}

	if gapX > 0 && gapY > 0 {
		// diagonal separation; shortest path runs corner to corner
		return math.Hypot(gapX, gapY)
	}

	return gapX + gapY
}
