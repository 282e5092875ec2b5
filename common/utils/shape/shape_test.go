package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FaabB/auto-battle-1-sub002/common/utils/vector"
)

func TestCircleCircleDistance(t *testing.T) {
	a := MakeCircle(10)
	b := MakeCircle(5)

	dist := SurfaceDistance(a, vector.MakeNullVector2(), b, vector.MakeVector2(25, 0))

	// center distance 25, radii 10 + 5 => surface distance 10
	assert.InDelta(t, 10.0, dist, 0.0001)
}

func TestCircleBoxDistance(t *testing.T) {
	circle := MakeCircle(12)
	box := MakeBox(64, 64)

	dist := SurfaceDistance(circle, vector.MakeVector2(100, 0), box, vector.MakeNullVector2())

	// box edge at x=64, circle surface at x=100-12=88 => 24
	assert.InDelta(t, 24.0, dist, 0.0001)
}

func TestCircleBoxDiagonalDistance(t *testing.T) {
	circle := MakeCircle(5)
	box := MakeBox(10, 10)

	dist := SurfaceDistance(circle, vector.MakeVector2(13, 14), box, vector.MakeNullVector2())

	// closest box corner is (10,10); center distance 5, minus radius 5
	assert.InDelta(t, 0.0, dist, 0.0001)
}

func TestBoxBoxDistanceAlongAxis(t *testing.T) {
	a := MakeBox(10, 10)
	b := MakeBox(20, 20)

	dist := SurfaceDistance(a, vector.MakeNullVector2(), b, vector.MakeVector2(50, 0))

	// gap along x: 50 - 10 - 20 = 20
	assert.InDelta(t, 20.0, dist, 0.0001)
}

func TestBoxBoxDistanceDiagonal(t *testing.T) {
	a := MakeBox(10, 10)
	b := MakeBox(10, 10)

	dist := SurfaceDistance(a, vector.MakeNullVector2(), b, vector.MakeVector2(23, 24))

	// corner gaps (3, 4) => hypot 5
	assert.InDelta(t, 5.0, dist, 0.0001)
}

func TestOverlappingFootprintsReportZero(t *testing.T) {
	cases := []struct {
		name string
		a, b Footprint
		posB vector.Vector2
	}{
		{"circle-circle", MakeCircle(10), MakeCircle(10), vector.MakeVector2(5, 0)},
		{"circle-box", MakeCircle(10), MakeBox(20, 20), vector.MakeVector2(15, 0)},
		{"box-box", MakeBox(10, 10), MakeBox(10, 10), vector.MakeVector2(5, 5)},
		{"coincident circles", MakeCircle(10), MakeCircle(10), vector.MakeNullVector2()},
		{"circle center inside box", MakeCircle(2), MakeBox(50, 50), vector.MakeVector2(1, 1)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, 0.0, SurfaceDistance(c.a, vector.MakeNullVector2(), c.b, c.posB))
			assert.True(t, Overlaps(c.a, vector.MakeNullVector2(), c.b, c.posB))
		})
	}
}

func TestSurfaceDistanceIsSymmetric(t *testing.T) {
	positions := []vector.Vector2{
		vector.MakeVector2(25, 0),
		vector.MakeVector2(-13, 40),
		vector.MakeVector2(3, 3),
	}
	footprints := []Footprint{
		MakeCircle(10),
		MakeCircle(5),
		MakeBox(64, 64),
		MakeBox(30, 12),
	}

	for _, pos := range positions {
		for _, a := range footprints {
			for _, b := range footprints {
				dAB := SurfaceDistance(a, vector.MakeNullVector2(), b, pos)
				dBA := SurfaceDistance(b, pos, a, vector.MakeNullVector2())

				assert.InDelta(t, dAB, dBA, 0.0001)
				assert.True(t, dAB >= 0)
			}
		}
	}
}

func TestUnsupportedKindReportsMaxDistance(t *testing.T) {
	bogus := Footprint{kind: Kind(42)}

	dist := SurfaceDistance(bogus, vector.MakeNullVector2(), MakeCircle(5), vector.MakeVector2(1, 0))

	assert.Equal(t, MaxDistance, dist)
}
