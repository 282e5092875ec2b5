package vector

import (
	"math"
	"strconv"

	"github.com/bytearena/box2d"
)

type Vector2 struct {
	x float64
	y float64
}

func MakeVector2(x float64, y float64) Vector2 {
	return Vector2{x, y}
}

// Returns a null vector2
func MakeNullVector2() Vector2 {
	return MakeVector2(0, 0)
}

func FromB2Vec2(v box2d.B2Vec2) Vector2 {
	return MakeVector2(v.X, v.Y)
}

func (v Vector2) ToB2Vec2() box2d.B2Vec2 {
	return box2d.MakeB2Vec2(v.x, v.y)
}

func (v Vector2) Get() (float64, float64) {
	return v.x, v.y
}

func (v Vector2) GetX() float64 {
	return v.x
}

func (v Vector2) GetY() float64 {
	return v.y
}

var floatformat = byte('f')

func (v Vector2) MarshalJSON() ([]byte, error) {
	b := []byte{'['}
	b = strconv.AppendFloat(b, v.x, floatformat, 4, 64)
	b = append(b, byte(','))
	b = strconv.AppendFloat(b, v.y, floatformat, 4, 64)
	return append(b, byte(']')), nil
}

func (a Vector2) Add(b Vector2) Vector2 {
	a.x += b.x
	a.y += b.y
	return a
}

func (a Vector2) Sub(b Vector2) Vector2 {
	a.x -= b.x
	a.y -= b.y
	return a
}

func (a Vector2) Scale(scale float64) Vector2 {
	a.x *= scale
	a.y *= scale
	return a
}

func (a Vector2) Mag() float64 {
	return math.Sqrt(a.MagSq())
}

func (a Vector2) MagSq() float64 {
	return (a.x * a.x) + (a.y * a.y)
}

func (a Vector2) Normalize() Vector2 {
	mag := a.Mag()
	if mag == 0 {
		return MakeNullVector2()
	}

	return a.Scale(1 / mag)
}

func (a Vector2) SetMag(mag float64) Vector2 {
	return a.Normalize().Scale(mag)
}

func (a Vector2) Limit(max float64) Vector2 {
	if a.Mag() > max {
		return a.SetMag(max)
	}

	return a
}

func (a Vector2) Dist(b Vector2) float64 {
	return b.Sub(a).Mag()
}

func (a Vector2) Equals(b Vector2) bool {
	return a.x == b.x && a.y == b.y
}

func (a Vector2) IsNull() bool {
	return a.x == 0 && a.y == 0
}
