package autobattle

import (
	"github.com/bytearena/box2d"

	"github.com/FaabB/auto-battle-1-sub002/common/utils/shape"
	"github.com/FaabB/auto-battle-1-sub002/common/utils/vector"
)

func (game AutobattleGame) CastPhysicalBody(data interface{}) *PhysicalBody {
	return data.(*PhysicalBody)
}

type PhysicalBody struct {
	body      *box2d.B2Body
	footprint shape.Footprint
	maxSpeed  float64 // units per second; 0 for immobile entities
}

func (p *PhysicalBody) GetBody() *box2d.B2Body {
	return p.body
}

func (p PhysicalBody) GetFootprint() shape.Footprint {
	return p.footprint
}

func (p PhysicalBody) GetPosition() vector.Vector2 {
	return vector.FromB2Vec2(p.body.GetPosition())
}

func (p *PhysicalBody) SetPosition(v vector.Vector2) *PhysicalBody {
	p.body.SetTransform(v.ToB2Vec2(), p.body.GetAngle())
	return p
}

func (p PhysicalBody) GetVelocity() vector.Vector2 {
	return vector.FromB2Vec2(p.body.GetLinearVelocity())
}

func (p *PhysicalBody) SetVelocity(v vector.Vector2) *PhysicalBody {
	p.body.SetLinearVelocity(v.ToB2Vec2())
	return p
}

func (p PhysicalBody) GetMaxSpeed() float64 {
	return p.maxSpeed
}

func (p PhysicalBody) IsImmobile() bool {
	return p.maxSpeed == 0
}
