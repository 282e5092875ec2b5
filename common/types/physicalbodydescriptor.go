package types

// PhysicalBodyDescriptor is set as UserData on Box2D physical bodies to be
// able to map bodies back to their entity from contact-filter callbacks
// and overlap queries.
type PhysicalBodyDescriptor struct {
	Type _physicaltype
	ID   string
}

type _physicaltype string

func (t _physicaltype) String() string {
	switch t {
	case PhysicalBodyDescriptorType.Unit:
		return "Unit"
	case PhysicalBodyDescriptorType.Structure:
		return "Structure"
	case PhysicalBodyDescriptorType.Projectile:
		return "Projectile"
	}

	return "UnknownType"
}

var PhysicalBodyDescriptorType = struct {
	Unit       _physicaltype
	Structure  _physicaltype
	Projectile _physicaltype
}{
	Unit:       _physicaltype("u"),
	Structure:  _physicaltype("s"),
	Projectile: _physicaltype("p"),
}

func MakePhysicalBodyDescriptor(type_ _physicaltype, id string) PhysicalBodyDescriptor {
	return PhysicalBodyDescriptor{
		Type: type_,
		ID:   id,
	}
}
