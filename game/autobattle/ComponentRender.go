package autobattle

type Render struct {
	type_  string
	static bool
}

func (game AutobattleGame) CastRender(data interface{}) *Render {
	return data.(*Render)
}

func (r Render) GetType() string {
	return r.type_
}
