package component

// Transform is a world position in units with y pointing up. For sprites it is
// the bottom-left corner.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
