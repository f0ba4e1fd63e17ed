package component

// Input stores per-frame input state for an entity.
type Input struct {
	FlapPressed bool
}

var InputComponent = NewComponent[Input]()
