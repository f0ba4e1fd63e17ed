package component

// Score counts the tube pairs the bird has cleared this session.
type Score struct {
	Value int
}

var ScoreComponent = NewComponent[Score]()
