package component

// GroundTile is one of the two alternating ground segments.
type GroundTile struct {
	Width  float64
	Height float64
}

var GroundTileComponent = NewComponent[GroundTile]()
