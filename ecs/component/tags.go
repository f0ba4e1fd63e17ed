package component

type BirdTag struct{}

var BirdTagComponent = NewComponent[BirdTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// BackgroundTag marks sprites pinned to the camera's left edge.
type BackgroundTag struct{}

var BackgroundTagComponent = NewComponent[BackgroundTag]()
