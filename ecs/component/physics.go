package component

import "github.com/jakecoffman/cp/v2"

// Velocity is the linear velocity in units per second.
type Velocity struct {
	cp.Vector
}

var VelocityComponent = NewComponent[Velocity]()

// Gravity is added to the vertical velocity once per tick while airborne.
type Gravity struct {
	Y float64
}

var GravityComponent = NewComponent[Gravity]()

// Movement is the constant forward speed in units per second.
type Movement struct {
	SpeedX float64
}

var MovementComponent = NewComponent[Movement]()

// Flap sets the vertical velocity when the jump trigger fires.
type Flap struct {
	Impulse float64
}

var FlapComponent = NewComponent[Flap]()
