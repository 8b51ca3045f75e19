package game

import "github.com/vovakirdan/wave-rider/internal/config"

// Boat is the player craft. It sits at a fixed horizontal band and
// only moves vertically: grounded on the wave, or airborne under an
// impulse-and-gravity integrator.
type Boat struct {
	posY     float64
	velY     float64
	grounded bool
	cfg      *config.Config
}

// NewBoat creates a boat resting at sea level.
func NewBoat(cfg *config.Config) *Boat {
	b := &Boat{cfg: cfg}
	b.Reset()
	return b
}

// Reset puts the boat back on the water: sea level, zero velocity.
func (b *Boat) Reset() {
	b.posY = b.cfg.Physics.SeaLevel
	b.velY = 0
	b.grounded = true
}

// Advance runs one physics step. Integration is Euler with a fixed
// per-tick step and no delta-time scaling, so jump height is tied to
// the tick rate; this matches the original cadence and is kept on
// purpose.
//
// The step the jump lands on only applies the impulse; integration
// starts on the following step. Landing snaps posY to sea level
// exactly and zeroes the velocity.
func (b *Boat) Advance(jump bool) {
	switch {
	case b.grounded:
		if jump {
			b.velY += b.cfg.Physics.JumpImpulse
			b.grounded = false
		}
	case b.posY > b.cfg.Physics.SeaLevel:
		// y grows downward: past sea level means back in the water.
		b.posY = b.cfg.Physics.SeaLevel
		b.velY = 0
		b.grounded = true
	default:
		b.posY += b.velY
		b.velY += b.cfg.Physics.Gravity
	}
}

// PosY returns the boat's vertical position.
func (b *Boat) PosY() float64 { return b.posY }

// VelY returns the boat's vertical velocity.
func (b *Boat) VelY() float64 { return b.velY }

// Grounded reports whether the boat is resting on the wave.
func (b *Boat) Grounded() bool { return b.grounded }
