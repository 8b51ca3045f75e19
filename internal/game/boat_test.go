package game

import (
	"testing"

	"github.com/vovakirdan/wave-rider/internal/config"
)

func TestBoatStartsGroundedAtSeaLevel(t *testing.T) {
	cfg := config.Default()
	b := NewBoat(&cfg)

	if !b.Grounded() {
		t.Error("new boat should be grounded")
	}
	if b.PosY() != cfg.Physics.SeaLevel {
		t.Errorf("posY = %v, expected sea level %v", b.PosY(), cfg.Physics.SeaLevel)
	}
	if b.VelY() != 0 {
		t.Errorf("velY = %v, expected 0", b.VelY())
	}
}

func TestBoatIdleWhileGrounded(t *testing.T) {
	cfg := config.Default()
	b := NewBoat(&cfg)

	for i := 0; i < 100; i++ {
		b.Advance(false)
	}

	if !b.Grounded() || b.PosY() != cfg.Physics.SeaLevel || b.VelY() != 0 {
		t.Errorf("grounded boat must not move: posY=%v velY=%v grounded=%v",
			b.PosY(), b.VelY(), b.Grounded())
	}
}

func TestBoatJumpImpulse(t *testing.T) {
	cfg := config.Default()
	b := NewBoat(&cfg)

	// The jump step applies the impulse only.
	b.Advance(true)
	if b.Grounded() {
		t.Error("boat should be airborne after jump")
	}
	if b.VelY() != cfg.Physics.JumpImpulse {
		t.Errorf("velY = %v, expected %v", b.VelY(), cfg.Physics.JumpImpulse)
	}
	if b.PosY() != cfg.Physics.SeaLevel {
		t.Errorf("posY should not move on the jump step, got %v", b.PosY())
	}

	// The next step integrates: the boat rises by about the impulse.
	b.Advance(false)
	want := cfg.Physics.SeaLevel + cfg.Physics.JumpImpulse
	if b.PosY() != want {
		t.Errorf("posY after first airborne step = %v, expected %v", b.PosY(), want)
	}
	if b.VelY() != cfg.Physics.JumpImpulse+cfg.Physics.Gravity {
		t.Errorf("velY after gravity = %v, expected %v",
			b.VelY(), cfg.Physics.JumpImpulse+cfg.Physics.Gravity)
	}
}

func TestBoatJumpIgnoredWhileAirborne(t *testing.T) {
	cfg := config.Default()
	b := NewBoat(&cfg)

	b.Advance(true)
	velAfterJump := b.VelY()

	// A second jump while airborne must not add another impulse.
	b.Advance(true)
	if b.VelY() != velAfterJump+cfg.Physics.Gravity {
		t.Errorf("airborne jump changed velocity: velY=%v", b.VelY())
	}
}

func TestBoatFullArcLandsExactly(t *testing.T) {
	cfg := config.Default()
	b := NewBoat(&cfg)

	b.Advance(true)

	rising := true
	prevY := b.PosY()
	steps := 0
	for !b.Grounded() {
		b.Advance(false)
		steps++
		if steps > 100000 {
			t.Fatal("boat never landed")
		}
		if rising && b.PosY() > prevY {
			rising = false // apex passed
		}
		prevY = b.PosY()
	}

	if b.PosY() != cfg.Physics.SeaLevel {
		t.Errorf("landing must snap to sea level exactly, got %v", b.PosY())
	}
	if b.VelY() != 0 {
		t.Errorf("landing must zero velocity, got %v", b.VelY())
	}
	if rising {
		t.Error("boat should have passed an apex during the arc")
	}

	// With impulse 0.03 and gravity 0.0009 the arc is roughly 67 ticks.
	if steps < 30 || steps > 200 {
		t.Errorf("arc length %d ticks looks wrong for default tuning", steps)
	}
}

func TestBoatRisesImmediatelyAfterImpulse(t *testing.T) {
	cfg := config.Default()
	b := NewBoat(&cfg)

	b.Advance(true)
	start := b.PosY()
	b.Advance(false)

	if b.PosY() >= start {
		t.Errorf("boat should rise (y decrease) right after the impulse, %v -> %v", start, b.PosY())
	}
}
