// Package game implements the wave simulation: boat physics, obstacle
// lifecycle, collision detection, and the playing/game-over state
// machine. It depends only on core and config so the whole simulation
// is testable without a terminal.
package game

import (
	"math"

	"github.com/vovakirdan/wave-rider/internal/config"
	"github.com/vovakirdan/wave-rider/internal/core"
)

// Spray motion law: spawns near the right edge and rides the wave
// leftward while its crest follows one cosine arc.
const (
	sprayStartX = 0.9
	sprayBaseY  = 0.75
	sprayAmp    = 0.25
	sprayFreq   = 2.0
)

// pelicanDodgeBand is the vertical tolerance of the pelican hit test:
// the boat collides unless it stays below the band, so jumping into a
// pelican is what kills you.
const pelicanDodgeBand = 0.2

// Obstacle is anything the boat must avoid. Implementations recompute
// position and visibility as pure functions of elapsed time since
// spawn; nothing is integrated incrementally, so the same time sample
// always yields the same state regardless of frame rate.
type Obstacle interface {
	// Update recomputes position and visibility for the given time sample.
	Update(t float64)

	// Visible reports whether the obstacle is still on screen.
	// Once false it never turns true again for later samples.
	Visible() bool

	// SpawnTime returns the creation timestamp, in seconds.
	SpawnTime() float64

	// Hit tests collision against the boat at the given vertical
	// position. Pure predicate over the obstacle's current position;
	// boundary contact does not count as a hit.
	Hit(boatY float64) bool

	// Draw renders the obstacle into the cell buffer.
	Draw(dst *core.Screen)
}

// Spray is a burst of water thrown up by the wave. It drifts left at
// wave speed while its crest rises and falls on a cosine, and expires
// after one full arc.
type Spray struct {
	spawnTime float64
	pos       core.Vec2
	visible   bool
	cfg       *config.Config
}

// NewSpray creates a spray spawned at the given timestamp.
func NewSpray(spawnTime float64, cfg *config.Config) *Spray {
	s := &Spray{spawnTime: spawnTime, visible: true, cfg: cfg}
	s.Update(spawnTime)
	return s
}

// Update recomputes the spray from elapsed time since spawn.
func (s *Spray) Update(t float64) {
	dt := t - s.spawnTime
	s.pos = core.Vec2{
		X: sprayStartX - s.cfg.Obstacles.WaveSpeed*dt,
		Y: sprayBaseY + sprayAmp*math.Cos(sprayFreq*dt),
	}
	s.visible = dt <= s.cfg.Obstacles.SprayLifetime
}

// Visible reports whether the spray's arc is still running.
func (s *Spray) Visible() bool { return s.visible }

// SpawnTime returns the creation timestamp.
func (s *Spray) SpawnTime() float64 { return s.spawnTime }

// Pos returns the spray's current top-left position.
func (s *Spray) Pos() core.Vec2 { return s.pos }

// Hit reports whether a boat hull at boatY collides with the spray.
// The hull must overlap the spray's extent past its half-width offset
// and sit below the crest (boatY numerically greater than the spray y).
func (s *Spray) Hit(boatY float64) bool {
	boat := s.cfg.Boat
	w := s.cfg.Obstacles.SprayWidth
	return boat.X+boat.Width > s.pos.X+0.5*w &&
		boat.X < s.pos.X+w &&
		boatY > s.pos.Y
}

// Pelican flies a fixed band near the top of the screen, faster than
// the wave, flapping between two frames.
type Pelican struct {
	spawnTime float64
	pos       core.Vec2
	visible   bool
	animIndex int
	cfg       *config.Config
}

// NewPelican creates a pelican spawned at the given timestamp.
func NewPelican(spawnTime float64, cfg *config.Config) *Pelican {
	p := &Pelican{spawnTime: spawnTime, visible: true, cfg: cfg}
	p.Update(spawnTime)
	return p
}

// Update recomputes the pelican from elapsed time since spawn.
func (p *Pelican) Update(t float64) {
	dt := t - p.spawnTime
	p.pos = core.Vec2{
		X: 1 - p.cfg.Obstacles.PelicanSpeed*dt,
		Y: p.cfg.Obstacles.PelicanY,
	}
	p.visible = p.pos.X >= -p.cfg.Obstacles.PelicanWidth
	p.animIndex = int(dt/p.cfg.Obstacles.FlapPeriod) % 2
}

// Visible reports whether the pelican has not yet left the screen.
func (p *Pelican) Visible() bool { return p.visible }

// SpawnTime returns the creation timestamp.
func (p *Pelican) SpawnTime() float64 { return p.spawnTime }

// Pos returns the pelican's current top-left position.
func (p *Pelican) Pos() core.Vec2 { return p.pos }

// AnimIndex returns the current wing frame, 0 or 1. Cosmetic only.
func (p *Pelican) AnimIndex() int { return p.animIndex }

// Hit reports whether a boat hull at boatY collides with the pelican.
// The hull must overlap the pelican's extent and have risen into the
// dodge band; a boat that stays low passes underneath.
func (p *Pelican) Hit(boatY float64) bool {
	boat := p.cfg.Boat
	return boat.X+boat.Width > p.pos.X &&
		boat.X < p.pos.X+p.cfg.Obstacles.PelicanWidth &&
		boatY-pelicanDodgeBand < p.pos.Y+pelicanDodgeBand
}
