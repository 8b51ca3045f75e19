package game

import (
	"github.com/vovakirdan/wave-rider/internal/config"
	"github.com/vovakirdan/wave-rider/internal/core"
)

// Game owns one session of the simulation: the boat, the obstacle
// queue, the spawner, and the playing/game-over state machine. All
// state changes happen synchronously inside Step; the host calls it
// once per frame with a monotonic time sample.
type Game struct {
	cfg      config.Config
	boat     *Boat
	queue    *ObstacleQueue
	spawner  *Spawner
	time     float64 // last sample taken while playing; frozen in game over
	gameOver bool
}

// New creates a game session with the given tuning and RNG seed.
func New(cfg config.Config, seed int64) *Game {
	g := &Game{cfg: cfg}
	g.boat = NewBoat(&g.cfg)
	g.queue = &ObstacleQueue{}
	g.spawner = NewSpawner(seed, &g.cfg)
	return g
}

// Step advances the simulation by one frame. now is this frame's
// monotonic time sample in seconds.
//
// While playing the order is fixed: boat physics, hit tests in spawn
// order, head culling, spawning, obstacle updates. The first hit ends
// the frame immediately, so that frame's cull/spawn/update never run.
// In game over only the retry action is honored and the time sample is
// discarded, so obstacles do not age.
func (g *Game) Step(now float64, in core.InputFrame) {
	if g.gameOver {
		if in.Has(core.ActionRetry) {
			g.retry()
		}
		return
	}

	g.time = now

	g.boat.Advance(in.Has(core.ActionJump))

	for _, o := range g.queue.All() {
		if o.Hit(g.boat.PosY()) {
			g.gameOver = true
			return
		}
	}

	g.queue.Cull()
	g.spawner.MaybeSpawn(now, g.queue)

	for _, o := range g.queue.All() {
		o.Update(now)
	}
}

// retry resets the session for a new run: boat back on the water,
// queue emptied, a fresh interval drawn. The RNG keeps its state.
func (g *Game) retry() {
	g.gameOver = false
	g.queue.Clear()
	g.boat.Reset()
	g.spawner.RedrawInterval()
}

// Over reports whether the session is in the game-over state.
func (g *Game) Over() bool { return g.gameOver }

// Time returns the last time sample taken while playing.
func (g *Game) Time() float64 { return g.time }

// Boat returns the player boat.
func (g *Game) Boat() *Boat { return g.boat }

// Obstacles returns the live obstacles in spawn order.
func (g *Game) Obstacles() []Obstacle { return g.queue.All() }

// Config returns the session's tuning.
func (g *Game) Config() *config.Config { return &g.cfg }
