package game

import (
	"math/rand"

	"github.com/vovakirdan/wave-rider/internal/config"
)

// Spawner produces new obstacles on a randomized schedule: a fair coin
// picks the kind, and the gap to the next spawn is drawn uniformly
// from the configured interval range on every spawn, including before
// the first one.
type Spawner struct {
	rng      *rand.Rand
	interval float64
	cfg      *config.Config
}

// NewSpawner creates a spawner seeded for the whole run and draws the
// initial interval.
func NewSpawner(seed int64, cfg *config.Config) *Spawner {
	s := &Spawner{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
	s.RedrawInterval()
	return s
}

// RedrawInterval draws a fresh interval from [min, max). Called on
// every spawn and on retry; the RNG itself lives for the process.
func (s *Spawner) RedrawInterval() {
	lo := s.cfg.Spawner.MinInterval
	hi := s.cfg.Spawner.MaxInterval
	s.interval = lo + (hi-lo)*s.rng.Float64()
}

// Interval returns the currently scheduled gap in seconds.
func (s *Spawner) Interval() float64 {
	return s.interval
}

// MaybeSpawn appends a new obstacle to the queue when one is due: the
// queue is empty, or the newest obstacle is older than the current
// interval. Returns the spawned obstacle, or nil when none was due.
func (s *Spawner) MaybeSpawn(now float64, q *ObstacleQueue) Obstacle {
	if !q.Empty() && now <= q.Tail().SpawnTime()+s.interval {
		return nil
	}

	var o Obstacle
	if s.rng.Intn(2) == 0 {
		o = NewSpray(now, s.cfg)
	} else {
		o = NewPelican(now, s.cfg)
	}
	q.Append(o)
	s.RedrawInterval()
	return o
}
