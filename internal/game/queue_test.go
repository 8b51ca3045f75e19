package game

import (
	"testing"

	"github.com/vovakirdan/wave-rider/internal/core"
)

// stubObstacle lets tests control visibility and observe calls.
type stubObstacle struct {
	spawn   float64
	visible bool
	hit     bool
	updates int
}

func (s *stubObstacle) Update(t float64)      { s.updates++ }
func (s *stubObstacle) Visible() bool         { return s.visible }
func (s *stubObstacle) SpawnTime() float64    { return s.spawn }
func (s *stubObstacle) Hit(boatY float64) bool { return s.hit }
func (s *stubObstacle) Draw(dst *core.Screen) {}

func TestQueueAppendOrder(t *testing.T) {
	q := &ObstacleQueue{}
	a := &stubObstacle{spawn: 1, visible: true}
	b := &stubObstacle{spawn: 2, visible: true}

	q.Append(a)
	q.Append(b)

	if q.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", q.Len())
	}
	if q.All()[0] != Obstacle(a) || q.Tail() != Obstacle(b) {
		t.Error("queue must keep insertion order with the newest at the tail")
	}
}

func TestQueueCullDropsExpiredHead(t *testing.T) {
	q := &ObstacleQueue{}
	q.Append(&stubObstacle{spawn: 1, visible: false})
	q.Append(&stubObstacle{spawn: 2, visible: false})
	q.Append(&stubObstacle{spawn: 3, visible: true})

	q.Cull()

	if q.Len() != 1 {
		t.Fatalf("Len() after cull = %d, expected 1", q.Len())
	}
	if !q.All()[0].Visible() {
		t.Error("head after cull must be visible")
	}
}

func TestQueueCullStopsAtFirstVisible(t *testing.T) {
	q := &ObstacleQueue{}
	q.Append(&stubObstacle{spawn: 1, visible: true})
	// An invisible entry behind a visible head stays: visibility is
	// only ever checked at the head, in spawn order.
	q.Append(&stubObstacle{spawn: 2, visible: false})

	q.Cull()

	if q.Len() != 2 {
		t.Errorf("Len() = %d, culling must stop at the first visible head", q.Len())
	}
}

func TestQueueCullEmpty(t *testing.T) {
	q := &ObstacleQueue{}
	q.Cull() // must not panic

	if !q.Empty() || q.Tail() != nil {
		t.Error("empty queue should stay empty with a nil tail")
	}
}

func TestQueueCullAll(t *testing.T) {
	q := &ObstacleQueue{}
	q.Append(&stubObstacle{spawn: 1, visible: false})
	q.Append(&stubObstacle{spawn: 2, visible: false})

	q.Cull()

	if !q.Empty() {
		t.Errorf("Len() = %d, expected fully culled queue", q.Len())
	}
}

func TestQueueClear(t *testing.T) {
	q := &ObstacleQueue{}
	q.Append(&stubObstacle{spawn: 1, visible: true})

	q.Clear()

	if !q.Empty() {
		t.Error("Clear should remove everything")
	}
}
