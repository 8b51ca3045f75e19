package game

// ObstacleQueue holds live obstacles in spawn order, oldest at the
// head. New obstacles are always appended at the tail with
// non-decreasing spawn times.
type ObstacleQueue struct {
	items []Obstacle
}

// Append adds an obstacle at the tail.
func (q *ObstacleQueue) Append(o Obstacle) {
	q.items = append(q.items, o)
}

// Len returns the number of live obstacles.
func (q *ObstacleQueue) Len() int {
	return len(q.items)
}

// Empty reports whether the queue holds no obstacles.
func (q *ObstacleQueue) Empty() bool {
	return len(q.items) == 0
}

// Tail returns the most recently spawned obstacle, or nil when empty.
func (q *ObstacleQueue) Tail() Obstacle {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[len(q.items)-1]
}

// All returns the live obstacles in spawn order. The slice is the
// queue's backing storage; callers iterate, they do not keep it.
func (q *ObstacleQueue) All() []Obstacle {
	return q.items
}

// Cull drops obstacles from the head while the head reports not
// visible. Motion laws are monotonic in elapsed time, so entries
// expire in spawn order; culling stops at the first visible entry and
// never re-checks later ones.
func (q *ObstacleQueue) Cull() {
	for len(q.items) > 0 && !q.items[0].Visible() {
		q.items[0] = nil
		q.items = q.items[1:]
	}
}

// Clear removes every obstacle.
func (q *ObstacleQueue) Clear() {
	q.items = nil
}
