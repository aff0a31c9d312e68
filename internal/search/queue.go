package search

import "github.com/vovakirdan/arcade-pathfinder/internal/physics"

// node is an open-set entry.
type node struct {
	cost  float64
	ticks int
	state physics.PhysState
}

// openSet is a min-heap on cost, driven through container/heap.
type openSet []node

func (q openSet) Len() int           { return len(q) }
func (q openSet) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q openSet) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *openSet) Push(x any) {
	*q = append(*q, x.(node))
}

func (q *openSet) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
