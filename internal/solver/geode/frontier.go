package geode

import (
	"fmt"
	"strings"

	"github.com/napolitain/solver-geode/internal/models"
)

// Order selects how the frontier hands out pending states
type Order int

const (
	// DepthFirst pops the most recently pushed state (stack)
	DepthFirst Order = iota
	// BreadthFirst pops the oldest pushed state (queue)
	BreadthFirst
)

// String returns a string representation of the order
func (o Order) String() string {
	switch o {
	case DepthFirst:
		return "dfs"
	case BreadthFirst:
		return "bfs"
	default:
		return "unknown"
	}
}

// ParseOrder accepts "dfs"/"stack" and "bfs"/"queue"
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dfs", "stack", "depth-first":
		return DepthFirst, nil
	case "bfs", "queue", "breadth-first":
		return BreadthFirst, nil
	default:
		return DepthFirst, fmt.Errorf("unknown search order %q", s)
	}
}

// node is a frontier entry; last is nil unless paths are recorded
type node struct {
	state State
	last  *step
}

// step is one link of a build order, shared between siblings
type step struct {
	prev   *step
	bot    models.ResourceType
	minute int
}

// frontier holds the states waiting to be expanded
type frontier interface {
	Push(n node)
	Pop() node
	Len() int
}

func newFrontier(o Order) frontier {
	if o == BreadthFirst {
		return &queue{}
	}
	return &stack{}
}

type stack struct {
	nodes []node
}

func (s *stack) Push(n node) {
	s.nodes = append(s.nodes, n)
}

// Pop removes and returns the last pushed node
func (s *stack) Pop() node {
	n := s.nodes[len(s.nodes)-1]
	s.nodes = s.nodes[:len(s.nodes)-1]
	return n
}

func (s *stack) Len() int {
	return len(s.nodes)
}

type queue struct {
	nodes []node
	head  int
}

func (q *queue) Push(n node) {
	q.nodes = append(q.nodes, n)
}

// Pop removes and returns the first pushed node
func (q *queue) Pop() node {
	n := q.nodes[q.head]
	q.nodes[q.head] = node{}
	q.head++

	// Reclaim the consumed prefix once it dominates the slice
	if q.head > 1024 && q.head*2 > len(q.nodes) {
		q.nodes = append(q.nodes[:0], q.nodes[q.head:]...)
		q.head = 0
	}
	return n
}

func (q *queue) Len() int {
	return len(q.nodes) - q.head
}
