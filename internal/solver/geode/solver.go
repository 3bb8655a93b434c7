package geode

import (
	"errors"
	"fmt"
	"time"

	"github.com/napolitain/solver-geode/internal/models"
)

var (
	// ErrInvalidHorizon is returned for horizons below one step
	ErrInvalidHorizon = errors.New("horizon must be at least 1")

	// ErrExhaustedSearch means the frontier emptied without ever evaluating
	// a leaf, which points at a broken model rather than bad input
	ErrExhaustedSearch = errors.New("search exhausted without reaching a leaf")

	// ErrStateBudgetExceeded is returned when Options.MaxStates is reached
	ErrStateBudgetExceeded = errors.New("state budget exceeded")
)

// Observer is notified whenever the best known yield improves
type Observer interface {
	OnImprove(bp *models.Blueprint, best int, s State)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(bp *models.Blueprint, best int, s State)

// OnImprove calls f
func (f ObserverFunc) OnImprove(bp *models.Blueprint, best int, s State) {
	f(bp, best, s)
}

// Options tunes the search. The zero value is depth-first with caps and
// upper-bound pruning, no memoization and no state budget.
type Options struct {
	Order Order

	// Uncapped lets non-terminal bot counts grow past their caps
	Uncapped bool

	// NoBound disables upper-bound pruning
	NoBound bool

	// Memoize skips states that were already expanded
	Memoize bool

	// MaxStates limits the number of expanded states; 0 means no limit
	MaxStates int

	// RecordPath keeps the build order of the best state in the result
	RecordPath bool

	Observer Observer
}

// Stats counts what the traversal did
type Stats struct {
	Expanded    int
	Leaves      int
	Pruned      int
	MemoHits    int
	MaxFrontier int
}

// Step is one bot of a build order
type Step struct {
	Bot models.ResourceType
	// Minute is the step at the end of which the bot is ready
	Minute int
}

// Result is the outcome of one search
type Result struct {
	BlueprintID int
	Horizon     int
	Geodes      int
	Path        []Step
	Stats       Stats
	Elapsed     time.Duration
}

// Solver runs the branch-and-bound search for one blueprint
type Solver struct {
	Blueprint *models.Blueprint
	Options   Options
}

// NewSolver creates a new solver
func NewSolver(bp *models.Blueprint, opts Options) *Solver {
	return &Solver{
		Blueprint: bp,
		Options:   opts,
	}
}

// Solve returns the most geodes reachable within horizon using the default options
func Solve(bp *models.Blueprint, horizon int) (int, error) {
	res, err := NewSolver(bp, Options{}).Solve(horizon)
	if err != nil {
		return 0, err
	}
	return res.Geodes, nil
}

// Solve explores build orders from the starting state and returns the best yield
func (s *Solver) Solve(horizon int) (*Result, error) {
	if s.Blueprint == nil {
		return nil, fmt.Errorf("%w: nil blueprint", models.ErrInvalidBlueprint)
	}
	if horizon < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHorizon, horizon)
	}

	started := time.Now()
	bp := s.Blueprint
	opts := s.Options

	var stats Stats
	var seen map[State]struct{}
	if opts.Memoize {
		seen = make(map[State]struct{})
	}

	front := newFrontier(opts.Order)
	front.Push(node{state: NewState(horizon)})

	best := -1
	var bestPath *step

	for front.Len() > 0 {
		n := front.Pop()
		st := n.state

		if seen != nil {
			if _, ok := seen[st]; ok {
				stats.MemoHits++
				continue
			}
			seen[st] = struct{}{}
		}

		if v := st.Value(); v > best {
			best = v
			bestPath = n.last
			if opts.Observer != nil {
				opts.Observer.OnImprove(bp, best, st)
			}
		}

		if !opts.NoBound && st.UpperBound() <= best {
			stats.Pruned++
			continue
		}

		actions := PossibleActions(bp, st, !opts.Uncapped)
		if len(actions) == 0 {
			stats.Leaves++
			continue
		}

		stats.Expanded++
		if opts.MaxStates > 0 && stats.Expanded > opts.MaxStates {
			return nil, fmt.Errorf("%w: blueprint %d after %d states",
				ErrStateBudgetExceeded, bp.ID, opts.MaxStates)
		}

		// Pushed ore first so a stack tries geode bots first
		for _, a := range actions {
			child := node{state: Apply(bp, st, a)}
			if opts.RecordPath {
				child.last = &step{
					prev:   n.last,
					bot:    a.Bot,
					minute: horizon - child.state.TimeLeft,
				}
			}
			front.Push(child)
		}
		stats.MaxFrontier = max(stats.MaxFrontier, front.Len())
	}

	if stats.Leaves == 0 && stats.Pruned == 0 {
		return nil, fmt.Errorf("%w: blueprint %d", ErrExhaustedSearch, bp.ID)
	}

	return &Result{
		BlueprintID: bp.ID,
		Horizon:     horizon,
		Geodes:      best,
		Path:        unwind(bestPath),
		Stats:       stats,
		Elapsed:     time.Since(started),
	}, nil
}

// unwind turns a linked build order into a slice, earliest bot first
func unwind(last *step) []Step {
	var path []Step
	for p := last; p != nil; p = p.prev {
		path = append(path, Step{Bot: p.bot, Minute: p.minute})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
