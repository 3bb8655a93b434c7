package geode

import (
	"testing"

	"github.com/napolitain/solver-geode/internal/models"
)

func TestPossibleActionsFromStart(t *testing.T) {
	bp := referenceBlueprints(t)[0]
	actions := PossibleActions(bp, NewState(DefaultHorizon), true)

	// Obsidian and geode bots need clay and obsidian, which nothing produces yet
	want := []BuildAction{
		{Bot: models.Ore, Wait: 5},
		{Bot: models.Clay, Wait: 3},
	}
	if len(actions) != len(want) {
		t.Fatalf("got %v, want %v", actions, want)
	}
	for i := range want {
		if actions[i] != want[i] {
			t.Errorf("action %d: got %v, want %v", i, actions[i], want[i])
		}
	}
}

func TestPossibleActionsDropsLateBuilds(t *testing.T) {
	bp := referenceBlueprints(t)[0]
	st := NewState(4)

	// ore bot needs 5 steps, clay bot 3
	actions := PossibleActions(bp, st, true)
	if len(actions) != 1 || actions[0].Bot != models.Clay {
		t.Fatalf("got %v, want only the clay bot", actions)
	}

	st.TimeLeft = 3
	if actions := PossibleActions(bp, st, true); len(actions) != 0 {
		t.Errorf("build finishing on the last step should be skipped, got %v", actions)
	}
}

func TestPossibleActionsRespectsCaps(t *testing.T) {
	bp := referenceBlueprints(t)[0]
	st := NewState(DefaultHorizon)
	st.Bots[models.Ore] = 4 // cap is the largest ore cost

	for _, a := range PossibleActions(bp, st, true) {
		if a.Bot == models.Ore {
			t.Errorf("ore bot offered at cap: %v", a)
		}
	}

	uncapped := PossibleActions(bp, st, false)
	if len(uncapped) == 0 || uncapped[0].Bot != models.Ore {
		t.Errorf("uncapped actions should include the ore bot, got %v", uncapped)
	}
}

func TestTimeToBuild(t *testing.T) {
	bp := referenceBlueprints(t)[0]
	st := NewState(DefaultHorizon)
	st.Bots[models.Ore] = 2
	st.Bots[models.Clay] = 3
	st.Resources[models.Ore] = 1
	st.Resources[models.Clay] = 4

	// obsidian bot: 3 ore (need 2 at 2/step -> 1), 14 clay (need 10 at 3/step -> 4)
	wait, ok := TimeToBuild(bp, st, models.Obsidian)
	if !ok || wait != 5 {
		t.Errorf("obsidian: got %d %v, want 5 true", wait, ok)
	}

	// already affordable: one step to build
	st.Resources[models.Ore] = 10
	wait, ok = TimeToBuild(bp, st, models.Clay)
	if !ok || wait != 1 {
		t.Errorf("clay: got %d %v, want 1 true", wait, ok)
	}

	if _, ok := TimeToBuild(bp, st, models.Geode); ok {
		t.Error("geode bot should be unreachable without obsidian production")
	}
}

func TestApplyBuildsBot(t *testing.T) {
	bp := referenceBlueprints(t)[0]
	st := Apply(bp, NewState(DefaultHorizon), BuildAction{Bot: models.Clay, Wait: 3})

	if st.TimeLeft != 21 {
		t.Errorf("TimeLeft: got %d, want 21", st.TimeLeft)
	}
	if st.Resources[models.Ore] != 1 {
		t.Errorf("ore: got %d, want 1 (3 collected, 2 spent)", st.Resources[models.Ore])
	}
	if st.Bots[models.Clay] != 1 || st.Bots[models.Ore] != 1 {
		t.Errorf("bots: got %v", st.Bots)
	}
	if st.Value() != 0 {
		t.Errorf("value: got %d, want 0", st.Value())
	}
}

func TestApplyGeodeBotAddsRemainingSteps(t *testing.T) {
	bp := referenceBlueprints(t)[0]
	st := NewState(10)
	st.Bots[models.Obsidian] = 1
	st.Resources[models.Ore] = 2
	st.Resources[models.Obsidian] = 5

	wait, ok := TimeToBuild(bp, st, models.Geode)
	if !ok || wait != 3 {
		t.Fatalf("got %d %v, want 3 true", wait, ok)
	}
	next := Apply(bp, st, BuildAction{Bot: models.Geode, Wait: wait})

	if next.Yield != 7 {
		t.Errorf("yield: got %d, want 7", next.Yield)
	}
	// 3 ore and 3 obsidian collected while waiting, 2 ore and 7 obsidian spent
	if next.Resources[models.Obsidian] != 1 || next.Resources[models.Ore] != 3 {
		t.Errorf("resources: got %v", next.Resources)
	}
	if next.Bots[models.Geode] != 1 {
		t.Errorf("geode bots: got %d", next.Bots[models.Geode])
	}
}

func TestDeriveLeavesPredecessorUntouched(t *testing.T) {
	st := NewState(DefaultHorizon)
	var d Delta
	d.Elapsed = 2
	d.Bots[models.Clay] = 1
	d.Resources[models.Ore] = 3
	d.Yield = 4

	next := st.Derive(d)
	if st != NewState(DefaultHorizon) {
		t.Errorf("predecessor changed: %+v", st)
	}
	if next.TimeLeft != 22 || next.Bots[models.Clay] != 1 || next.Resources[models.Ore] != 3 || next.Yield != 4 {
		t.Errorf("unexpected successor: %+v", next)
	}
}

func TestUpperBound(t *testing.T) {
	tests := []struct {
		left, yield, want int
	}{
		{0, 0, 0},
		{1, 3, 3},
		{2, 0, 1},
		{24, 0, 276},
		{5, 2, 12},
	}
	for _, tt := range tests {
		st := State{TimeLeft: tt.left, Yield: tt.yield}
		if got := st.UpperBound(); got != tt.want {
			t.Errorf("left=%d yield=%d: got %d, want %d", tt.left, tt.yield, got, tt.want)
		}
	}
}

func TestFrontierOrder(t *testing.T) {
	for _, tt := range []struct {
		order Order
		want  []int
	}{
		{DepthFirst, []int{3, 2, 1}},
		{BreadthFirst, []int{1, 2, 3}},
	} {
		f := newFrontier(tt.order)
		for i := 1; i <= 3; i++ {
			f.Push(node{state: State{TimeLeft: i}})
		}
		for _, w := range tt.want {
			if got := f.Pop().state.TimeLeft; got != w {
				t.Errorf("%s: got %d, want %d", tt.order, got, w)
			}
		}
		if f.Len() != 0 {
			t.Errorf("%s: %d nodes left", tt.order, f.Len())
		}
	}
}

func TestQueueCompacts(t *testing.T) {
	q := &queue{}
	for i := 0; i < 5000; i++ {
		q.Push(node{state: State{TimeLeft: i}})
	}
	for i := 0; i < 4000; i++ {
		if got := q.Pop().state.TimeLeft; got != i {
			t.Fatalf("pop %d: got %d", i, got)
		}
	}
	if q.Len() != 1000 {
		t.Errorf("len: got %d, want 1000", q.Len())
	}
	if got := q.Pop().state.TimeLeft; got != 4000 {
		t.Errorf("after compaction: got %d, want 4000", got)
	}
}

func TestParseOrder(t *testing.T) {
	for in, want := range map[string]Order{
		"":      DepthFirst,
		"dfs":   DepthFirst,
		"Stack": DepthFirst,
		"bfs":   BreadthFirst,
		"queue": BreadthFirst,
	} {
		got, err := ParseOrder(in)
		if err != nil || got != want {
			t.Errorf("ParseOrder(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseOrder("random"); err == nil {
		t.Error("expected error for unknown order")
	}
}
