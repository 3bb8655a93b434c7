package geode

import (
	"fmt"

	"github.com/napolitain/solver-geode/internal/models"
)

// BuildAction jumps straight to the completion of the next bot
type BuildAction struct {
	Bot models.ResourceType
	// Wait is the number of steps until the bot is complete, including the
	// step in which it is built
	Wait int
}

func (a BuildAction) String() string {
	return fmt.Sprintf("%s bot in %d", a.Bot, a.Wait)
}

// TimeToBuild returns the steps needed to afford and build one more bot of
// the given type. It returns false when a required resource has no
// producer yet.
func TimeToBuild(bp *models.Blueprint, s State, bot models.ResourceType) (int, bool) {
	cost := bp.Cost(bot)
	rates := s.Rates()

	wait := 0
	for _, rt := range models.AllResourceTypes() {
		if cost[rt] == 0 {
			continue
		}
		if rates[rt] == 0 {
			return 0, false
		}
		need := cost[rt] - s.Resources[rt]
		if need <= 0 {
			continue
		}
		wait = max(wait, (need+rates[rt]-1)/rates[rt])
	}
	return wait + 1, true
}

// PossibleActions lists every bot that can be completed with time to spare.
// With capped set, bot types already at their cap are left out. Actions are
// ordered from ore to geode.
func PossibleActions(bp *models.Blueprint, s State, capped bool) []BuildAction {
	actions := make([]BuildAction, 0, models.NumResources)
	for _, bot := range models.AllResourceTypes() {
		if capped {
			if limit, ok := bp.CapFor(bot); ok && s.Bots[bot] >= limit {
				continue
			}
		}
		wait, ok := TimeToBuild(bp, s, bot)
		if !ok || wait >= s.TimeLeft {
			continue
		}
		actions = append(actions, BuildAction{Bot: bot, Wait: wait})
	}
	return actions
}

// Apply returns the state reached by taking a. Existing bots produce for
// the whole wait, the cost is paid, and the new bot joins. A geode bot adds
// one geode for every step left after it completes.
func Apply(bp *models.Blueprint, s State, a BuildAction) State {
	cost := bp.Cost(a.Bot)
	rates := s.Rates()

	d := Delta{Elapsed: a.Wait}
	for _, rt := range models.AllResourceTypes() {
		if rt == models.Terminal {
			continue
		}
		d.Resources[rt] = rates[rt]*a.Wait - cost[rt]
	}
	d.Bots[a.Bot] = 1
	if a.Bot == models.Terminal {
		d.Yield = s.TimeLeft - a.Wait
	}
	return s.Derive(d)
}
