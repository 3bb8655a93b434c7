package models

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedBlueprint is returned when a blueprint description cannot be
	// decomposed into its numeric cost fields
	ErrMalformedBlueprint = errors.New("malformed blueprint")

	// ErrInvalidBlueprint is returned when parsed costs violate a blueprint invariant
	ErrInvalidBlueprint = errors.New("invalid blueprint")

	// ErrUnknownResource is returned for resource types outside the enumeration
	ErrUnknownResource = errors.New("unknown resource type")
)

// Blueprint is the production graph of one scenario: what each bot type
// costs and how many of each bot type are ever worth building.
// It is never mutated after NewBlueprint returns.
type Blueprint struct {
	ID    int
	costs [NumResources]Costs
	caps  [NumResources]int
}

// NewBlueprint validates the cost table and derives the build caps
func NewBlueprint(id int, costs [NumResources]Costs) (*Blueprint, error) {
	consumesBase := false
	for _, bot := range AllResourceTypes() {
		for _, rt := range AllResourceTypes() {
			amount := costs[bot][rt]
			if amount < 0 {
				return nil, fmt.Errorf("%w: blueprint %d: %s bot costs %d %s",
					ErrInvalidBlueprint, id, bot, amount, rt)
			}
			if rt == Terminal && amount > 0 {
				// geodes are never stockpiled, so nothing can pay in them
				return nil, fmt.Errorf("%w: blueprint %d: %s bot costs %s",
					ErrInvalidBlueprint, id, bot, Terminal)
			}
			if rt == Base && amount > 0 {
				consumesBase = true
			}
		}
	}
	if !consumesBase {
		return nil, fmt.Errorf("%w: blueprint %d: no bot consumes %s", ErrInvalidBlueprint, id, Base)
	}

	bp := &Blueprint{ID: id, costs: costs}
	for _, rt := range AllResourceTypes() {
		if rt == Terminal {
			continue
		}
		for _, bot := range AllResourceTypes() {
			bp.caps[rt] = max(bp.caps[rt], costs[bot][rt])
		}
	}
	return bp, nil
}

// NewStandardBlueprint builds a blueprint from the seven numbers of the
// canonical description: ore bot (ore), clay bot (ore), obsidian bot
// (ore, clay), geode bot (ore, obsidian)
func NewStandardBlueprint(id, oreOre, clayOre, obsidianOre, obsidianClay, geodeOre, geodeObsidian int) (*Blueprint, error) {
	var costs [NumResources]Costs
	costs[Ore][Ore] = oreOre
	costs[Clay][Ore] = clayOre
	costs[Obsidian][Ore] = obsidianOre
	costs[Obsidian][Clay] = obsidianClay
	costs[Geode][Ore] = geodeOre
	costs[Geode][Obsidian] = geodeObsidian
	return NewBlueprint(id, costs)
}

// CostOf returns the cost of building one bot of the given type
func (b *Blueprint) CostOf(bot ResourceType) (Costs, error) {
	if !bot.Valid() {
		return Costs{}, fmt.Errorf("%w: %d", ErrUnknownResource, int(bot))
	}
	return b.costs[bot], nil
}

// Cost is CostOf for callers that already hold a valid bot type
func (b *Blueprint) Cost(bot ResourceType) Costs {
	return b.costs[bot]
}

// CapFor returns the maximum useful number of bots of the given type.
// The second value is false for the terminal type, which is unbounded.
func (b *Blueprint) CapFor(bot ResourceType) (int, bool) {
	if bot == Terminal || !bot.Valid() {
		return 0, false
	}
	return b.caps[bot], true
}

// Caps returns the caps of every non-terminal bot type; the terminal entry is 0
func (b *Blueprint) Caps() [NumResources]int {
	return b.caps
}

// String renders the blueprint in its canonical text form, which the loader
// parses back into the same blueprint
func (b *Blueprint) String() string {
	return fmt.Sprintf("Blueprint %d: Each ore robot costs %d ore. Each clay robot costs %d ore. "+
		"Each obsidian robot costs %d ore and %d clay. Each geode robot costs %d ore and %d obsidian.",
		b.ID,
		b.costs[Ore][Ore],
		b.costs[Clay][Ore],
		b.costs[Obsidian][Ore], b.costs[Obsidian][Clay],
		b.costs[Geode][Ore], b.costs[Geode][Obsidian])
}
