package models

import "fmt"

// ResourceType represents the different resource types a bot can produce
type ResourceType int

const (
	Ore ResourceType = iota
	Clay
	Obsidian
	Geode
)

// NumResources is the number of resource (and bot) types
const NumResources = 4

const (
	// Base is the resource produced by the starting bot
	Base = Ore
	// Terminal is the resource whose total at the horizon is maximized
	Terminal = Geode
)

// AllResourceTypes returns all resource types in deterministic order
func AllResourceTypes() []ResourceType {
	return []ResourceType{Ore, Clay, Obsidian, Geode}
}

// Valid reports whether rt is one of the known resource types
func (rt ResourceType) Valid() bool {
	return rt >= Ore && rt <= Geode
}

// String returns the lowercase resource name
func (rt ResourceType) String() string {
	switch rt {
	case Ore:
		return "ore"
	case Clay:
		return "clay"
	case Obsidian:
		return "obsidian"
	case Geode:
		return "geode"
	default:
		return fmt.Sprintf("resource(%d)", int(rt))
	}
}

// Costs is the amount of each resource type required to build one bot
type Costs [NumResources]int

// Get returns the cost in the given resource
func (c Costs) Get(rt ResourceType) int {
	if !rt.Valid() {
		return 0
	}
	return c[rt]
}

// IsZero reports whether nothing is required
func (c Costs) IsZero() bool {
	return c == Costs{}
}

// String formats non-zero entries, e.g. "3 ore and 14 clay"
func (c Costs) String() string {
	out := ""
	for _, rt := range AllResourceTypes() {
		if c[rt] == 0 {
			continue
		}
		if out != "" {
			out += " and "
		}
		out += fmt.Sprintf("%d %s", c[rt], rt)
	}
	if out == "" {
		return "nothing"
	}
	return out
}
