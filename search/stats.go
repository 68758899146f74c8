package search

import "gopkg.in/yaml.v3"

// Stats exposes kernel internals for inspection (e.g. by an external
// `report` tool) without altering search behavior — Search always
// maintains these counters, Stats just reads them out.
type Stats struct {
	NodesAllocated uint64  `yaml:"nodes_allocated"`
	NodesExpanded  uint64  `yaml:"nodes_expanded"`
	NodesReopened  uint64  `yaml:"nodes_reopened"`
	CostOverflows  uint64  `yaml:"cost_overflows"`
	HeapPeak       int     `yaml:"heap_peak"`
	MapLoad        float64 `yaml:"map_load"`
}

// YAML renders s using its yaml struct tags, for a `report` tool (or
// anything else) that wants a run's counters in a human-readable,
// diffable form rather than as a Go struct.
func (s Stats) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
