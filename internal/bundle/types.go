package bundle

import (
	"maps"
	"slices"
)

// Record describes a single bundle emitted by the upstream bundler.
type Record struct {
	// Name identifies the bundle. Names are unique within a run.
	Name string `json:"name" yaml:"name"`
	// OutFile is the path of the optimized bundle file.
	OutFile string `json:"outFile" yaml:"outFile"`
	// Include lists the module identifiers packed into the bundle.
	Include []string `json:"include" yaml:"include"`
}

// Accumulator collects the location and include list of every accepted bundle.
type Accumulator struct {
	// Mapping maps bundle name to its prefixed public location.
	Mapping map[string]string `json:"mapping"`
	// Bundles maps bundle name to its include list.
	Bundles map[string][]string `json:"bundles"`
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		Mapping: map[string]string{},
		Bundles: map[string][]string{},
	}
}

// Add records a bundle. A later call with the same name replaces the earlier
// entry. The include list is copied; nil is stored as an empty list.
func (a *Accumulator) Add(name, location string, include []string) {
	list := make([]string, len(include))
	copy(list, include)

	a.Mapping[name] = location
	a.Bundles[name] = list
}

// Len returns the number of bundles collected.
func (a *Accumulator) Len() int {
	return len(a.Mapping)
}

// Names returns the collected bundle names in sorted order.
func (a *Accumulator) Names() []string {
	return slices.Sorted(maps.Keys(a.Mapping))
}

// Clone returns a deep copy of the accumulator.
func (a *Accumulator) Clone() *Accumulator {
	c := &Accumulator{
		Mapping: maps.Clone(a.Mapping),
		Bundles: make(map[string][]string, len(a.Bundles)),
	}

	for name, include := range a.Bundles {
		c.Bundles[name] = slices.Clone(include)
	}

	return c
}

// Markers locate the mapping and bundles data inside an output file.
// For JSON files they are dotted document paths, for script and markup
// files they are literal tokens replaced in place.
type Markers struct {
	Mapping string `json:"mapping" yaml:"mapping"`
	Bundles string `json:"bundles" yaml:"bundles"`
}

// Or returns m with every empty field taken from def.
func (m Markers) Or(def Markers) Markers {
	if m.Mapping == "" {
		m.Mapping = def.Mapping
	}

	if m.Bundles == "" {
		m.Bundles = def.Bundles
	}

	return m
}
