// Package scenario defines the closed catalogue of access patterns the
// benchmark measures and the timed engine that executes them against an
// array implementation.
package scenario

import "fmt"

// Kind discriminates the scenario families.
type Kind int

const (
	InitOnly Kind = iota
	ReadUnwritten
	WriteSequential
	WriteRandom
	Mixed
	AdversarialHotspot
)

// Scenario is one named access pattern. For the MIXED family, ReadPct is the
// percentage of operations that are reads.
type Scenario struct {
	Name    string
	Kind    Kind
	ReadPct int
}

// Catalogue returns the full scenario set in execution order. The set is
// fixed: result files stay comparable across implementations only if every
// implementation runs exactly these patterns.
func Catalogue() []Scenario {
	return []Scenario{
		{Name: "INIT_ONLY", Kind: InitOnly},
		{Name: "READ_UNWRITTEN", Kind: ReadUnwritten},
		{Name: "WRITE_SEQUENTIAL", Kind: WriteSequential},
		{Name: "WRITE_RANDOM", Kind: WriteRandom},
		{Name: "MIXED_R90W10", Kind: Mixed, ReadPct: 90},
		{Name: "MIXED_R80W20", Kind: Mixed, ReadPct: 80},
		{Name: "MIXED_R70W30", Kind: Mixed, ReadPct: 70},
		{Name: "MIXED_R50W50", Kind: Mixed, ReadPct: 50},
		{Name: "MIXED_R30W70", Kind: Mixed, ReadPct: 30},
		{Name: "MIXED_R10W90", Kind: Mixed, ReadPct: 10},
		{Name: "ADVERSARIAL_HOTSPOT", Kind: AdversarialHotspot},
	}
}

// Names returns the catalogue's scenario names in execution order.
func Names() []string {
	cat := Catalogue()
	names := make([]string, len(cat))
	for i, s := range cat {
		names[i] = s.Name
	}
	return names
}

// Parse resolves a scenario name against the catalogue. The set is closed:
// anything outside it is a configuration error that must stop the run before
// any partial output is written for it.
func Parse(name string) (Scenario, error) {
	for _, s := range Catalogue() {
		if s.Name == name {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("unknown scenario %q", name)
}

// ParseAll resolves a list of names, failing on the first unknown one.
func ParseAll(names []string) ([]Scenario, error) {
	out := make([]Scenario, 0, len(names))
	for _, name := range names {
		s, err := Parse(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
