package scenario

import "testing"

func TestCatalogue(t *testing.T) {
	want := []string{
		"INIT_ONLY", "READ_UNWRITTEN", "WRITE_SEQUENTIAL", "WRITE_RANDOM",
		"MIXED_R90W10", "MIXED_R80W20", "MIXED_R70W30", "MIXED_R50W50",
		"MIXED_R30W70", "MIXED_R10W90", "ADVERSARIAL_HOTSPOT",
	}

	got := Names()
	if len(got) != len(want) {
		t.Fatalf("catalogue has %d scenarios, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("catalogue[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCatalogueMixedPercents(t *testing.T) {
	wantPct := map[string]int{
		"MIXED_R90W10": 90,
		"MIXED_R80W20": 80,
		"MIXED_R70W30": 70,
		"MIXED_R50W50": 50,
		"MIXED_R30W70": 30,
		"MIXED_R10W90": 10,
	}

	for _, s := range Catalogue() {
		if s.Kind != Mixed {
			continue
		}
		if want, ok := wantPct[s.Name]; !ok || s.ReadPct != want {
			t.Errorf("%s: ReadPct = %d, want %d", s.Name, s.ReadPct, want)
		}
		delete(wantPct, s.Name)
	}
	if len(wantPct) != 0 {
		t.Errorf("missing MIXED scenarios: %v", wantPct)
	}
}

func TestParse(t *testing.T) {
	s, err := Parse("WRITE_RANDOM")
	if err != nil {
		t.Fatalf("Parse(WRITE_RANDOM) failed: %v", err)
	}
	if s.Kind != WriteRandom {
		t.Errorf("Kind = %d, want WriteRandom", s.Kind)
	}

	for _, bad := range []string{"", "write_random", "MIXED_R60W40", "WARMUP"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", bad)
		}
	}
}

func TestParseAll(t *testing.T) {
	scens, err := ParseAll([]string{"INIT_ONLY", "ADVERSARIAL_HOTSPOT"})
	if err != nil {
		t.Fatalf("ParseAll failed: %v", err)
	}
	if len(scens) != 2 {
		t.Fatalf("len = %d, want 2", len(scens))
	}

	if _, err := ParseAll([]string{"INIT_ONLY", "NOPE"}); err == nil {
		t.Error("ParseAll accepted an unknown scenario")
	}
}
