package draw

import (
	"testing"
)

func TestPickIndex_EmptyTable(t *testing.T) {
	_, err := pickIndex(nil)
	if err != ErrEmptyTable {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPickIndex_RejectsNonPositiveWeight(t *testing.T) {
	_, err := pickIndex([]int{10, 0, 5})
	if err == nil {
		t.Fatal("expected error for zero weight")
	}
	_, err = pickIndex([]int{10, -3})
	if err == nil {
		t.Fatal("expected error for negative weight")
	}
}

func TestPickIndex_Boundaries(t *testing.T) {
	originalRandom := randomInt
	defer func() {
		randomInt = originalRandom
	}()

	// weights 35/35/10/10/5/5, cumulative 35/70/80/90/95/100
	weights := []int{35, 35, 10, 10, 5, 5}
	cases := []struct {
		picked int
		want   int
	}{
		{0, 0},
		{34, 0},
		{35, 1},
		{69, 1},
		{70, 2},
		{79, 2},
		{80, 3},
		{90, 4},
		{94, 4},
		{95, 5},
		{99, 5},
	}

	for _, c := range cases {
		randomInt = func(max int) (int, error) {
			return c.picked, nil
		}
		got, err := pickIndex(weights)
		if err != nil {
			t.Fatalf("pickIndex failed for picked=%d: %v", c.picked, err)
		}
		if got != c.want {
			t.Fatalf("picked=%d: got index %d, want %d", c.picked, got, c.want)
		}
	}
}

func TestRoulette_ReturnsTableEntry(t *testing.T) {
	for i := 0; i < 1000; i++ {
		p, err := Roulette()
		if err != nil {
			t.Fatalf("Roulette failed: %v", err)
		}
		found := false
		for _, tp := range RouletteTable {
			if tp == p {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("prize %+v not in table", p)
		}
	}
}

func TestDailyBonus_Convergence(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping statistical test in short mode")
	}

	const samples = 100000
	counts := map[int64]int{}
	for i := 0; i < samples; i++ {
		stars, err := DailyBonus()
		if err != nil {
			t.Fatalf("DailyBonus failed: %v", err)
		}
		counts[stars]++
	}

	expected := map[int64]float64{5: 0.70, 10: 0.15, 25: 0.10, 50: 0.05}
	const tolerance = 0.02

	for stars, want := range expected {
		got := float64(counts[stars]) / samples
		if got < want-tolerance || got > want+tolerance {
			t.Errorf("stars=%d: observed ratio %.4f outside %.2f±%.2f", stars, got, want, tolerance)
		}
	}
}

func TestRoulette_Convergence(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping statistical test in short mode")
	}

	const samples = 100000
	counts := map[string]int{}
	for i := 0; i < samples; i++ {
		p, err := Roulette()
		if err != nil {
			t.Fatalf("Roulette failed: %v", err)
		}
		counts[p.Name]++
	}

	total := 0
	for _, p := range RouletteTable {
		total += p.Weight
	}
	const tolerance = 0.02
	for _, p := range RouletteTable {
		want := float64(p.Weight) / float64(total)
		got := float64(counts[p.Name]) / samples
		if got < want-tolerance || got > want+tolerance {
			t.Errorf("%s: observed ratio %.4f outside %.2f±%.2f", p.Name, got, want, tolerance)
		}
	}
}
