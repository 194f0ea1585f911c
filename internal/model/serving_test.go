package model

import "testing"

func TestServingCount_Initial(t *testing.T) {
	count := NewServingCount(DefaultServings)
	if count.Value() != 6 {
		t.Errorf("Expected initial servings 6, got %d", count.Value())
	}
}

func TestServingCount_IncrementDecrement(t *testing.T) {
	tests := []struct {
		name     string
		ops      string // '+' increments, '-' decrements
		expected int
	}{
		{"single increment", "+", 7},
		{"single decrement", "-", 5},
		{"round trip", "+-", 6},
		{"many increments", "++++", 10},
		{"down to zero", "------", 0},
		// No floor: the counter goes negative like the shipped screen does.
		{"seven decrements", "-------", -1},
	}

	for _, test := range tests {
		count := NewServingCount(DefaultServings)
		for _, op := range test.ops {
			if op == '+' {
				count.Increment()
			} else {
				count.Decrement()
			}
		}
		if count.Value() != test.expected {
			t.Errorf("%s: expected %d, got %d", test.name, test.expected, count.Value())
		}
	}
}

func TestServingCount_ChangeCallback(t *testing.T) {
	count := NewServingCount(DefaultServings)

	var seen []int
	count.SetChangeCallback(func(v int) {
		seen = append(seen, v)
	})

	count.Increment()
	count.Decrement()
	count.Decrement()

	expected := []int{7, 6, 5}
	if len(seen) != len(expected) {
		t.Fatalf("Expected %d callbacks, got %d", len(expected), len(seen))
	}
	for i, v := range expected {
		if seen[i] != v {
			t.Errorf("Callback %d: expected %d, got %d", i, v, seen[i])
		}
	}
}
