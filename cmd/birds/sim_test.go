package main

import "testing"

func TestScriptedLevel(t *testing.T) {
	tests := []struct {
		tick, every, hold int
		expected          bool
	}{
		{0, 30, 3, true},
		{2, 30, 3, true},
		{3, 30, 3, false},
		{30, 30, 3, true},
		{5, 0, 3, false},
		{0, 10, 0, true}, // A press lasts at least one tick
		{1, 10, 0, false},
	}

	for _, tc := range tests {
		if got := scriptedLevel(tc.tick, tc.every, tc.hold); got != tc.expected {
			t.Errorf("scriptedLevel(%d, %d, %d) = %v, expected %v", tc.tick, tc.every, tc.hold, got, tc.expected)
		}
	}
}

func TestParseRunID(t *testing.T) {
	if id, err := parseRunID("12"); err != nil || id != 12 {
		t.Errorf("parseRunID(12) = %d, %v", id, err)
	}
	for _, bad := range []string{"", "x", "0", "-3"} {
		if _, err := parseRunID(bad); err == nil {
			t.Errorf("parseRunID(%q) should fail", bad)
		}
	}
}
