package pattern

import (
	"testing"
)

func TestOnsets(t *testing.T) {
	tests := []struct {
		id       string
		length   int
		pulses   int
		rotation int
		want     []int
	}{
		{"tresillo", 8, 3, 0, []int{0, 3, 6}},
		{"two in four", 4, 2, 0, []int{0, 2}},
		{"no pulses", 4, 0, 0, nil},
		{"empty", 0, 0, 0, nil},
	}
	for _, tt := range tests {
		got := New(tt.length, tt.pulses, tt.rotation).Onsets()
		if len(got) != len(tt.want) {
			t.Fatalf("test %s:\ngot  %v\nwant %v", tt.id, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("test %s:\ngot  %v\nwant %v", tt.id, got, tt.want)
			}
		}
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		id   string
		p    *Pattern
		want int
	}{
		{"bjorklund", New(13, 5, -3), 5},
		{"all pulses", New(8, 9, 0), 8},
		{"no pulses", WithLength(6), 0},
		{"empty", WithLength(0), 0},
	}
	for _, tt := range tests {
		if got := tt.p.Count(); got != tt.want {
			t.Fatalf("test %s: got %d, want %d", tt.id, got, tt.want)
		}
	}
}
