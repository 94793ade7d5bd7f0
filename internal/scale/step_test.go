package scale

import "testing"

func TestSteps(t *testing.T) {
	steps := Steps()

	if len(steps) != 24 {
		t.Fatalf("Steps() returned %d steps, want 24", len(steps))
	}
	if steps[0] != Darkest {
		t.Errorf("first step = %d, want %d", steps[0], Darkest)
	}
	if steps[len(steps)-1] != Lightest {
		t.Errorf("last step = %d, want %d", steps[len(steps)-1], Lightest)
	}
	for i := 1; i < len(steps); i++ {
		if steps[i]-steps[i-1] != 100 {
			t.Errorf("gap between %d and %d is not 100", steps[i-1], steps[i])
		}
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		name string
		step Step
		want int
	}{
		{
			name: "darkest",
			step: 200,
			want: 0,
		},
		{
			name: "default primary",
			step: 600,
			want: 4,
		},
		{
			name: "lightest",
			step: 2500,
			want: 23,
		},
		{
			name: "below sequence",
			step: 100,
			want: -1,
		},
		{
			name: "above sequence",
			step: 2600,
			want: -1,
		},
		{
			name: "off-grid value",
			step: 650,
			want: -1,
		},
		{
			name: "zero",
			step: 0,
			want: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Index(tt.step); got != tt.want {
				t.Errorf("Index(%d) = %d, want %d", tt.step, got, tt.want)
			}
		})
	}
}

func TestFromIndex(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  Step
	}{
		{
			name:  "first",
			index: 0,
			want:  200,
		},
		{
			name:  "last",
			index: 23,
			want:  2500,
		},
		{
			name:  "negative clamps to darkest",
			index: -3,
			want:  200,
		},
		{
			name:  "overflow clamps to lightest",
			index: 40,
			want:  2500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromIndex(tt.index); got != tt.want {
				t.Errorf("FromIndex(%d) = %d, want %d", tt.index, got, tt.want)
			}
		})
	}
}

func TestIndexRoundTrip(t *testing.T) {
	for _, s := range Steps() {
		if got := FromIndex(Index(s)); got != s {
			t.Errorf("FromIndex(Index(%d)) = %d", s, got)
		}
	}
}
