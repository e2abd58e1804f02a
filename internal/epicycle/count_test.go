package epicycle

import "testing"

func TestClampEpicycles(t *testing.T) {
	tests := []struct {
		requested, points, want int
	}{
		{150, 400, 150},
		{150, 100, 50},
		{150, 1, 1},
		{150, 0, 0},
		{0, 400, 0},
		{3, 3, 1},
	}
	for _, tt := range tests {
		if got := ClampEpicycles(tt.requested, tt.points); got != tt.want {
			t.Errorf("ClampEpicycles(%d, %d) = %d, want %d", tt.requested, tt.points, got, tt.want)
		}
	}
}

func TestMoreAndFewerEpicycles(t *testing.T) {
	if got := MoreEpicycles(40, 400); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
	if got := MoreEpicycles(195, 400); got != 200 {
		t.Fatalf("expected clamp to 200, got %d", got)
	}
	if got := MoreEpicycles(200, 400); got != 200 {
		t.Fatalf("expected limit to hold at 200, got %d", got)
	}
	if got := FewerEpicycles(25); got != 15 {
		t.Fatalf("expected 15, got %d", got)
	}
	if got := FewerEpicycles(7); got != 1 {
		t.Fatalf("expected floor of 1, got %d", got)
	}
}
