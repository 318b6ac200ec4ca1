package service

import "testing"

func TestLevelForPoints(t *testing.T) {
	tests := []struct {
		points int
		want   int
	}{
		{0, 1},
		{49, 1},
		{50, 2},
		{119, 2},
		{120, 3},
		{219, 3},
		{220, 4},
		{349, 4},
		{350, 5},
		{519, 5},
		{520, 6},
		{729, 6},
		{730, 7},
		{989, 7},
		{990, 8},
		{1299, 8},
		{1300, 9},
		{1699, 9},
		{1700, 10},
		{1000000, MaxLevel},
	}
	for _, tt := range tests {
		if got := LevelForPoints(tt.points); got != tt.want {
			t.Errorf("LevelForPoints(%d) = %d, want %d", tt.points, got, tt.want)
		}
	}
}

func TestLevelNeverDecreasesWithPoints(t *testing.T) {
	previous := 0
	for points := 0; points <= 2000; points += 10 {
		level := LevelForPoints(points)
		if level < previous {
			t.Fatalf("LevelForPoints(%d) = %d dropped below %d", points, level, previous)
		}
		previous = level
	}
}
