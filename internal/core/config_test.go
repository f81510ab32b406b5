package core

import "testing"

func TestRunEnded(t *testing.T) {
	playing := GameState{Score: 120, Level: 2, Lives: 1, Playing: true}
	over := GameState{Score: 120, Level: 2, GameOver: true}
	menu := GameState{}

	tests := []struct {
		name      string
		prev, cur GameState
		ended     bool
		score     int
	}{
		{"still playing", playing, playing, false, 0},
		{"game over appears", playing, over, true, 120},
		{"game over persists", over, over, false, 0},
		{"game over dismissed", over, menu, false, 0},
		{"abandoned with score", playing, menu, true, 120},
		{"abandoned without score", GameState{Playing: true, Level: 1}, menu, false, 0},
		{"idle on menu", menu, menu, false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ended := RunEnded(tc.prev, tc.cur)
			if ended != tc.ended {
				t.Fatalf("RunEnded() ended = %v, expected %v", ended, tc.ended)
			}
			if ended && got.Score != tc.score {
				t.Errorf("recorded score = %d, expected %d", got.Score, tc.score)
			}
		})
	}
}
