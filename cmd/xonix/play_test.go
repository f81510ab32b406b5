package main

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-xonix/internal/platform/tui"
)

func TestPlayHelpMatchesKeyMap(t *testing.T) {
	keys := tui.DefaultKeyMap()

	tests := []struct {
		line string
		key  string
		keys []string
	}{
		{"Esc/B        - Back", "b", keys.Back.Keys()},
		{"Esc/B        - Back", "esc", keys.Back.Keys()},
		{"Q/Ctrl+C     - Quit", "q", keys.Quit.Keys()},
		{"Q/Ctrl+C     - Quit", "ctrl+c", keys.Quit.Keys()},
		{"Ctrl+S       - Screenshot", "ctrl+s", keys.Screenshot.Keys()},
	}
	for _, tc := range tests {
		if !strings.Contains(playCmd.Long, tc.line) {
			t.Errorf("help is missing %q", tc.line)
		}
		if !slices.Contains(tc.keys, tc.key) {
			t.Errorf("%q is documented under %q but not bound there", tc.key, tc.line)
		}
	}
}
