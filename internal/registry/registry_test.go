package registry

import (
	"testing"

	"github.com/vovakirdan/tui-xonix/internal/core"
)

type testGame struct {
	id, title string
}

func (g *testGame) ID() string { return g.id }
func (g *testGame) Title() string { return g.title }
func (g *testGame) Reset(core.RuntimeConfig) error { return nil }
func (g *testGame) Size() (int, int) { return 1, 1 }
func (g *testGame) PushEvent(core.Event) {}
func (g *testGame) Step() (core.StepResult, error) { return core.StepResult{}, nil }
func (g *testGame) Render(core.Canvas) {}
func (g *testGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_b", func() Game { return &testGame{id: "test_b", title: "Bravo"} })
	Register("test_a", func() Game { return &testGame{id: "test_a", title: "Alpha"} })

	if !Exists("test_a") || !Exists("test_b") {
		t.Fatal("registered games should exist")
	}
	if Exists("test_missing") {
		t.Error("unregistered game should not exist")
	}

	g, err := Create("test_a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "test_a" {
		t.Errorf("Create returned %q, expected test_a", g.ID())
	}

	if _, err := Create("test_missing"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestListSortedWithTitles(t *testing.T) {
	Register("test_list_2", func() Game { return &testGame{id: "test_list_2", title: "Two"} })
	Register("test_list_1", func() Game { return &testGame{id: "test_list_1", title: "One"} })

	var got []GameInfo
	for _, info := range List() {
		if info.ID == "test_list_1" || info.ID == "test_list_2" {
			got = append(got, info)
		}
	}
	expected := []GameInfo{{"test_list_1", "One"}, {"test_list_2", "Two"}}
	if len(got) != len(expected) {
		t.Fatalf("List() returned %v", got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("List()[%d] = %+v, expected %+v", i, got[i], expected[i])
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Game { return &testGame{id: "test_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("test_dup", func() Game { return &testGame{id: "test_dup"} })
}
