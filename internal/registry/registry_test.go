package registry

import (
	"testing"

	"github.com/vovakirdan/stackduel/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                         { return g.id }
func (g stubGame) Title() string                      { return "Stub " + g.id }
func (stubGame) Reset(core.RuntimeConfig)             {}
func (stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (stubGame) Render(*core.Screen)                  {}
func (stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_b", func() Game { return stubGame{id: "test_b"} })
	Register("test_a", func() Game { return stubGame{id: "test_a"} })

	if !Exists("test_a") || Exists("test_missing") {
		t.Fatal("Exists reports wrong registrations")
	}

	g, err := Create("test_a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "test_a" {
		t.Errorf("created %q, expected test_a", g.ID())
	}

	if _, err := Create("test_missing"); err == nil {
		t.Error("Create should fail for unknown IDs")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "test_a" && info.Title != "Stub test_a" {
			t.Errorf("title = %q", info.Title)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List not sorted: %v", ids)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Game { return stubGame{id: "test_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test_dup", func() Game { return stubGame{id: "test_dup"} })
}
