package registry

import (
	"testing"

	"github.com/vovakirdan/arcade-shooters/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string {
	return g.id
}

func (g *stubGame) Title() string {
	return "Stub " + g.id
}

func (g *stubGame) Reset(core.RuntimeConfig) {}

func (g *stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{}
}

func (g *stubGame) Render(*core.Screen) {}

func (g *stubGame) State() core.GameState {
	return core.GameState{}
}

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })

	if !Exists("zz-stub") {
		t.Fatal("Exists(zz-stub) = false, expected true")
	}
	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "zz-stub" {
		t.Errorf("ID() = %q, expected zz-stub", g.ID())
	}
	if got := Titles()["zz-stub"]; got != "Stub zz-stub" {
		t.Errorf("Titles()[zz-stub] = %q, expected %q", got, "Stub zz-stub")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) = nil error, expected error")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() did not panic")
		}
	}()
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
}
