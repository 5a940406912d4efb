package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-birds/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub" }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }
func (g stubGame) Tunables() ([]byte, error)            { return nil, nil }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", "Stub A", func(Options) (Game, error) { return stubGame{id: "stub_a"}, nil })

	if !Exists("stub_a") {
		t.Fatal("stub_a should be registered")
	}
	g, err := Create("stub_a", Options{})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q, expected stub_a", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub_a" && info.Title == "Stub A" {
			found = true
		}
	}
	if !found {
		t.Error("List() should include stub_a")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("nope", Options{}); err == nil {
		t.Error("Create() of an unknown game should fail")
	}
}

func TestCreateFactoryError(t *testing.T) {
	boom := errors.New("boom")
	Register("stub_err", "Stub Err", func(Options) (Game, error) { return nil, boom })

	if _, err := Create("stub_err", Options{}); !errors.Is(err, boom) {
		t.Errorf("Create() = %v, expected wrapped factory error", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", "Dup", func(Options) (Game, error) { return stubGame{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("stub_dup", "Dup", func(Options) (Game, error) { return stubGame{}, nil })
}
