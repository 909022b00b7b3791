package registry

import (
	"testing"

	"github.com/vovakirdan/tui-beats/internal/config"
	"github.com/vovakirdan/tui-beats/internal/rhythm"
)

type fixedChart struct{ id string }

func (c fixedChart) ID() string    { return c.id }
func (c fixedChart) Title() string { return "Fixed " + c.id }
func (c fixedChart) Generate(int64, config.ChartConfig) []rhythm.BeatSpec {
	return []rhythm.BeatSpec{{Lane: 0}}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test_b", func() Generator { return fixedChart{"test_b"} })
	Register("test_a", func() Generator { return fixedChart{"test_a"} })

	if !Exists("test_a") || Exists("test_missing") {
		t.Error("Exists() disagrees with registrations")
	}

	g, err := Create("test_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "test_a" {
		t.Errorf("ID() = %q, expected test_a", g.ID())
	}

	if _, err := Create("test_missing"); err == nil {
		t.Error("Create() of unknown chart should fail")
	}

	list := List()
	ia, ib := -1, -1
	for i, info := range list {
		switch info.ID {
		case "test_a":
			ia = i
			if info.Title != "Fixed test_a" {
				t.Errorf("Title = %q", info.Title)
			}
		case "test_b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() should be sorted by ID, got %+v", list)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Generator { return fixedChart{"test_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("test_dup", func() Generator { return fixedChart{"test_dup"} })
}
