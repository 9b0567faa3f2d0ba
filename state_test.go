package buildenv

import (
	"strings"
	"testing"

	"github.com/mobiletools/buildenv/build"
)

func TestNewState_RunID(t *testing.T) {
	bc := &build.Context{ProjectName: "CoolApp"}

	a := NewState(bc)
	b := NewState(bc)

	if a.RunID == "" {
		t.Fatal("empty run ID")
	}
	if !strings.Contains(a.RunID, "CoolApp") {
		t.Errorf("run ID %q does not carry the project name", a.RunID)
	}
	if a.RunID == b.RunID {
		t.Error("two states share a run ID")
	}
}

func TestNewState_NoContext(t *testing.T) {
	state := NewState(nil)
	if state.RunID == "" {
		t.Error("empty run ID without build context")
	}
}

func TestWithRunID(t *testing.T) {
	state := NewState(nil).WithRunID("custom")
	if state.RunID != "custom" {
		t.Errorf("RunID = %q, want %q", state.RunID, "custom")
	}
}
