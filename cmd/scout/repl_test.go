package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jpicht/scoutcode/lib/scout"
)

func enter(t *testing.T, m replModel, input string) (replModel, tea.Cmd) {
	t.Helper()
	m.input.SetValue(input)
	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	return rm, cmd
}

func TestUpdateQuitCommandReturnsQuit(t *testing.T) {
	rm, cmd := enter(t, newREPLModel(), ":quit")

	if !rm.quitting {
		t.Fatalf("quitting flag not set")
	}
	if rm.input.Value() != "" {
		t.Fatalf("input not cleared after quit command")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
	if msg := cmd(); msg != nil {
		if _, ok := msg.(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg, got %T", msg)
		}
	}
}

func TestTranslateMessage(t *testing.T) {
	rm, cmd := enter(t, newREPLModel(), ".-//-.../-.-.")
	if cmd != nil {
		t.Fatalf("expected no command for a message")
	}
	if len(rm.log) != 1 {
		t.Fatalf("expected one history entry, got %d", len(rm.log))
	}
	if e := rm.log[0]; e.failed || e.result != "A BC" {
		t.Fatalf("unexpected entry %#v", e)
	}
	if len(rm.recall) != 1 {
		t.Fatalf("message not stored in command history")
	}
}

func TestCipherCommandSwitchesCipher(t *testing.T) {
	rm, _ := enter(t, newREPLModel(), ":cipher murcielago0")
	if rm.cipher != "murcielago0" {
		t.Fatalf("cipher not switched: %s", rm.cipher)
	}
	rm, _ = enter(t, rm, ":encode")
	if rm.op != scout.Encode {
		t.Fatalf("op not switched")
	}
	if rm.input.Prompt != "murcielago0:encode> " {
		t.Fatalf("unexpected prompt %q", rm.input.Prompt)
	}

	rm, _ = enter(t, rm, "MURCIELAGO")
	if e := rm.log[len(rm.log)-1]; e.result != "0123456789" {
		t.Fatalf("unexpected entry %#v", e)
	}
}

func TestUnknownCipherIsReported(t *testing.T) {
	rm, _ := enter(t, newREPLModel(), ":cipher vigenere")
	if rm.cipher != "morse" {
		t.Fatalf("cipher changed to %s", rm.cipher)
	}
	if len(rm.log) != 1 || !rm.log[0].failed {
		t.Fatalf("expected an error entry, got %#v", rm.log)
	}
}

func TestInvalidMorseIsError(t *testing.T) {
	rm, _ := enter(t, newREPLModel(), "........")
	if !rm.log[0].failed {
		t.Fatalf("expected error entry")
	}
}

func TestTabFlipsDirection(t *testing.T) {
	model, _ := newREPLModel().Update(tea.KeyMsg{Type: tea.KeyTab})
	rm := model.(replModel)
	if rm.op != scout.Encode {
		t.Fatalf("tab did not flip direction")
	}
}

func resize(t *testing.T, m replModel, width, height int) replModel {
	t.Helper()
	model, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return model.(replModel)
}

func TestViewShortWindowShowsLatest(t *testing.T) {
	rm := resize(t, newREPLModel(), 80, 5)
	rm, _ = enter(t, rm, "...")
	rm, _ = enter(t, rm, "---")

	view := rm.View()
	if !strings.Contains(view, "= O") {
		t.Fatalf("latest translation missing from view:\n%s", view)
	}
	if strings.Contains(view, "= S") {
		t.Fatalf("older translation shown in a short window:\n%s", view)
	}
}

func TestViewNarrowWindow(t *testing.T) {
	for _, width := range []int{0, 1, 2} {
		rm := resize(t, newREPLModel(), width, 20)
		rm, _ = enter(t, rm, "...")
		if view := rm.View(); !strings.Contains(view, "= S") {
			t.Fatalf("width %d: translation missing from view:\n%s", width, view)
		}
	}
}

func TestViewBeforeResize(t *testing.T) {
	rm, _ := enter(t, newREPLModel(), ".-")
	if view := rm.View(); !strings.Contains(view, "= A") {
		t.Fatalf("translation missing from view:\n%s", view)
	}
}

func TestLowerCommand(t *testing.T) {
	rm, _ := enter(t, newREPLModel(), ":lower")
	rm, _ = enter(t, rm, ":cipher murcielago0")
	rm, _ = enter(t, rm, "S391TS")
	if e := rm.log[len(rm.log)-1]; e.failed || e.result != "scouts" {
		t.Fatalf("unexpected entry %#v", e)
	}
	if !strings.Contains(rm.View(), "lower case") {
		t.Fatalf("case not shown in status line")
	}

	rm, _ = enter(t, rm, ":upper")
	rm, _ = enter(t, rm, "S391TS")
	if e := rm.log[len(rm.log)-1]; e.result != "SCOUTS" {
		t.Fatalf("unexpected entry %#v", e)
	}
}

func TestPolicyCommands(t *testing.T) {
	rm, _ := enter(t, newREPLModel(), ":cipher murcielago0")
	rm, _ = enter(t, rm, ":encode")

	rm, _ = enter(t, rm, "M M")
	if e := rm.log[len(rm.log)-1]; e.failed || e.result != "0 0" {
		t.Fatalf("unexpected entry %#v", e)
	}

	rm, _ = enter(t, rm, ":strict")
	rm, _ = enter(t, rm, "M M")
	if e := rm.log[len(rm.log)-1]; !e.failed {
		t.Fatalf("expected error entry under :strict, got %#v", e)
	}

	rm, _ = enter(t, rm, ":default")
	rm, _ = enter(t, rm, ":cipher morse")
	rm, _ = enter(t, rm, ":decode")
	rm, _ = enter(t, rm, ":lenient")
	rm, _ = enter(t, rm, ".-/?")
	if e := rm.log[len(rm.log)-1]; e.failed || e.result != "A?" {
		t.Fatalf("unexpected entry %#v", e)
	}
}

func TestUnknownCommandIsReported(t *testing.T) {
	rm, _ := enter(t, newREPLModel(), ":rot13")
	if len(rm.log) != 1 || !rm.log[0].failed {
		t.Fatalf("expected an error entry, got %#v", rm.log)
	}
}
