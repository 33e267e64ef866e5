package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/starfall-arcade/starfall/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperMovement(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg   tea.KeyMsg
		check func(in core.Intent) bool
		name  string
	}{
		{runeKey('a'), func(in core.Intent) bool { return in.Left }, "a moves left"},
		{tea.KeyMsg{Type: tea.KeyLeft}, func(in core.Intent) bool { return in.Left }, "arrow moves left"},
		{runeKey('d'), func(in core.Intent) bool { return in.Right }, "d moves right"},
		{runeKey('w'), func(in core.Intent) bool { return in.Up }, "w moves up"},
		{runeKey('s'), func(in core.Intent) bool { return in.Down }, "s moves down"},
		{tea.KeyMsg{Type: tea.KeySpace}, func(in core.Intent) bool { return in.Fire }, "space fires"},
		{runeKey('p'), func(in core.Intent) bool { return in.Pause }, "p pauses"},
		{tea.KeyMsg{Type: tea.KeyEsc}, func(in core.Intent) bool { return in.Pause }, "esc pauses"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in core.Intent
			if ctl := km.Apply(tt.msg, &in); ctl != ControlNone {
				t.Fatalf("unexpected control %v", ctl)
			}
			if !tt.check(in) {
				t.Errorf("intent not set: %+v", in)
			}
		})
	}
}

func TestKeyMapperControls(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want Control
	}{
		{runeKey('q'), ControlQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, ControlQuit},
		{runeKey('r'), ControlRestart},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, ControlScreenshot},
	}

	for _, tt := range tests {
		var in core.Intent
		if got := km.Apply(tt.msg, &in); got != tt.want {
			t.Errorf("Apply(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestKeyMapperMovementDropsPointer(t *testing.T) {
	km := NewKeyMapper()

	in := core.Intent{PointerActive: true, Pointer: core.V(100, 100)}
	km.Apply(runeKey('a'), &in)

	if in.PointerActive {
		t.Error("a movement key should take steering back from the pointer")
	}
}

func TestRenderScreenPlainContent(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "hello")

	out := RenderScreen(s)
	lines := 1
	for _, r := range out {
		if r == '\n' {
			lines++
		}
	}
	if lines != 2 {
		t.Errorf("expected 2 lines, got %d", lines)
	}
}
