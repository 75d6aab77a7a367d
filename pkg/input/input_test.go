package input

import (
	"testing"
	"time"

	"github.com/eiannone/keyboard"
	"github.com/gdamore/tcell/v2"
	"github.com/trytobebee/gridsnake/pkg/game"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   KeyInput
		want game.Action
	}{
		{KeyInput{Key: keyboard.KeyArrowUp}, game.ActionUp},
		{KeyInput{Key: keyboard.KeyArrowDown}, game.ActionDown},
		{KeyInput{Key: keyboard.KeyArrowLeft}, game.ActionLeft},
		{KeyInput{Key: keyboard.KeyArrowRight}, game.ActionRight},
		{KeyInput{Char: 'w'}, game.ActionUp},
		{KeyInput{Char: 'S'}, game.ActionDown},
		{KeyInput{Char: 'a'}, game.ActionLeft},
		{KeyInput{Char: 'D'}, game.ActionRight},
		{KeyInput{Key: keyboard.KeySpace}, game.ActionStart},
		{KeyInput{Key: keyboard.KeyEnter}, game.ActionStart},
		{KeyInput{Char: 'r'}, game.ActionRestart},
		{KeyInput{Char: 'q'}, game.ActionQuit},
		{KeyInput{Key: keyboard.KeyEsc}, game.ActionQuit},
		{KeyInput{Key: keyboard.KeyCtrlC}, game.ActionQuit},
		{KeyInput{Char: 'x'}, game.ActionNone},
	}

	for _, tt := range tests {
		if got := ParseAction(tt.in); got != tt.want {
			t.Errorf("ParseAction(%+v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestActionsForwardsUntilQuit(t *testing.T) {
	h := NewKeyboardHandler()
	actions := h.Actions()

	go func() {
		h.inputChan <- KeyInput{Char: 'x'}
		h.inputChan <- KeyInput{Key: keyboard.KeyArrowUp}
		h.inputChan <- KeyInput{Char: 'q'}
	}()

	if a := <-actions; a != game.ActionUp {
		t.Errorf("Expected ActionUp first (unknown keys dropped), got %v", a)
	}
	if a := <-actions; a != game.ActionQuit {
		t.Errorf("Expected ActionQuit, got %v", a)
	}
	if _, ok := <-actions; ok {
		t.Error("Channel should close after quit")
	}
}

func TestStopReleasesReader(t *testing.T) {
	h := NewKeyboardHandler()
	go h.forward(func() (rune, keyboard.Key, error) {
		return 'x', 0, nil
	})
	actions := h.Actions()

	h.release()
	timeout := time.After(time.Second)
	for open := true; open; {
		select {
		case _, open = <-h.inputChan:
		case <-timeout:
			t.Fatal("Reader should exit once the handler is stopped")
		}
	}

	select {
	case _, ok := <-actions:
		if ok {
			t.Error("Unknown keys should not produce actions")
		}
	case <-timeout:
		t.Fatal("Actions should close once the handler is stopped")
	}
}

func TestFromTcell(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want game.Action
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), game.ActionUp},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), game.ActionDown},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), game.ActionLeft},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), game.ActionRight},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), game.ActionStart},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), game.ActionStart},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), game.ActionRestart},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), game.ActionRight},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), game.ActionQuit},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), game.ActionNone},
	}

	for _, tt := range tests {
		if got := FromTcell(tt.ev); got != tt.want {
			t.Errorf("FromTcell(%v) = %v, want %v", tt.ev.Name(), got, tt.want)
		}
	}
}

func TestPollScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()

	actions := PollScreen(screen)
	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if a := <-actions; a != game.ActionLeft {
		t.Errorf("Expected ActionLeft, got %v", a)
	}
	if a := <-actions; a != game.ActionQuit {
		t.Errorf("Expected ActionQuit, got %v", a)
	}
}

func TestFromName(t *testing.T) {
	names := map[string]game.Action{
		"up":      game.ActionUp,
		"down":    game.ActionDown,
		"left":    game.ActionLeft,
		"right":   game.ActionRight,
		"start":   game.ActionStart,
		"restart": game.ActionRestart,
		"quit":    game.ActionNone,
		"":        game.ActionNone,
	}
	for name, want := range names {
		if got := FromName(name); got != want {
			t.Errorf("FromName(%q) = %v, want %v", name, got, want)
		}
	}
}
