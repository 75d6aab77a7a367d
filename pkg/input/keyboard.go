package input

import (
	"sync"

	"github.com/eiannone/keyboard"
	"github.com/trytobebee/gridsnake/pkg/game"
)

// KeyboardHandler reads raw keys from the terminal
type KeyboardHandler struct {
	inputChan chan KeyInput
	done      chan struct{}
	stopOnce  sync.Once
}

// KeyInput represents a keyboard input event
type KeyInput struct {
	Char rune
	Key  keyboard.Key
}

// NewKeyboardHandler creates a new keyboard input handler
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		inputChan: make(chan KeyInput),
		done:      make(chan struct{}),
	}
}

// Start puts the terminal in raw mode and begins listening for keys
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	go h.forward(keyboard.GetKey)
	return nil
}

// forward pushes keys from get until it fails or the handler is stopped
func (h *KeyboardHandler) forward(get func() (rune, keyboard.Key, error)) {
	defer close(h.inputChan)
	for {
		char, key, err := get()
		if err != nil {
			return
		}
		select {
		case h.inputChan <- KeyInput{Char: char, Key: key}:
		case <-h.done:
			return
		}
	}
}

// Stop restores the terminal and releases the reader goroutines
func (h *KeyboardHandler) Stop() {
	h.release()
	keyboard.Close()
}

func (h *KeyboardHandler) release() {
	h.stopOnce.Do(func() { close(h.done) })
}

// GetInputChan returns the input channel. It is closed when reading fails.
func (h *KeyboardHandler) GetInputChan() <-chan KeyInput {
	return h.inputChan
}

// Actions forwards parsed keys as game actions until the key stream ends
func (h *KeyboardHandler) Actions() <-chan game.Action {
	out := make(chan game.Action)
	go func() {
		defer close(out)
		for in := range h.inputChan {
			a := ParseAction(in)
			if a == game.ActionNone {
				continue
			}
			select {
			case out <- a:
			case <-h.done:
				return
			}
			if a == game.ActionQuit {
				return
			}
		}
	}()
	return out
}

// ParseAction maps arrow keys, WASD, space/enter, R and Q to game actions
func ParseAction(input KeyInput) game.Action {
	switch input.Key {
	case keyboard.KeyArrowUp:
		return game.ActionUp
	case keyboard.KeyArrowDown:
		return game.ActionDown
	case keyboard.KeyArrowLeft:
		return game.ActionLeft
	case keyboard.KeyArrowRight:
		return game.ActionRight
	case keyboard.KeySpace, keyboard.KeyEnter:
		return game.ActionStart
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return game.ActionQuit
	}

	return parseRune(input.Char)
}

func parseRune(ch rune) game.Action {
	switch ch {
	case 'w', 'W':
		return game.ActionUp
	case 's', 'S':
		return game.ActionDown
	case 'a', 'A':
		return game.ActionLeft
	case 'd', 'D':
		return game.ActionRight
	case ' ':
		return game.ActionStart
	case 'r', 'R':
		return game.ActionRestart
	case 'q', 'Q':
		return game.ActionQuit
	}
	return game.ActionNone
}
