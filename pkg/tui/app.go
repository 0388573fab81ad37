package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dshills/goterm"

	"github.com/dshills/flowcanvas/pkg/dialog"
	"github.com/dshills/flowcanvas/pkg/editor"
)

// App owns the terminal screen and drives the builder view. Input is read on
// a background goroutine and delivered to the single event loop; every
// editing operation runs as a discrete handler there.
type App struct {
	screen    *goterm.Screen
	builder   *Builder
	ctx       context.Context
	cancel    context.CancelFunc
	inputChan chan string
}

// NewApp initializes the terminal and builds an editing session with the
// starter node placed.
func NewApp(opts ...editor.Option) (*App, error) {
	screen, err := goterm.Init()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}

	validator, err := dialog.NewValidator()
	if err != nil {
		screen.Close()
		return nil, fmt.Errorf("failed to build dialog validator: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	session := editor.New(opts...)
	session.SeedWelcomeNode()

	return &App{
		screen:    screen,
		builder:   NewBuilder(session, validator),
		ctx:       ctx,
		cancel:    cancel,
		inputChan: make(chan string, 100),
	}, nil
}

// Builder returns the builder view.
func (a *App) Builder() *Builder {
	return a.builder
}

// Run starts the main loop. Returns when the user quits or a signal arrives.
func (a *App) Run() error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigChan)

	go a.readKeyboardInput()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	if err := a.render(); err != nil {
		return fmt.Errorf("initial render failed: %w", err)
	}

	for {
		select {
		case <-a.ctx.Done():
			return nil

		case <-sigChan:
			a.cancel()
			return nil

		case key := <-a.inputChan:
			if err := a.handleKey(key); err != nil {
				return err
			}
			if err := a.render(); err != nil {
				return err
			}

		case <-ticker.C:
			if err := a.render(); err != nil {
				return err
			}
		}
	}
}

// handleKey processes one key press. Quit keys apply only when no dialog is
// open so typing "q" into a form works.
func (a *App) handleKey(key string) error {
	if key == "Ctrl+C" {
		a.cancel()
		return nil
	}
	if key == "q" && a.builder.mode == modeNormal && a.builder.form == nil && a.builder.modal == nil {
		a.cancel()
		return nil
	}
	return a.builder.HandleKey(key)
}

// render draws the builder view and flushes the screen.
func (a *App) render() error {
	a.screen.Clear()
	if err := a.builder.Render(a.screen); err != nil {
		return fmt.Errorf("view render failed: %w", err)
	}
	if err := a.screen.Show(); err != nil {
		return fmt.Errorf("screen show failed: %w", err)
	}
	return nil
}

// readKeyboardInput reads raw stdin in a background goroutine. The terminal
// is already in raw mode from goterm.
func (a *App) readKeyboardInput() {
	buf := make([]byte, 32)

	for {
		select {
		case <-a.ctx.Done():
			return
		default:
		}

		n, err := os.Stdin.Read(buf)
		if err != nil {
			if err == io.EOF {
				return
			}
			continue
		}

		if n > 0 {
			key := parseKeyInput(buf[:n])
			select {
			case a.inputChan <- key:
			case <-a.ctx.Done():
				return
			}
		}
	}
}

// parseKeyInput converts raw input bytes into a key name.
func parseKeyInput(buf []byte) string {
	if len(buf) == 0 {
		return ""
	}

	if buf[0] == 27 {
		if len(buf) > 2 && buf[1] == '[' {
			switch buf[2] {
			case 'A':
				return "Up"
			case 'B':
				return "Down"
			case 'C':
				return "Right"
			case 'D':
				return "Left"
			}
		}
		return "Esc"
	}

	switch buf[0] {
	case 9:
		return "Tab"
	case 13:
		return "Enter"
	case 127:
		return "Backspace"
	}

	if buf[0] < 32 {
		return fmt.Sprintf("Ctrl+%c", buf[0]+'A'-1)
	}

	return string(rune(buf[0]))
}

// Close restores the terminal state.
func (a *App) Close() error {
	a.cancel()
	if err := a.screen.Close(); err != nil {
		return fmt.Errorf("failed to close screen: %w", err)
	}
	return nil
}
