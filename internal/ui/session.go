package ui

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/game"
)

// Session connects one engine to one screen.
type Session struct {
	screen   *Screen
	renderer *Renderer
	engine   *game.Engine
	logger   *slog.Logger
	running  bool
}

// NewSession creates a session. The caller keeps ownership of the screen.
func NewSession(screen *Screen, tiles *Tileset, engine *game.Engine, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		screen:   screen,
		renderer: NewRenderer(screen, tiles),
		engine:   engine,
		logger:   logger,
		running:  true,
	}
}

// Run renders the initial state and processes events until the player quits,
// the context is cancelled or the screen goes away.
func (s *Session) Run(ctx context.Context) error {
	s.renderer.Render(s.engine.Snapshot())

	for s.running {
		if err := ctx.Err(); err != nil {
			return err
		}

		ev := s.screen.PollEvent()
		if ev == nil {
			return nil
		}
		s.handleEvent(ctx, ev)
	}
	return nil
}

// handleEvent processes a single terminal event.
func (s *Session) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		s.screen.Sync()
		s.renderer.Render(s.engine.Snapshot())
	}
}

// handleKeyEvent forwards movement and attack keys to the engine and redraws
// after every accepted turn.
func (s *Session) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	cmd, intent := keyToCommand(ev)
	switch cmd {
	case CommandQuit:
		s.running = false
		return
	case CommandNone:
		return
	}

	result := s.engine.Apply(ctx, intent)
	if !result.Accepted {
		return
	}

	s.renderer.Render(s.engine.Snapshot())

	if result.Notify {
		s.logger.Info("session finished",
			"outcome", result.Outcome.String(),
			"turns", result.Turn,
			"seed", s.engine.Seed(),
		)
	}
}

// Running reports whether the session is still accepting input.
func (s *Session) Running() bool {
	return s.running
}
