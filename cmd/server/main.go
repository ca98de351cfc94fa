// dungeoncrawl-server serves one independent game per SSH connection.
//
// Usage:
//
//	dungeoncrawl-server [--port 2222] [--key server_host_key]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/joho/godotenv"
	xssh "golang.org/x/crypto/ssh"

	"github.com/samdwyer/dungeoncrawl/internal/game"
	"github.com/samdwyer/dungeoncrawl/internal/sshtty"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/ui"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (generated if absent)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx, telemetry.SettingsFromEnv(os.LookupEnv))
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := game.DefaultConfig()
	if err != nil {
		log.Fatalf("Failed to load rules: %v", err)
	}
	if cfg, err = cfg.WithEnv(os.LookupEnv); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	tiles, err := ui.LoadTileset()
	if err != nil {
		log.Fatalf("Failed to load tileset: %v", err)
	}

	h := &handler{
		cfg:    cfg,
		tiles:  tiles,
		logger: slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}

	srv := &gossh.Server{
		Addr:        fmt.Sprintf(":%d", *port),
		Handler:     h.handleSession,
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{loadOrCreateHostKey(*keyFile)},
	}

	log.Printf("dungeoncrawl SSH server listening on :%d", *port)
	log.Fatal(srv.ListenAndServe())
}

// handler runs a fresh engine for every SSH session.
type handler struct {
	cfg    game.Config
	tiles  *ui.Tileset
	logger *slog.Logger
}

// termMu guards the process-wide TERM variable while terminfo is resolved.
var termMu sync.Mutex

// handleSession blocks for the life of the connection.
func (h *handler) handleSession(s gossh.Session) {
	logger := h.logger.With("remote", s.RemoteAddr().String(), "user", s.User())

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "dungeoncrawl needs a terminal. Connect with: ssh -t")
		return
	}

	tty := sshtty.New(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", sessionTerm(s.Environ(), pty.Term))
	ts, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}

	screen, err := ui.NewScreenFrom(ts)
	if err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}
	var closeOnce sync.Once
	closeScreen := func() { closeOnce.Do(screen.Close) }
	defer closeScreen()

	ctx := s.Context()
	go func() {
		<-ctx.Done()
		closeScreen()
	}()

	cfg := h.cfg
	cfg.Logger = logger
	engine, err := game.Start(ctx, cfg)
	if err != nil {
		closeScreen()
		fmt.Fprintf(s, "Could not build a dungeon: %v\n", err)
		logger.Error("game start failed", "err", err)
		return
	}

	logger.Info("session started", "seed", engine.Seed())
	if err := ui.NewSession(screen, h.tiles, engine, logger).Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("session error", "err", err)
	}
	logger.Info("session closed", "turns", engine.Turn(), "phase", engine.Phase().String())
}

// allowedTerms are the terminal types a client may ask for. TERM ends up in
// the server's own environment, so anything else is replaced by the default.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

const defaultTerm = "xterm-256color"

// sessionTerm picks the client's TERM, falling back to the pty request and
// then to defaultTerm.
func sessionTerm(environ []string, ptyTerm string) string {
	for _, env := range environ {
		if term, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[term] {
			return term
		}
	}
	if allowedTerms[ptyTerm] {
		return ptyTerm
	}
	return defaultTerm
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key at %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("generate host key: %v", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	if block, err := xssh.MarshalPrivateKey(key, "dungeoncrawl server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
			log.Printf("Warning: host key not saved: %v", err)
		}
	}
	return signer
}
