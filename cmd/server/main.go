// emoji-survivors-server hosts one independent single-player run per SSH
// connection. Build:
//
//	go build -o emoji-survivors-server ./cmd/server
//
// Usage:
//
//	./emoji-survivors-server [--port 2222] [--key server_host_key] [--config arena.toml]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
	"unicode"
	"unicode/utf8"

	"emoji-survivors/internal/config"
	"emoji-survivors/internal/game"
	internalssh "emoji-survivors/internal/ssh"

	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

// maxNameBytes bounds player names written to logs and the run log.
const maxNameBytes = 16

// allowedTerms lists the TERM values a client may request. Anything else
// falls back to xterm-256color so clients cannot steer terminfo lookup.
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

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	cfgFile := flag.String("config", "", "Optional TOML file overriding difficulty multipliers")
	maxPlayers := flag.Int("max-players", 16, "Maximum concurrent sessions")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := config.New(config.Normal)
	if *cfgFile != "" {
		if err := cfg.LoadFile(*cfgFile); err != nil {
			log.Error("load config", "err", err)
			os.Exit(1)
		}
	}

	signer, err := loadOrCreateHostKey(log, *keyFile)
	if err != nil {
		log.Error("host key", "err", err)
		os.Exit(1)
	}

	h := &host{cfg: cfg, log: log, max: int64(*maxPlayers)}
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication; add gossh.PublicKeyAuth for real deployments.
		HostSigners: []gossh.Signer{signer},
	}

	log.Info("listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Error("serve", "err", err)
		os.Exit(1)
	}
}

// host runs one game per SSH session, bounded by max.
type host struct {
	cfg    *config.Config
	log    *slog.Logger
	max    int64
	active atomic.Int64
}

// handleSession is the gliderlabs SSH handler for one connection. It blocks
// for the duration of the run so the SSH session stays open.
func (h *host) handleSession(s gossh.Session) {
	if h.active.Add(1) > h.max {
		h.active.Add(-1)
		fmt.Fprintln(s, "The arena is full. Try again later.")
		return
	}
	defer h.active.Add(-1)

	name := sanitizeName(s.User())
	log := h.log.With("user", name, "remote", s.RemoteAddr().String())

	screen, err := internalssh.NewScreen(s, sessionTerm(s.Environ()))
	if errors.Is(err, internalssh.ErrNoPTY) {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}
	if err != nil {
		log.Warn("terminal setup failed", "err", err)
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}

	log.Info("session opened", "active", h.active.Load())
	g := game.NewWithScreen(screen, game.Settings{
		Config:     h.cfg,
		PlayerName: name,
		Logger:     log,
	})
	if err := g.Run(s.Context()); err != nil {
		log.Warn("run ended with error", "err", err)
	}
	log.Info("session closed")
}

// sessionTerm picks the client's TERM if it is on the allow list.
func sessionTerm(environ []string) string {
	for _, env := range environ {
		if term, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[term] {
			return term
		}
	}
	return "xterm-256color"
}

// sanitizeName drops control characters and truncates to maxNameBytes
// without splitting a rune.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == utf8.RuneError || unicode.IsControl(r) {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(log *slog.Logger, path string) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	log.Info("generating ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "emoji-survivors server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
			log.Warn("host key not saved", "err", err)
		}
	}
	return signer, nil
}
