package tui

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/session"
)

func newTestServer(t *testing.T, game config.Config) *SSHServer {
	t.Helper()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")
	cfg.Game = game
	cfg.Logger = log.New(io.Discard)

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	t.Cleanup(func() { srv.Shutdown() })
	return srv
}

func TestNewSSHServer(t *testing.T) {
	srv := newTestServer(t, config.DefaultConfig())

	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if srv.store == nil {
		t.Error("server should keep an in-memory run history")
	}
	if srv.ActiveSessions() != 0 {
		t.Errorf("ActiveSessions() = %d, want 0", srv.ActiveSessions())
	}
}

func TestSSHServerSessionIDsAreUnique(t *testing.T) {
	srv := newTestServer(t, config.DefaultConfig())

	a := srv.sessionID("alice")
	b := srv.sessionID("alice")
	if a == b {
		t.Errorf("session IDs collide: %q", a)
	}
}

func TestSSHServerRunnerOptions(t *testing.T) {
	game := config.DefaultConfig()
	game.Rules.ChainScoring = true
	game.Speed.BaseIntervalMS = 500
	srv := newTestServer(t, game)

	opts := srv.runnerOptions("bob-1")

	if opts.ID != "bob-1" {
		t.Errorf("ID = %q", opts.ID)
	}
	if !opts.Engine.Rules.ChainScoring || opts.Engine.Rules.ClearTopRow {
		t.Errorf("rules not carried over: %+v", opts.Engine.Rules)
	}
	if opts.Speed.BaseIntervalMS != 500 {
		t.Errorf("speed not carried over: %+v", opts.Speed)
	}
	if opts.Store == nil {
		t.Error("runner should record into the shared history")
	}
}

func TestSSHServerRunnerSeed(t *testing.T) {
	srv := newTestServer(t, config.DefaultConfig())

	a := srv.runnerOptions("alice-1").Engine.Seed
	if a == 0 {
		t.Error("unset seed should fall back to the clock")
	}

	srv.config.Seed = 42
	for _, id := range []string{"alice-2", "bob-3"} {
		if got := srv.runnerOptions(session.ID(id)).Engine.Seed; got != 42 {
			t.Errorf("runnerOptions(%q) seed = %d, want 42", id, got)
		}
	}
}
