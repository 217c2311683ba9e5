package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		expect string
	}{
		{"normal short name", "Alice", "Alice"},
		{"exactly 16 chars", "1234567890123456", "1234567890123456"},
		{"long name truncated", "ThisIsAVeryLongUsername", "ThisIsAVeryLongU"},
		{"control chars stripped", "he\x00ll\x1bo", "hello"},
		{"ansi escape partial", "he\x1b[31mllo", "he[31mllo"},
		{"empty input", "", ""},
		{"pure control chars", "\x00\x01\x02\x1b", ""},
		{"three-byte runes stop at a boundary", "日本語のテスト名前", "日本語のテ"},
		{"emoji stop at a boundary", "🎮Player🎮Name", "🎮Player🎮Na"},
		{"invalid utf-8 dropped", "ab\xffcd", "abcd"},
		{"tabs stripped", "hello\tworld", "helloworld"},
		{"newlines stripped", "hello\nworld", "helloworld"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitizeName(tc.input)
			assert.Equal(t, tc.expect, got)
			assert.LessOrEqual(t, len(got), maxNameBytes)
		})
	}
}

func TestAllowedTerms(t *testing.T) {
	cases := []struct {
		term    string
		allowed bool
	}{
		{"xterm-256color", true},
		{"tmux", true},
		{"linux", true},
		{"vt100", true},
		{"screen", true},
		{"rxvt-unicode-256color", true},
		{"evil-term", false},
		{"../../../etc/passwd", false},
		{"", false},
		{"xterm-kitty", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, allowedTerms[tc.term], "term %q", tc.term)
	}
}

func TestSessionTermFallsBack(t *testing.T) {
	assert.Equal(t, "tmux", sessionTerm([]string{"LANG=C", "TERM=tmux"}))
	assert.Equal(t, "xterm-256color", sessionTerm([]string{"TERM=../../etc/passwd"}))
	assert.Equal(t, "xterm-256color", sessionTerm(nil))
}

func TestLoadOrCreateHostKeyPersists(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := filepath.Join(t.TempDir(), "host_key")

	first, err := loadOrCreateHostKey(log, path)
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	second, err := loadOrCreateHostKey(log, path)
	require.NoError(t, err)
	assert.Equal(t, first.PublicKey().Marshal(), second.PublicKey().Marshal())
}
