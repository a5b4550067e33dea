package main

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/d2go/internal/data"
	"github.com/udisondev/d2go/internal/perk"
	"github.com/udisondev/d2go/internal/session"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), tt.in)
	}
}

func staticBuilder() *session.Builder {
	return session.NewBuilder(data.Static(), perk.NewRegistry(nil), 0, 0)
}

func bufioScanner(s string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(s))
}

func writeRequest(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const scoutRequest = `
weapon:
  type: scout_rifle
  intrinsic: 901
  ammo: primary
stats:
  range: 60
  magazine: 40
  zoom: 15
`

const handCannonRequest = `{
  "name": "hc",
  "weapon": {"type": "hand_cannon", "intrinsic": 903, "ammo": "primary"},
  "stats": {"range": 50, "magazine": 50, "zoom": 14},
  "perks": [{"id": 3425386926, "value": 3}]
}`

func TestAnalyzeAllKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeRequest(t, dir, "scout.yaml", scoutRequest),
		writeRequest(t, dir, "hc.json", handCannonRequest),
		writeRequest(t, dir, "scout-again.yaml", scoutRequest),
	}

	results, err := analyzeAll(context.Background(), staticBuilder(), 2, paths)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "scout", results[0].Name)
	assert.Equal(t, "hc", results[1].Name)
	assert.Equal(t, "scout-again", results[2].Name)
	assert.Equal(t, results[0].Fingerprint, results[2].Fingerprint)
	assert.NotEqual(t, results[0].Fingerprint, results[1].Fingerprint)
	assert.Greater(t, results[1].DPS.TotalDamage, 0.0)
}

func TestAnalyzeAllFailsOnBadRequest(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeRequest(t, dir, "ok.yaml", scoutRequest),
		writeRequest(t, dir, "bad.yaml", "weapon:\n  type: slingshot\n"),
	}
	_, err := analyzeAll(context.Background(), staticBuilder(), 4, paths)
	assert.Error(t, err)
}

func TestREPLScript(t *testing.T) {
	script := strings.Join([]string{
		"help",
		"weapon hand_cannon 903",
		"stat range 50",
		"stat zoom 14",
		"stat magazine 50",
		"perk add 3425386926 2",
		"perk ls",
		"enemy elite",
		"activity master 1800 1780",
		"dps",
		"ttk",
		"flinch",
		"options 3425386926",
		"perk rm 3425386926",
		"perk rm 3425386926",
		"bogus",
		"quit",
		"stats",
	}, "\n")

	var out bytes.Buffer
	r := &repl{ctx: context.Background(), out: &out, s: session.New(staticBuilder())}
	require.NoError(t, r.loop(scannerReader{bufioScanner(script)}))

	got := out.String()
	assert.Contains(t, got, "weapon set: hand_cannon intrinsic 903 (primary ammo)")
	assert.Contains(t, got, "equipped 3425386926 Rampage value=2")
	assert.Contains(t, got, "enemy: elite")
	assert.Contains(t, got, "scaling true")
	assert.Contains(t, got, "resilience 10")
	assert.Contains(t, got, "perk not equipped")
	assert.Contains(t, got, `unknown command "bogus"`)
	assert.Equal(t, 2, strings.Count(got, "error:"))
	assert.NotContains(t, got, "Derived")
}

func TestREPLNeedsWeapon(t *testing.T) {
	var out bytes.Buffer
	r := &repl{ctx: context.Background(), out: &out, s: session.New(staticBuilder())}
	require.NoError(t, r.loop(scannerReader{bufioScanner("dps\nweapon slingshot 1\n")}))
	assert.Contains(t, out.String(), "no weapon selected")
	assert.Contains(t, out.String(), `unknown weapon type "slingshot"`)
}
