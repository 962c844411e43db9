package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/euchre/internal/bot"
	"github.com/lox/euchre/internal/game"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, game.Seat(0), c.HumanSeat())
	assert.Equal(t, game.Seat(3), c.FirstDealer())
	assert.Equal(t, bot.Medium, c.Difficulty(1))
	assert.Equal(t, game.DefaultLogCapacity, c.Match.LogCapacity)
	assert.Equal(t, 1500*time.Millisecond, c.Delays().TrickEnd)
	assert.Equal(t, log.InfoLevel, c.LogLevel())
	assert.Equal(t, "euchre.log", c.Log.File)
}

func TestParse(t *testing.T) {
	src := `
match {
  human_seat   = 2
  first_dealer = 0
  seed         = 42
  difficulty   = "easy"
  lone_rate    = 0.25
}

seat "1" {
  difficulty = "hard"
}

pacing {
  bot_delay   = 0
  trick_pause = 250
}

log {
  level = "debug"
  file  = "/tmp/euchre.log"
}
`
	c, err := Parse([]byte(src), "test.hcl")
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, game.Seat(2), c.HumanSeat())
	assert.Equal(t, game.Seat(0), c.FirstDealer())
	assert.Equal(t, int64(42), c.Match.Seed)
	assert.Equal(t, 0.25, c.Match.LoneRate)
	assert.Equal(t, bot.Hard, c.Difficulty(1))
	assert.Equal(t, bot.Easy, c.Difficulty(3))

	d := c.Delays()
	assert.Zero(t, d.BotTurn, "explicit zero is kept")
	assert.Equal(t, 250*time.Millisecond, d.TrickEnd)
	assert.Equal(t, 2*time.Second, d.HandEnd)
	assert.Equal(t, log.DebugLevel, c.LogLevel())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "euchre.hcl")
	require.NoError(t, os.WriteFile(path, []byte("match {\n  human_seat = -1\n}\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())
	assert.Equal(t, game.NoSeat, c.HumanSeat())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("match {"), "bad.hcl")
	assert.ErrorContains(t, err, "failed to parse HCL file")

	_, err = Parse([]byte(`unknown = 1`), "bad.hcl")
	assert.ErrorContains(t, err, "failed to decode HCL")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"human seat out of range", "match {\n human_seat = 4\n}", "invalid human seat"},
		{"first dealer out of range", "match {\n first_dealer = 7\n}", "invalid first dealer"},
		{"unknown match difficulty", "match {\n difficulty = \"brutal\"\n}", "unknown difficulty"},
		{"bad seat label", "seat \"north\" {\n difficulty = \"easy\"\n}", "invalid seat label"},
		{"duplicate seat", "seat \"1\" {\n difficulty = \"easy\"\n}\nseat \"1\" {\n difficulty = \"hard\"\n}", "configured twice"},
		{"override of human seat", "seat \"0\" {\n difficulty = \"easy\"\n}", "human seat"},
		{"negative log capacity", "match {\n log_capacity = -1\n}", "log capacity must not be negative"},
		{"lone rate above one", "match {\n lone_rate = 1.5\n}", "lone rate must be between 0 and 1"},
		{"negative lone rate", "match {\n lone_rate = -0.1\n}", "lone rate must be between 0 and 1"},
		{"negative pacing", "pacing {\n hand_pause = -5\n}", "hand_pause"},
		{"bad log level", "log {\n level = \"loud\"\n}", "log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.src), "test.hcl")
			require.NoError(t, err)
			assert.ErrorContains(t, c.Validate(), tt.want)
		})
	}
}
