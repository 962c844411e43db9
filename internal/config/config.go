// Package config loads the euchre CLI's HCL configuration file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/euchre/internal/bot"
	"github.com/lox/euchre/internal/game"
	"github.com/lox/euchre/internal/pacing"
)

// DefaultFilename is where the play command looks for its configuration.
const DefaultFilename = "euchre.hcl"

// Config represents the complete configuration
type Config struct {
	Match  *MatchSettings  `hcl:"match,block"`
	Seats  []SeatConfig    `hcl:"seat,block"`
	Pacing *PacingSettings `hcl:"pacing,block"`
	Log    *LogSettings    `hcl:"log,block"`
}

// MatchSettings configures the table
type MatchSettings struct {
	HumanSeat   int     `hcl:"human_seat,optional"`
	FirstDealer *int    `hcl:"first_dealer,optional"`
	Seed        int64   `hcl:"seed,optional"`
	Difficulty  string  `hcl:"difficulty,optional"`
	LogCapacity int     `hcl:"log_capacity,optional"`
	LoneRate    float64 `hcl:"lone_rate,optional"`
}

// SeatConfig overrides the difficulty of one automated seat
type SeatConfig struct {
	Seat       string `hcl:"seat,label"`
	Difficulty string `hcl:"difficulty"`
}

// PacingSettings holds presentation delays in milliseconds
type PacingSettings struct {
	BotDelay   *int `hcl:"bot_delay,optional"`
	TrickPause *int `hcl:"trick_pause,optional"`
	HandPause  *int `hcl:"hand_pause,optional"`
}

// LogSettings configures the log file
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// Default returns the default configuration
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. The filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Match == nil {
		c.Match = &MatchSettings{}
	}
	if c.Match.FirstDealer == nil {
		c.Match.FirstDealer = intPtr(3)
	}
	if c.Match.Difficulty == "" {
		c.Match.Difficulty = bot.Medium.String()
	}
	if c.Match.LogCapacity == 0 {
		c.Match.LogCapacity = game.DefaultLogCapacity
	}

	defaults := pacing.DefaultDelays()
	if c.Pacing == nil {
		c.Pacing = &PacingSettings{}
	}
	if c.Pacing.BotDelay == nil {
		c.Pacing.BotDelay = intPtr(int(defaults.BotTurn / time.Millisecond))
	}
	if c.Pacing.TrickPause == nil {
		c.Pacing.TrickPause = intPtr(int(defaults.TrickEnd / time.Millisecond))
	}
	if c.Pacing.HandPause == nil {
		c.Pacing.HandPause = intPtr(int(defaults.HandEnd / time.Millisecond))
	}

	if c.Log == nil {
		c.Log = &LogSettings{}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.File == "" {
		c.Log.File = "euchre.log"
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if seat := game.Seat(c.Match.HumanSeat); seat != game.NoSeat && !seat.Valid() {
		return fmt.Errorf("invalid human seat: %d", c.Match.HumanSeat)
	}
	if !game.Seat(*c.Match.FirstDealer).Valid() {
		return fmt.Errorf("invalid first dealer: %d", *c.Match.FirstDealer)
	}
	if _, err := bot.ParseDifficulty(c.Match.Difficulty); err != nil {
		return fmt.Errorf("match: %w", err)
	}
	if c.Match.LogCapacity < 0 {
		return fmt.Errorf("log capacity must not be negative")
	}
	if c.Match.LoneRate < 0 || c.Match.LoneRate > 1 {
		return fmt.Errorf("lone rate must be between 0 and 1, got %g", c.Match.LoneRate)
	}

	seen := make(map[game.Seat]bool)
	for _, s := range c.Seats {
		seat, err := parseSeat(s.Seat)
		if err != nil {
			return err
		}
		if seen[seat] {
			return fmt.Errorf("seat %d configured twice", seat)
		}
		seen[seat] = true
		if seat == game.Seat(c.Match.HumanSeat) {
			return fmt.Errorf("seat %d is the human seat", seat)
		}
		if _, err := bot.ParseDifficulty(s.Difficulty); err != nil {
			return fmt.Errorf("seat %d: %w", seat, err)
		}
	}

	for name, ms := range map[string]int{
		"bot_delay":   *c.Pacing.BotDelay,
		"trick_pause": *c.Pacing.TrickPause,
		"hand_pause":  *c.Pacing.HandPause,
	} {
		if ms < 0 {
			return fmt.Errorf("pacing %s must not be negative", name)
		}
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// HumanSeat returns the seat played from the terminal, or game.NoSeat.
func (c *Config) HumanSeat() game.Seat {
	return game.Seat(c.Match.HumanSeat)
}

// FirstDealer returns the seat that deals the first hand.
func (c *Config) FirstDealer() game.Seat {
	return game.Seat(*c.Match.FirstDealer)
}

// Difficulty returns the difficulty for an automated seat: its own override,
// else the match default.
func (c *Config) Difficulty(seat game.Seat) bot.Difficulty {
	for _, s := range c.Seats {
		if n, err := parseSeat(s.Seat); err == nil && n == seat {
			if d, err := bot.ParseDifficulty(s.Difficulty); err == nil {
				return d
			}
		}
	}
	d, _ := bot.ParseDifficulty(c.Match.Difficulty)
	return d
}

// Delays returns the pacing delays.
func (c *Config) Delays() pacing.Delays {
	return pacing.Delays{
		BotTurn:  time.Duration(*c.Pacing.BotDelay) * time.Millisecond,
		TrickEnd: time.Duration(*c.Pacing.TrickPause) * time.Millisecond,
		HandEnd:  time.Duration(*c.Pacing.HandPause) * time.Millisecond,
	}
}

// LogLevel returns the parsed log level, falling back to info.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

func parseSeat(label string) (game.Seat, error) {
	n, err := strconv.Atoi(label)
	if err != nil || !game.Seat(n).Valid() {
		return game.NoSeat, fmt.Errorf("invalid seat label %q", label)
	}
	return game.Seat(n), nil
}

func intPtr(n int) *int { return &n }
