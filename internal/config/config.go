package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config holds the game parameters. Values outside the board area are
// clamped by the engine; validation only rejects nonsense input.
type Config struct {
	Width     int `validate:"gte=1,lte=64"`
	Height    int `validate:"gte=1,lte=64"`
	MaxMoves  int `validate:"gte=0,lte=4096"`
	ShipCount int `validate:"gte=0,lte=4096"`
}

// Default returns the standard game: 8x8 board, 20 moves, 2 ships.
func Default() *Config {
	return &Config{
		Width:     8,
		Height:    8,
		MaxMoves:  20,
		ShipCount: 2,
	}
}

// Validate checks the configuration and reports all violations in a
// single human-readable error.
func (c *Config) Validate() error {
	errs := validate.Struct(c)
	if errs == nil {
		return nil
	}

	var details strings.Builder
	for _, err := range errs.(validator.ValidationErrors) {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch err.Tag() {
		case "gte":
			details.WriteString(fmt.Sprintf("%s must be at least %s", err.Field(), err.Param()))
		case "lte":
			details.WriteString(fmt.Sprintf("%s must be at most %s", err.Field(), err.Param()))
		default:
			details.WriteString(fmt.Sprintf("%s failed validation: %s", err.Field(), err.Tag()))
		}
	}
	return fmt.Errorf("invalid game configuration: %s", details.String())
}
