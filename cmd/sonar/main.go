// Package main implements the interactive terminal client for the
// sonar ship-hunting game.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"sonar/internal/adapter"
	"sonar/internal/config"
	"sonar/internal/service"

	"github.com/chzyer/readline"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "error")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	defaults := config.Default()
	var (
		width  = flag.Int("width", envInt("SONAR_WIDTH", defaults.Width), "Board width")
		height = flag.Int("height", envInt("SONAR_HEIGHT", defaults.Height), "Board height")
		moves  = flag.Int("moves", envInt("SONAR_MOVES", defaults.MaxMoves), "Move budget")
		ships  = flag.Int("ships", envInt("SONAR_SHIPS", defaults.ShipCount), "Number of hidden ships")
		color  = flag.String("color", "heat", "Board color theme (off|heat|gray)")
	)
	flag.Parse()

	svc := service.New()
	defer svc.Close()

	g, err := svc.CreateGame(&config.Config{
		Width:     *width,
		Height:    *height,
		MaxMoves:  *moves,
		ShipCount: *ships,
	}, nil)
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}

	a := adapter.New(g, func(line string) {
		fmt.Println(line)
	})

	theme := adapter.ColorTheme(*color)
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		theme = adapter.ThemeOff
	}
	if err := a.SetTheme(theme); err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "sonar > ",
		HistoryFile:     ".sonar_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	for !a.Ended() {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" || line == "x" {
			break
		}

		a.HandleInput(line)
	}

	fmt.Printf("Final score: %d moves made, %d ships remaining.\n", g.MovesMade(), g.ShipsRemaining())

	if err := svc.DeleteGame(g.ID()); err != nil {
		log.Warn().Err(err).Msg("cleanup failed")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
