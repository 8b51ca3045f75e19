package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wave-rider/internal/config"
	"github.com/vovakirdan/wave-rider/internal/core"
	"github.com/vovakirdan/wave-rider/internal/game"
	"github.com/vovakirdan/wave-rider/internal/platform/tui"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long:  `Start a run in the current terminal.`,
	Run:   runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to tuning file (yaml)")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "wave",
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("load config", "err", err)
	}

	rt := core.DefaultConfig()
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := game.New(cfg, seed)
	if err := tui.Run(g, rt); err != nil {
		logger.Fatal("run", "err", err)
	}
}
