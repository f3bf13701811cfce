package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cbodonnell/spinwheel/client/game"
	"github.com/cbodonnell/spinwheel/pkg/log"
	"github.com/cbodonnell/spinwheel/pkg/random"
	"github.com/cbodonnell/spinwheel/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	labels := flag.String("labels", "Red,Orange,Yellow,Green,Blue,Purple", "comma-separated sector labels")
	durationMs := flag.Int("duration-ms", 4000, "spin duration in milliseconds")
	seed := flag.Int64("seed", 0, "random seed (0 seeds from the clock)")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())

	rand := random.NewTimeSource()
	if *seed != 0 {
		rand = random.NewSeededSource(*seed)
	}

	g, err := game.NewGame(game.NewGameOptions{
		Labels:       strings.Split(*labels, ","),
		SpinDuration: time.Duration(*durationMs) * time.Millisecond,
		Rand:         rand,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	ebiten.SetWindowTitle("Spinwheel")
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}
