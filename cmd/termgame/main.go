// Command termgame plays the game inside a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/spaceshooter/internal/application/game"
	"github.com/younwookim/spaceshooter/internal/application/render"
	"github.com/younwookim/spaceshooter/internal/application/replay"
	"github.com/younwookim/spaceshooter/internal/application/session"
	"github.com/younwookim/spaceshooter/internal/infrastructure/browser"
	"github.com/younwookim/spaceshooter/internal/infrastructure/clock"
	"github.com/younwookim/spaceshooter/internal/infrastructure/config"
	"github.com/younwookim/spaceshooter/internal/infrastructure/terminal"
)

func main() {
	configDir := flag.String("config", "", "Directory holding game.yaml (default: built-in settings)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json.zst)")
	replayFlag := flag.String("replay", "", "Play back a recorded replay file")
	seedFlag := flag.Int64("seed", 0, "RNG seed (default: current time)")
	logFlag := flag.String("log", "", "Write logs to this file (the terminal is taken by the game)")
	flag.Parse()

	logOut, err := openLog(*logFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer logOut.Close()
	log.SetOutput(logOut)

	cfg := config.Default()
	if *configDir != "" {
		cfg, err = config.NewLoader(*configDir).LoadOrDefault()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}

	var data *replay.ReplayData
	if *replayFlag != "" {
		data, err = replay.LoadReplay(*replayFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load replay: %v\n", err)
			os.Exit(1)
		}
	}

	// No textures in a terminal: the default ship size applies
	shipW, shipH := render.ShipSize(nil)
	seed := *seedFlag
	switch {
	case data != nil:
		seed, shipW, shipH = data.Seed, data.ShipW, data.ShipH
	case seed == 0:
		seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	sess := session.New(seed, shipW, shipH)
	loop := terminal.NewLoop(screen, game.NewDefault(sess, browser.New()), clock.New(clock.DefaultMaxStep))

	var recorder *replay.Recorder
	if data != nil {
		loop.SetReplayer(replay.NewReplayer(*data))
	} else if *recordFlag != "" {
		recorder = replay.NewRecorder(seed, shipW, shipH)
		loop.SetRecorder(recorder)
	}

	runErr := loop.Run()
	screen.Fini()

	if recorder != nil {
		recorder.Stop()
		if err := recorder.Save(*recordFlag, cfg.Replay.Compress); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save replay: %v\n", err)
		} else {
			fmt.Printf("Saved %d frames to %s\n", recorder.FrameCount(), *recordFlag)
		}
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
	fmt.Printf("Score: %d  High Score: %d\n", sess.Score, sess.HighScore)
}

// openLog returns the log destination; logs are dropped without a file
func openLog(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
