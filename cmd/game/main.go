package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/spaceshooter/internal/application/game"
	"github.com/younwookim/spaceshooter/internal/application/render"
	"github.com/younwookim/spaceshooter/internal/application/replay"
	"github.com/younwookim/spaceshooter/internal/application/session"
	"github.com/younwookim/spaceshooter/internal/domain/tuning"
	"github.com/younwookim/spaceshooter/internal/infrastructure/browser"
	"github.com/younwookim/spaceshooter/internal/infrastructure/clock"
	"github.com/younwookim/spaceshooter/internal/infrastructure/config"
	"github.com/younwookim/spaceshooter/internal/infrastructure/ebitenio"
)

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	}

	cfg, err := loadConfig(opts.configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var data *replay.ReplayData
	if opts.replay != "" {
		data, err = replay.LoadReplay(opts.replay)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		log.Printf("[replay] loaded %s: %d frames, seed %d", opts.replay, len(data.Frames), data.Seed)
	}

	if opts.headless {
		sess, err := replay.Simulate(*data)
		if err != nil {
			log.Fatalf("Replay simulation failed: %v", err)
		}
		fmt.Printf("state=%s score=%d high=%d lives=%d\n", sess.Scene, sess.Score, sess.HighScore, sess.Lives)
		return
	}

	textures := ebitenio.LoadTextures(cfg.Assets)
	sink, err := ebitenio.NewSink(textures)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	shipW, shipH := render.ShipSize(textures)
	if data != nil {
		shipW, shipH = data.ShipW, data.ShipH
	}
	seed := opts.resolveSeed(data)
	sess := session.New(seed, shipW, shipH)
	log.Printf("[game] seed %d, ship %.0fx%.0f", seed, shipW, shipH)

	runner := ebitenio.NewRunner(game.NewDefault(sess, browser.New()), sink, clock.New(clock.DefaultMaxStep))

	var recorder *replay.Recorder
	if data != nil {
		runner.SetReplayer(replay.NewReplayer(*data))
	} else if opts.record != "" {
		recorder = replay.NewRecorder(seed, shipW, shipH)
		runner.SetRecorder(recorder)
		log.Printf("[replay] recording %s", recorder.ID())
	}

	ebiten.SetWindowSize(int(tuning.ScreenWidth*cfg.Window.Scale), int(tuning.ScreenHeight*cfg.Window.Scale))
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetWindowClosingHandled(true)

	runErr := ebiten.RunGame(runner)

	if recorder != nil {
		recorder.Stop()
		filename := opts.recordPath(cfg.Replay)
		if err := recorder.Save(filename, cfg.Replay.Compress); err != nil {
			log.Printf("[replay] failed to save %s: %v", filename, err)
		} else {
			log.Printf("[replay] saved %d frames to %s", recorder.FrameCount(), filename)
		}
	}

	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
}

// loadConfig reads game.yaml from dir, or the embedded copy when dir is empty
func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadOrDefault()
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").Load()
}
