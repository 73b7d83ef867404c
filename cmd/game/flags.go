package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/younwookim/spaceshooter/internal/application/replay"
	"github.com/younwookim/spaceshooter/internal/infrastructure/config"
)

// autoRecord asks for a generated replay filename in the configured dir
const autoRecord = "auto"

type options struct {
	configDir string
	record    string
	replay    string
	seed      int64
	headless  bool
}

func parseFlags(args []string, output io.Writer) (*options, error) {
	fs := flag.NewFlagSet("game", flag.ContinueOnError)
	fs.SetOutput(output)

	opts := &options{}
	fs.StringVar(&opts.configDir, "config", "", "Directory holding game.yaml (default: embedded config)")
	fs.StringVar(&opts.record, "record", "", "Record input to file (e.g., -record replay.json.zst, or -record auto)")
	fs.StringVar(&opts.replay, "replay", "", "Play back a recorded replay file")
	fs.Int64Var(&opts.seed, "seed", 0, "RNG seed (default: current time)")
	fs.BoolVar(&opts.headless, "headless", false, "Simulate the -replay file without a window and print the result")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.headless && opts.replay == "" {
		return nil, fmt.Errorf("-headless requires -replay")
	}
	if opts.record != "" && opts.replay != "" {
		return nil, fmt.Errorf("-record and -replay cannot be combined")
	}
	return opts, nil
}

// recordPath resolves the -record value against the replay config
func (o *options) recordPath(cfg config.ReplayConfig) string {
	if o.record == autoRecord {
		return replay.GenerateFilename(cfg.Dir, cfg.Compress)
	}
	return o.record
}

// resolveSeed picks the run's seed: a replay's own seed, then -seed, then
// the clock.
func (o *options) resolveSeed(rep *replay.ReplayData) int64 {
	if rep != nil {
		return rep.Seed
	}
	if o.seed != 0 {
		return o.seed
	}
	return time.Now().UnixNano()
}
