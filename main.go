package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"raycast2d/sim"
	"raycast2d/snapshot"
	"raycast2d/tui"
)

// tuiLogPath receives logs while the terminal owns stderr.
const tuiLogPath = "raycast2d.log"

func main() {
	flag.Parse()

	var outputs []string
	if *tuiFlag {
		outputs = []string{tuiLogPath}
	}
	log, err := newLogger(*logLevelFlag, *logFormatFlag, outputs...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(2)
	}
	log = log.With(zap.String("session", uuid.NewString()))

	err = run(log)
	_ = log.Sync()
	if err != nil {
		log.Error("exiting", zap.Error(err))
		os.Exit(1)
	}
}

func run(log *zap.Logger) error {
	settings, err := resolveSettings()
	if err != nil {
		return err
	}

	if *cpuProfileFlag != "" {
		profile, err := startCPUProfile(*cpuProfileFlag, log)
		if err != nil {
			return err
		}
		defer profile.Stop()
	}

	world, err := sim.NewWorld(settings, sim.WithLogger(log))
	if err != nil {
		return err
	}
	release := selectScanner(world, log)
	defer release()

	log.Info("starting",
		zap.Int("rays", settings.Rays),
		zap.Int("trail_capacity", settings.TrailCapacity),
		zap.Int("walls", settings.Walls),
		zap.String("scanner", world.Scanner().Name()),
		zap.Int("gomaxprocs", runtime.GOMAXPROCS(0)))

	switch {
	case *snapshotFlag != "":
		motion := sim.NewNoiseMotion(float64(settings.Width), float64(settings.Height),
			settings.NoiseStep, settings.NoiseYOffset, settings.NoiseSeed)
		if err := snapshot.Run(world, motion, *snapshotStepsFlag, *snapshotFlag); err != nil {
			return err
		}
		log.Info("snapshot written", zap.String("path", *snapshotFlag), zap.Uint64("steps", world.Steps()))
		return nil
	case *tuiFlag:
		return tui.Run(world, log, tui.Options{
			Manual:    *manualFlag,
			HideWalls: *hideWallsFlag,
		})
	}

	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(settings.TPS)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	return ebiten.RunGame(newGame(world, log))
}

// selectScanner installs the OpenCL scanner when requested and available.
// The returned function releases device resources.
func selectScanner(world *sim.World, log *zap.Logger) func() {
	if !*openCLFlag {
		return func() {}
	}
	scanner, err := newOpenCLScanner(world.Settings().Rays)
	if err != nil {
		log.Warn("OpenCL scanner unavailable, using CPU",
			zap.String("scanner", world.Scanner().Name()), zap.Error(err))
		return func() {}
	}
	log.Info("OpenCL scanner enabled", zap.String("device", scanner.DeviceName()))
	world.SetScanner(scanner)
	return scanner.Close
}
