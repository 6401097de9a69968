package main

import "flag"

// Command-line flags. Settings flags left at their zero value keep whatever the
// settings file (or the built-in defaults) say.
var (
	// configFlag points at an optional YAML settings file.
	configFlag = flag.String("config", "", "path to a YAML settings file")

	// raysFlag overrides the number of rays in the emitter fan.
	raysFlag = flag.Int("rays", 0, "number of rays emitted (default 360)")

	// trailFlag overrides the trail capacity.
	trailFlag = flag.Int("trail", 0, "number of past positions kept in the trail (default 200)")

	// wallsFlag overrides the number of random walls; -1 keeps the setting.
	wallsFlag = flag.Int("walls", -1, "number of random walls inside the borders (default 5)")

	// seedFlag fixes the wall layout.
	seedFlag = flag.Int64("seed", 0, "seed for wall placement (0 = time based)")

	// workersFlag enables the parallel CPU scanner.
	workersFlag = flag.Int("workers", -1, "scan with this many goroutines (0 = serial)")

	// openCLFlag runs the scan on an OpenCL device when built with -tags opencl.
	openCLFlag = flag.Bool("opencl", false, "scan on an OpenCL device (requires -tags opencl)")

	// manualFlag starts in manual (mouse driven) mode.
	manualFlag = flag.Bool("manual", false, "start with the emitter following the mouse")

	// hideWallsFlag starts with walls hidden and scanning off.
	hideWallsFlag = flag.Bool("hide-walls", false, "start with walls hidden and scanning disabled")

	// debugFlag enables the FPS and step overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and step timing overlay")

	// tuiFlag renders into the terminal instead of a window.
	tuiFlag = flag.Bool("tui", false, "render in the terminal instead of opening a window")

	snapshotFlag      = flag.String("snapshot", "", "run headless and write a PNG plot of the final step to this path")
	snapshotStepsFlag = flag.Int("steps", 600, "number of steps simulated before a snapshot")

	screenshotDirFlag = flag.String("screenshot-dir", ".", "directory for Ctrl+S screenshots")

	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile of the session to this path")

	logLevelFlag  = flag.String("log-level", "info", "log level: debug, info, warn or error")
	logFormatFlag = flag.String("log-format", "json", "log encoding: json or console")
)
