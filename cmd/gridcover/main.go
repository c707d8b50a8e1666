package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/gridcover"
	"github.com/osuushi/gridcover/advanced"
	"github.com/osuushi/gridcover/phase"
)

// Command line driver for the coverage engine. "frame" prints the coverage of
// one placement of the demo rectangle, "sweep" verifies a whole destination
// image under an affine map, and "rotate" spins the demo rectangle until a
// frame fails to add up, recording the angle so the next run replays it.
func main() {
	app := kingpin.New("gridcover", "Exact parallelogram coverage of a pixel grid.")
	verbose := app.Flag("verbose", "Log debug records.").Short('v').Bool()

	frameCmd := app.Command("frame", "Compute and print the coverage of one placement.")
	frameTheta := frameCmd.Flag("theta", "Rotation in degrees.").Default("0").Float64()
	frameScaleX := frameCmd.Flag("scale-x", "Horizontal scale of the unit square.").Default("1").Float64()
	frameScaleY := frameCmd.Flag("scale-y", "Vertical scale of the unit square.").Default("0.5").Float64()
	frameCenterX := frameCmd.Flag("center-x", "Center of the shape.").Default("0.5").Float64()
	frameCenterY := frameCmd.Flag("center-y", "Center of the shape.").Default("0").Float64()
	frameCapacity := frameCmd.Flag("capacity", "Maximum cells per axis.").Default("3").Int()
	frameOut := frameCmd.Flag("png", "Render the frame to this PNG file and show it in the terminal.").String()

	sweepCmd := app.Command("sweep", "Verify coverage for every pixel of an image.")
	sweepConfig := sweepCmd.Flag("config", "YAML sweep configuration.").ExistingFile()
	sweepWidth := sweepCmd.Flag("width", "Image width, overrides the config.").Int()
	sweepHeight := sweepCmd.Flag("height", "Image height, overrides the config.").Int()
	sweepRotate := sweepCmd.Flag("rotate", "Rotation of the inverse map in degrees, overrides the config.").Float64()
	sweepWorkers := sweepCmd.Flag("workers", "Parallel workers, overrides the config.").Int()

	rotateCmd := app.Command("rotate", "Spin the demo rectangle until a frame fails.")
	rotateStep := rotateCmd.Flag("step", "Angle per frame in degrees.").Default("0.5").Float64()
	rotateFrames := rotateCmd.Flag("frames", "Number of frames.").Default("720").Int()
	rotatePhase := rotateCmd.Flag("phase-file", "Where failing angles are stored and replayed from.").Default(phase.DefaultPath()).String()
	rotateCapacity := rotateCmd.Flag("capacity", "Maximum cells per axis.").Default("3").Int()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	gridcover.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch command {
	case frameCmd.FullCommand():
		err = runFrame(frameOptions{
			theta:    *frameTheta * math.Pi / 180,
			scaleX:   *frameScaleX,
			scaleY:   *frameScaleY,
			center:   advanced.Point{X: *frameCenterX, Y: *frameCenterY},
			capacity: *frameCapacity,
			png:      *frameOut,
		})

	case sweepCmd.FullCommand():
		cfg := DefaultSweepConfig()
		if *sweepConfig != "" {
			cfg, err = LoadSweepConfig(*sweepConfig)
			app.FatalIfError(err, "")
		}
		if *sweepWidth > 0 {
			cfg.Width = *sweepWidth
		}
		if *sweepHeight > 0 {
			cfg.Height = *sweepHeight
		}
		if *sweepRotate != 0 {
			cfg.Rotate = *sweepRotate
		}
		if *sweepWorkers > 0 {
			cfg.Workers = *sweepWorkers
		}
		if *verbose {
			fmt.Fprint(os.Stderr, cfg.Dump())
		}
		err = runSweep(ctx, cfg)

	case rotateCmd.FullCommand():
		err = runRotate(ctx, *rotateStep*math.Pi/180, *rotateFrames, *rotateCapacity, *rotatePhase)
	}
	app.FatalIfError(err, "%s", command)
}

type frameOptions struct {
	theta          float64
	scaleX, scaleY float64
	center         advanced.Point
	capacity       int
	png            string
}

func runFrame(opts frameOptions) (err error) {
	defer func() {
		recoveredErr := advanced.HandleCoveragePanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()
	engine := advanced.NewEngine(opts.capacity)
	engine.SetTransform(advanced.PlacementTransform(opts.theta, opts.scaleX, opts.scaleY, opts.center))
	cov := engine.ComputeCoverage()

	fmt.Println(cov.Bounds)
	for i := range cov.Cells {
		fmt.Println(&cov.Cells[i])
	}
	printVerdict(engine.Shape().Area(), cov.TotalArea, advanced.DefaultTolerance)

	if opts.png != "" {
		return cov.DbgDraw(engine.Shape(), 100, opts.png)
	}
	return nil
}

func runSweep(ctx context.Context, cfg SweepConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	failures, err := gridcover.Verify(ctx, cfg.Sweep())
	if err != nil {
		return err
	}
	for _, f := range failures {
		fmt.Printf("%s pixel (%d, %d) at (%.4f, %.4f): area %.6f, covered %.6f\n",
			aurora.Red("FAIL"), f.X, f.Y, f.Placement.X, f.Placement.Y, f.Area, f.Covered)
	}
	if len(failures) > 0 {
		return errors.Errorf("%d of %d pixels failed", len(failures), cfg.Width*cfg.Height)
	}
	fmt.Printf("%s %d pixels\n", aurora.Green("OK"), cfg.Width*cfg.Height)
	return nil
}

func runRotate(ctx context.Context, step float64, frames, capacity int, phasePath string) (err error) {
	defer func() {
		recoveredErr := advanced.HandleCoveragePanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()
	stored, err := phase.Read(phasePath)
	if err != nil {
		return err
	}
	rotation := advanced.NewRotationWithCapacity(step, capacity)

	// Replay mode: the stored angles are the interesting ones, so show them
	// and leave the file alone.
	if len(stored) > 0 {
		replay := phase.NewCycle(stored)
		for i := 0; i < replay.Len(); i++ {
			theta := replay.Next()
			cov, area, _ := rotation.Frame(theta)
			fmt.Printf("θ=%.6f ", theta)
			printVerdict(area, cov.TotalArea, rotation.Tolerance)
		}
		return nil
	}

	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		cov, area, ok := rotation.Advance()
		if ok {
			continue
		}
		fmt.Printf("θ=%.6f ", rotation.Theta)
		printVerdict(area, cov.TotalArea, rotation.Tolerance)
		if err := phase.Append(phasePath, rotation.Theta); err != nil {
			return err
		}
		return errors.Errorf("coverage does not add up at θ=%.6f, recorded in %s", rotation.Theta, phasePath)
	}
	fmt.Printf("%s %d frames\n", aurora.Green("OK"), frames)
	return nil
}

func printVerdict(area, covered, tolerance float64) {
	verdict := aurora.Green("OK")
	if math.Abs(covered-area) > tolerance*math.Abs(area) {
		verdict = aurora.Red("MISMATCH")
	}
	fmt.Printf("%s area %.6f covered %.6f\n", verdict, area, covered)
}
