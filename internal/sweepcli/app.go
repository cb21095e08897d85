// Package sweepcli is the command-line front end: it prints the baseline
// report, sweeps heater power and exports the velocity curve.
package sweepcli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"oil_heating/internal/logger"
	"oil_heating/internal/models"
	"oil_heating/internal/plot"
	"oil_heating/internal/report"
	"oil_heating/internal/service"
)

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

// Options are the parsed command-line settings.
type Options struct {
	Power     float64
	Range     models.PowerRange
	Policy    string
	PDFPath   string
	XLSXPath  string
	LogLevel  string
	MaxPoints int
}

func NewFlagSet(name string, opts *Options) *flag.FlagSet {
	d := models.DefaultInputs()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Float64Var(&opts.Power, "power", d.Heater.Power, "heater power for the baseline report, W")
	fs.Float64Var(&opts.Range.Start, "start", 0, "first sweep power, W")
	fs.Float64Var(&opts.Range.Stop, "stop", 1000001, "exclusive upper sweep bound, W")
	fs.Float64Var(&opts.Range.Step, "step", 500, "sweep power step, W")
	fs.StringVar(&opts.Policy, "policy", service.PolicyStop, "failure policy: stop or skip")
	fs.StringVar(&opts.PDFPath, "pdf", "", "write the velocity chart to this PDF file")
	fs.StringVar(&opts.XLSXPath, "xlsx", "", "write the sweep workbook to this XLSX file")
	fs.StringVar(&opts.LogLevel, "log-level", logger.InfoLevel, "debug, info, warn or error")
	fs.IntVar(&opts.MaxPoints, "max-points", 20000, "refuse sweeps longer than this")
	fs.Usage = func() {
		out := fs.Output()
		_, _ = fmt.Fprintf(out, "Usage:\n  %s [options]\n\nOptions:\n", name)
		fs.PrintDefaults()
	}
	return fs
}

// RunContext parses argv, runs the baseline calculation and the sweep, and
// returns the process exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	var opts Options
	fs := NewFlagSet("oil-sweep", &opts)
	fs.SetOutput(stderr)
	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	log := logger.New(opts.LogLevel, stderr)
	outw := bufio.NewWriter(stdout)
	defer outw.Flush()

	if err := run(ctx, opts, outw, log); err != nil {
		log.Errorw("sweep_cli_failed", "err", err)
		_ = outw.Flush()
		fmt.Fprintln(stderr, err)
		return exitFail
	}
	return exitOK
}

func run(ctx context.Context, opts Options, out io.Writer, log *logger.Logger) error {
	in := models.DefaultInputs().WithPower(opts.Power)

	calc := service.NewCalculationService(nil, in)
	baseline, err := calc.Calculate(ctx, service.CalculationParams{Inputs: in})
	if err != nil {
		return fmt.Errorf("baseline: %w", err)
	}
	if err := report.Write(out, in, baseline.Result); err != nil {
		return err
	}

	sweeper := service.NewSweepService(nil, opts.MaxPoints)
	sw, err := sweeper.Sweep(ctx, service.SweepParams{
		Inputs: in,
		Range:  opts.Range,
		Policy: opts.Policy,
	}, func(pt models.SweepPoint) error {
		if pt.Failed {
			log.Debugw("sweep_point_skipped", "index", pt.Index, "power", pt.Power, "err", pt.Error)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "\nSweep: %d points, %d failed\n", len(sw.Points), sw.Failures()); err != nil {
		return err
	}

	if opts.PDFPath != "" {
		if err := writeFile(opts.PDFPath, sw, plot.WritePDF); err != nil {
			return err
		}
		log.Infow("chart written", "path", opts.PDFPath)
	}
	if opts.XLSXPath != "" {
		if err := writeFile(opts.XLSXPath, sw, plot.WriteXLSX); err != nil {
			return err
		}
		log.Infow("workbook written", "path", opts.XLSXPath)
	}
	return nil
}

func writeFile(path string, sw models.Sweep, render func(io.Writer, models.Sweep, string) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := render(f, sw, ""); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return nil
}
