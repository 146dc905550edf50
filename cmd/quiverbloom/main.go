// Command quiverbloom inspects the algorithm catalog, dumps frame coordinates
// and renders animation loops to images.
//
// Usage:
//
//	quiverbloom info
//	quiverbloom frame -algo 3 -t 0.25                  # CSV on stdout
//	quiverbloom frame -algo spiral -format json -points 500
//	quiverbloom render -algo wisp -steps 240 -out frames/
//	quiverbloom render -config scene.yaml -out loop.gif -v
//
// The render command draws each frame like the browser host does: white dots
// at 20% opacity on black, at twice the canvas resolution by default.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/tphakala/go-quiverbloom"
	"github.com/tphakala/go-quiverbloom/internal/simdops"
)

// errUsage signals that usage text has already been printed.
var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(exitUsage)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return errUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "info":
		return runInfo(stdout)
	case "frame":
		return runFrame(rest, stdout, stderr)
	case "render":
		return runRender(rest, stderr)
	case "help", "-h", "-help", "--help":
		printUsage(stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", cmd)
		printUsage(stderr)
		return errUsage
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: quiverbloom <command> [options]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	fmt.Fprintf(w, "  info    List the algorithm catalog and the SIMD backend\n")
	fmt.Fprintf(w, "  frame   Write the points of one frame as CSV or JSON\n")
	fmt.Fprintf(w, "  render  Render a loop to numbered PNG files or an animated GIF\n")
	fmt.Fprintf(w, "\nRun 'quiverbloom <command> -h' for command options.\n")
}

// runInfo prints the catalog table.
func runInfo(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tWIDTH\tHEIGHT\tPOINTS\tTIME SCALE")
	for _, a := range quiverbloom.Algorithms() {
		c := a.Canvas()
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%g\n", int(a), a, c.Width, c.Height, c.Points, a.TimeScale())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nSIMD: %s\n", simdops.Info())
	return err
}

// runFrame generates a single frame and writes it out.
func runFrame(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("frame", flag.ContinueOnError)
	fs.SetOutput(stderr)
	algo := fs.String("algo", defaultAlgorithm, "Algorithm id (1-8) or name")
	t := fs.Float64("t", 0, "Time value; frames repeat every 1.0")
	points := fs.Int("points", 0, "Number of points (0 = recommended for the algorithm)")
	format := fs.String("format", formatCSV, "Output format: csv or json")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return errUsage
	}

	a, err := quiverbloom.ParseAlgorithm(*algo)
	if err != nil {
		return err
	}

	f, err := quiverbloom.NewFrameSize(a, pointCount(a, *points))
	if err != nil {
		return err
	}
	defer f.Close()
	f.Generate(*t)

	switch strings.ToLower(*format) {
	case formatCSV:
		return writeCSV(stdout, f)
	case formatJSON:
		return writeJSON(stdout, f)
	default:
		return fmt.Errorf("%w: unknown format %q (want csv or json)", quiverbloom.ErrInvalidConfig, *format)
	}
}

// pointCount resolves a -points flag value.
func pointCount(a quiverbloom.Algorithm, points int) int {
	if points == 0 {
		return a.Canvas().Points
	}
	return points
}
