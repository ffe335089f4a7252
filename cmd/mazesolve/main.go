// This is a command-line solver: it reads a maze file, finds a route from
// S to a G cell with depth-first search, prints it, and can save pictures.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/katalvlaran/mazedfs/config"
	"github.com/katalvlaran/mazedfs/maze"
	"github.com/katalvlaran/mazedfs/render"
	"github.com/katalvlaran/mazedfs/service"
)

// options collects the parsed command line.
type options struct {
	mazeFile   string
	pngFile    string
	gifFile    string
	ascii      bool
	cellPixels int
	maxSteps   int
	timeout    time.Duration
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	var o options
	fs := flag.NewFlagSet("mazesolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.mazeFile, "maze_file", "",
		"The maze to solve. Use - to read standard input.")
	fs.StringVar(&o.pngFile, "png", "",
		"If set, the .png file to which the solved maze is saved.")
	fs.StringVar(&o.gifFile, "gif", "",
		"If set, the .gif file to which an animated trace is saved.")
	fs.BoolVar(&o.ascii, "ascii", false,
		"If set, prints the maze with the route marked by '*'.")
	fs.IntVar(&o.cellPixels, "cell_pixels", 20,
		"The side of one cell in saved images, in pixels.")
	fs.IntVar(&o.maxSteps, "max_steps", -1,
		"If positive, the most cells the search may expand.")
	fs.DurationVar(&o.timeout, "timeout", 0,
		"If positive, abandons the search after this long.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.mazeFile == "" && fs.NArg() > 0 {
		o.mazeFile = fs.Arg(0)
	}
	if o.mazeFile == "" {
		return nil, fmt.Errorf("missing -maze_file; run with -help for more information")
	}
	return &o, nil
}

func readMaze(path string, stdin io.Reader) (*maze.Grid, error) {
	if path == "-" {
		return maze.Parse(stdin)
	}
	return maze.ReadFile(path)
}

func saveImages(o *options, rep *service.Report, logger *log.Logger) error {
	rc := render.NewContext(render.WithCellPixels(o.cellPixels))
	if o.pngFile != "" {
		img, err := rc.Path(rep.Grid, rep.Start, rep.Path)
		if err != nil {
			return err
		}
		if err := writeFile(o.pngFile, func(w io.Writer) error { return render.WritePNG(w, img) }); err != nil {
			return err
		}
		logger.Printf("[INFO] Image %s written OK.", o.pngFile)
	}
	if o.gifFile != "" {
		err := writeFile(o.gifFile, func(w io.Writer) error {
			return rc.WriteGIF(w, rep.Grid, rep.Start, rep.Path)
		})
		if err != nil {
			return err
		}
		logger.Printf("[INFO] Animation %s written OK.", o.gifFile)
	}
	return nil
}

func writeFile(name string, encode func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", name, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return f.Close()
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, config.ColorCyan+"[MAZESOLVE]"+config.ColorReset+" ", 0)
	o, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		logger.Printf("[ERROR] %v", err)
		return 1
	}

	g, err := readMaze(o.mazeFile, stdin)
	if err != nil {
		logger.Printf("[ERROR] Reading maze: %v", err)
		return 1
	}

	solver := service.NewSolver(service.Config{MaxSteps: o.maxSteps, Timeout: o.timeout})
	rep, err := solver.SolveGrid(context.Background(), g)
	if err != nil {
		logger.Printf("[ERROR] Solving maze: %v", err)
		return 1
	}

	fmt.Fprintln(stdout, rep.Summary())
	if !rep.Found {
		return 0
	}
	if o.ascii {
		fmt.Fprint(stdout, render.Text(rep.Grid, rep.Start, rep.Path))
	}
	if err := saveImages(o, rep, logger); err != nil {
		logger.Printf("[ERROR] %v", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
