// Command turfpath searches a grid world for a route between two cells.
//
// The world is a W×H grid, a file of enclosure polygons (impassable) and a
// file of turf polygons (passable at 1.5× cost). Each selected algorithm is
// run once; the runs are summarized as a table on stdout and, optionally,
// written to a summary file, plotted to PNG and shown in the terminal.
//
// Usage:
//
//	turfpath -enclosures world1_enclosures.txt -turfs world1_turfs.txt \
//	    -src 8,10 -dst 43,45 -alg all -png route.png -view
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/turfpath/geometry"
	"github.com/katalvlaran/turfpath/grid"
	"github.com/katalvlaran/turfpath/polyfile"
	"github.com/katalvlaran/turfpath/render"
	"github.com/katalvlaran/turfpath/report"
	"github.com/katalvlaran/turfpath/search"
)

// config is the parsed command line.
type config struct {
	enclosures, turfs string
	src, dst          grid.Point
	algs              []search.Algorithm
	width, height     int
	conn              grid.Connectivity
	buffer            float64
	weightBFSTurf     bool
	summary           string
	png               string
	view              bool
}

func parseFlags(args []string, errOut io.Writer) (*config, error) {
	fs := flag.NewFlagSet("turfpath", flag.ContinueOnError)
	fs.SetOutput(errOut)

	cfg := &config{}
	var src, dst, alg string
	var conn int
	fs.StringVar(&cfg.enclosures, "enclosures", "", "enclosure polygon file (one polygon per line)")
	fs.StringVar(&cfg.turfs, "turfs", "", "turf polygon file (one polygon per line)")
	fs.StringVar(&src, "src", "8,10", "source cell as x,y")
	fs.StringVar(&dst, "dst", "43,45", "destination cell as x,y")
	fs.StringVar(&alg, "alg", "all", "algorithm: bfs, dfs, gbfs, astar or all")
	fs.IntVar(&cfg.width, "width", grid.DefaultWidth, "grid width")
	fs.IntVar(&cfg.height, "height", grid.DefaultHeight, "grid height")
	fs.IntVar(&conn, "conn", 4, "connectivity: 4 or 8")
	fs.Float64Var(&cfg.buffer, "buffer", geometry.DefaultBuffer, "polygon edge contact distance")
	fs.BoolVar(&cfg.weightBFSTurf, "weight-bfs-turf", false, "report turf-weighted cost for BFS")
	fs.StringVar(&cfg.summary, "summary", "", "rewrite this file with the latest run summary")
	fs.StringVar(&cfg.png, "png", "", "plot each run to this PNG path")
	fs.BoolVar(&cfg.view, "view", false, "show the results in the terminal")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var err error
	if cfg.src, err = polyfile.ParsePoint(src); err != nil {
		return nil, fmt.Errorf("-src: %w", err)
	}
	if cfg.dst, err = polyfile.ParsePoint(dst); err != nil {
		return nil, fmt.Errorf("-dst: %w", err)
	}
	switch conn {
	case 4:
		cfg.conn = grid.Conn4
	case 8:
		cfg.conn = grid.Conn8
	default:
		return nil, fmt.Errorf("-conn: want 4 or 8, got %d", conn)
	}
	if strings.EqualFold(alg, "all") {
		cfg.algs = search.Algorithms()
	} else {
		a, err := search.ParseAlgorithm(alg)
		if err != nil {
			return nil, fmt.Errorf("-alg: %w", err)
		}
		cfg.algs = []search.Algorithm{a}
	}

	return cfg, nil
}

// outcome pairs a search result with its numbered record.
type outcome struct {
	result *search.Result
	record report.Record
}

func run(cfg *config, out io.Writer) ([]outcome, *geometry.Classifier, error) {
	g, err := grid.NewGrid(cfg.width, cfg.height, grid.Options{Conn: cfg.conn})
	if err != nil {
		return nil, nil, err
	}
	enclosures, err := polyfile.Load(cfg.enclosures)
	if err != nil {
		return nil, nil, err
	}
	turfs, err := polyfile.Load(cfg.turfs)
	if err != nil {
		return nil, nil, err
	}
	cls, err := geometry.NewClassifier(g, enclosures, turfs, geometry.WithBuffer(cfg.buffer))
	if err != nil {
		return nil, nil, err
	}

	var opts []search.Option
	if cfg.weightBFSTurf {
		opts = append(opts, search.WithTurfWeightedBFS())
	}
	eng, err := search.NewEngine(cls, opts...)
	if err != nil {
		return nil, nil, err
	}

	sinks := []report.Reporter{}
	if cfg.summary != "" {
		sinks = append(sinks, report.SummaryFile{Path: cfg.summary})
	}
	rec := report.NewRecorder(sinks...)

	var outcomes []outcome
	var sinkErrs []error
	for _, alg := range cfg.algs {
		res, err := eng.Run(alg, cfg.src, cfg.dst)
		if err != nil {
			return outcomes, cls, err
		}
		r, err := rec.Observe(alg.String(), res.Cost, res.Expanded, res.Found)
		if err != nil {
			sinkErrs = append(sinkErrs, err)
		}
		if !res.Found {
			log.Printf("%s: no path from %v to %v; %d cells reachable from the source",
				r.Name(), cfg.src, cfg.dst, g.ReachableCount(cfg.src, cls.IsBlocked))
		}
		outcomes = append(outcomes, outcome{result: res, record: r})

		if cfg.png != "" {
			path := pngPath(cfg.png, r.Name(), len(cfg.algs) > 1)
			scene := render.NewScene(cls, cfg.src, cfg.dst, res.Path)
			if err := render.SavePNG(path, scene, render.DefaultImageOptions()); err != nil {
				return outcomes, cls, err
			}
		}
	}

	printTable(out, outcomes)

	return outcomes, cls, errors.Join(sinkErrs...)
}

// pngPath inserts the run name before the extension when several runs share one -png path.
func pngPath(base, name string, many bool) string {
	if !many {
		return base
	}
	ext := filepath.Ext(base)

	return strings.TrimSuffix(base, ext) + "-" + name + ext
}

func printTable(w io.Writer, outcomes []outcome) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tFOUND\tSTEPS\tTURF\tCOST\tWEIGHTED\tEXPANDED")
	for _, o := range outcomes {
		cost, weighted := "-", "-"
		if o.result.Found {
			cost = fmt.Sprintf("%g", o.result.Cost)
			weighted = fmt.Sprintf("%g", o.result.WeightedCost)
		}
		fmt.Fprintf(tw, "%s\t%t\t%d\t%d\t%s\t%s\t%d\n",
			o.record.Name(), o.result.Found, o.result.Steps(), o.result.TurfSteps, cost, weighted, o.result.Expanded)
	}
	tw.Flush()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("turfpath: ")

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	outcomes, cls, err := run(cfg, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.view {
		if err := view(cls, cfg.src, cfg.dst, outcomes); err != nil {
			log.Fatal(err)
		}
	}
}
