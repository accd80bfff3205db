package polyfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/turfpath/geometry"
	"github.com/katalvlaran/turfpath/grid"
)

// ErrMalformed indicates a line that is not a valid polygon description.
var ErrMalformed = errors.New("polyfile: malformed polygon")

// Parse reads one polygon per non-blank line of r.
func Parse(r io.Reader) ([]geometry.Polygon, error) {
	var out []geometry.Polygon
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		pg, err := parseLine(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, line, err)
		}
		out = append(out, pg)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("polyfile: read: %w", err)
	}

	return out, nil
}

// Load parses the file at path. An empty path yields no polygons.
func Load(path string) ([]geometry.Polygon, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("polyfile: %w", err)
	}
	defer f.Close()

	polys, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return polys, nil
}

// ParsePoint parses a single "x,y" vertex.
func ParsePoint(s string) (grid.Point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return grid.Point{}, fmt.Errorf("vertex %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grid.Point{}, fmt.Errorf("vertex %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grid.Point{}, fmt.Errorf("vertex %q: %w", s, err)
	}

	return grid.Point{X: x, Y: y}, nil
}

func parseLine(text string) (geometry.Polygon, error) {
	fields := strings.Split(text, ";")
	vertices := make([]grid.Point, 0, len(fields))
	for i, f := range fields {
		if strings.TrimSpace(f) == "" {
			return geometry.Polygon{}, fmt.Errorf("empty vertex %d", i+1)
		}
		p, err := ParsePoint(f)
		if err != nil {
			return geometry.Polygon{}, err
		}
		vertices = append(vertices, p)
	}

	return geometry.NewPolygon(vertices)
}
