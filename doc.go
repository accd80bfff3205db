// Package turfpath finds routes across a bounded grid obstructed by polygon
// enclosures and overlaid by costlier turf polygons, and compares how four
// classic searches (BFS, DFS, greedy best-first, A*) behave on it.
//
// Subpackages:
//
//	grid/      — bounded coordinate space, direction sets, flood-fill reachability
//	geometry/  — polygons, buffered containment, blocked/turf cell classifier
//	frontier/  — FIFO, LIFO and keyed priority frontiers with membership
//	search/    — the engine: shared expansion, four strategies, reconstruction
//	polyfile/  — polygon description file reader
//	report/    — numbered run records, summary writers, collectors
//	render/    — PNG plot and terminal view of a scene
//	cmd/turfpath — command-line driver
//
// Quick example:
//
//	S . . # . . D      S = source, D = destination
//	. . . # . . .      # = enclosure, ~ = turf
//	. ~ ~ ~ ~ ~ .
//
//	g := grid.Default()
//	cls, _ := geometry.NewClassifier(g, enclosures, turfs)
//	eng, _ := search.NewEngine(cls)
//	res, _ := eng.AStar(grid.Point{X: 8, Y: 10}, grid.Point{X: 43, Y: 45})
//	fmt.Println(res.Found, res.Cost, res.Expanded)
//
// Cost model: a step costs its Euclidean length, ×1.5 when it lands on turf.
// A* reports the cheapest path under that model; BFS the fewest steps.
package turfpath
