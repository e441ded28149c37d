// Package terrapath routes across classified terrain.
//
// A land-cover label raster (one class id per cell) and a per-class cost table
// are turned into a cost grid, and A* finds the minimum-cost route between two
// cells of that grid. Everything is organised in small subpackages:
//
//	terrain/        label grids, land-cover classes and cost tables
//	barrier/        rectangular exclusion zones behind an R-tree
//	costmap/        the cost grid, its builder and per-class statistics
//	gridgraph/      neighbourhoods, step lengths, components, wall breaching
//	astar/          cost-weighted A* with expansion and deadline limits
//	costdistance/   single-source accumulated cost surfaces (Dijkstra)
//	route/          route statistics and simplified waypoints
//	raster/         PNG/GIF/JPEG/TIFF label rasters
//	planner/        build + search + summarise, single and batched
//	config/         YAML/env configuration
//	server/         HTTP API
//	cmd/terrapath   command-line interface
//
// Quick ASCII example (R = road at 50, F = forest at 500, ~ = water wall):
//
//	R R R
//	~ ~ R
//	S R R
//
// From S at (2,0) to (0,0) the only route runs round the water through the
// right-hand column.
//
//	go install github.com/katalvlaran/terrapath/cmd/terrapath@latest
package terrapath
