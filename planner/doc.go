// Package planner wires the pipeline together: label grid and cost table in,
// cost grid, path and route statistics out.
//
// Plan handles one request synchronously. PlanAll fans a batch of requests
// out over a bounded worker pool (golang.org/x/sync/errgroup) and returns one
// Outcome per request in input order; a failing request never cancels its
// siblings. Every request builds its own cost grid and search state, so no
// data is shared between workers.
//
// When a search fails with astar.ErrNoPath the error is enriched with a
// breach diagnostic: the fewest wall cells that would have to be opened to
// connect start and goal.
package planner
