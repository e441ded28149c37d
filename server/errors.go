package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/katalvlaran/terrapath/astar"
	"github.com/katalvlaran/terrapath/barrier"
	"github.com/katalvlaran/terrapath/costdistance"
	"github.com/katalvlaran/terrapath/costmap"
	"github.com/katalvlaran/terrapath/planner"
	"github.com/katalvlaran/terrapath/terrain"
)

var (
	// errBadRequest marks request bodies that fail structural checks.
	errBadRequest = errors.New("server: bad request")

	// errBatchTooLarge indicates a batch above Server.MaxBatch.
	errBatchTooLarge = errors.New("server: batch exceeds the request limit")
)

// classify maps an error to an HTTP status and a stable machine-readable code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, astar.ErrNoPath):
		return http.StatusUnprocessableEntity, "no_path"
	case errors.Is(err, astar.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "timeout"
	case errors.Is(err, planner.ErrGridTooLarge), errors.Is(err, astar.ErrGridTooLarge), errors.Is(err, errBatchTooLarge):
		return http.StatusRequestEntityTooLarge, "too_large"
	case errors.Is(err, terrain.ErrInvalidCost):
		return http.StatusBadRequest, "invalid_cost"
	case errors.Is(err, terrain.ErrUnknownClass), errors.Is(err, terrain.ErrUnknownClassName):
		return http.StatusBadRequest, "unknown_class"
	case errors.Is(err, astar.ErrOutOfBounds), errors.Is(err, costdistance.ErrSourceOutOfBounds):
		return http.StatusBadRequest, "out_of_bounds"
	case errors.Is(err, errBadRequest),
		errors.Is(err, terrain.ErrEmptyGrid),
		errors.Is(err, terrain.ErrNonRectangular),
		errors.Is(err, terrain.ErrDimensionMismatch),
		errors.Is(err, costmap.ErrEmptyGrid),
		errors.Is(err, barrier.ErrInvalidZone):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, context.Canceled):
		return 499, "canceled"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// resultLabel is the metrics label for a planning error.
func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	switch status, code := classify(err); {
	case code == "no_path", code == "timeout":
		return code
	case status < http.StatusInternalServerError:
		return "invalid"
	default:
		return "error"
	}
}
