package http

import (
	"io"
	"net/http"

	"woolabels/internal/core/application/usecases/queries"
	"woolabels/internal/core/ports"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Server handles the HTTP presentation of the label engine.
// It coordinates between HTTP handlers and application use cases and keeps
// no state between requests: each upload is parsed from scratch, and a
// failed parse returns an error payload instead of stale results.
type Server struct {
	buildLabelsHandler  queries.BuildLabelsQueryHandler
	buildSummaryHandler queries.BuildSummaryQueryHandler

	// eanProvider is optional; nil disables barcode resolution.
	eanProvider ports.EANProvider
}

// NewServer creates a new HTTP server with the required query handlers.
func NewServer(
	buildLabelsHandler queries.BuildLabelsQueryHandler,
	buildSummaryHandler queries.BuildSummaryQueryHandler,
	eanProvider ports.EANProvider,
) *Server {
	return &Server{
		buildLabelsHandler:  buildLabelsHandler,
		buildSummaryHandler: buildSummaryHandler,
		eanProvider:         eanProvider,
	}
}

// RegisterRoutes attaches the API endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/labels", s.BuildLabels)
	e.POST("/api/v1/summary", s.BuildSummary)
}

// BuildLabels handles POST /api/v1/labels - builds shipping labels from the
// raw CSV export in the request body. Package splitting is on by default;
// multipack=false in the query string disables it. A malformed export
// yields 422 with the parse error message.
func (s *Server) BuildLabels(ctx echo.Context) error {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Failed to read request body",
		})
	}

	multipack := ctx.QueryParam("multipack") != "false"
	query := queries.NewBuildLabelsQuery(string(body), multipack)

	orders, err := s.buildLabelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	}

	batchID := uuid.New().String()
	ctx.Logger().Infof("labels batch %s: %d deliveries", batchID, len(orders))

	return ctx.JSON(http.StatusOK, newLabelsResponse(batchID, orders, s.eanProvider))
}

// BuildSummary handles POST /api/v1/summary - computes the cross-order
// packing summary from the raw CSV export in the request body.
func (s *Server) BuildSummary(ctx echo.Context) error {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Failed to read request body",
		})
	}

	query := queries.NewBuildSummaryQuery(string(body))

	entries, err := s.buildSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	}

	batchID := uuid.New().String()

	return ctx.JSON(http.StatusOK, newSummaryResponse(batchID, entries))
}
