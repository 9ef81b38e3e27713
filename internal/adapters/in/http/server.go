// Package http exposes the operator API over REST. It coordinates between
// HTTP handlers and application use cases, translating domain errors into
// meaningful status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"butler/internal/core/application/usecases/commands"
	"butler/internal/core/application/usecases/queries"
	"butler/internal/core/domain/model/kernel"
	"butler/internal/core/domain/model/mission"
	"butler/internal/core/domain/services"
	"butler/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const defaultHistoryLimit = 50

// Error is the JSON error payload returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder is the request body for queueing a delivery.
type NewOrder struct {
	TableID string `json:"tableId"`
}

// OrderAccepted is returned when a delivery was queued.
type OrderAccepted struct {
	OrderID string `json:"orderId"`
	TableID string `json:"tableId"`
}

// MissionStatus is the observable mission state for monitors and UIs.
type MissionStatus struct {
	MissionID     string   `json:"missionId"`
	State         string   `json:"state"`
	Goal          string   `json:"goal,omitempty"`
	X             float64  `json:"x"`
	Y             float64  `json:"y"`
	PendingTables []string `json:"pendingTables"`
	CurrentTable  string   `json:"currentTable,omitempty"`
	Accepting     bool     `json:"accepting"`
	LastAlert     string   `json:"lastAlert,omitempty"`
}

// Delivery is one archived delivery record.
type Delivery struct {
	OrderID    string `json:"orderId"`
	TableID    string `json:"tableId"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
	FinishedAt string `json:"finishedAt"`
}

// Server handles the operator API. It coordinates between HTTP handlers and
// application use cases.
type Server struct {
	// Command handlers
	addOrderHandler      commands.AddOrderCommandHandler
	removeOrderHandler   commands.RemoveOrderCommandHandler
	cancelMissionHandler commands.CancelMissionCommandHandler

	// Query handlers
	getMissionStatusHandler   queries.GetMissionStatusQueryHandler
	getDeliveryHistoryHandler queries.GetDeliveryHistoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	addOrderHandler commands.AddOrderCommandHandler,
	removeOrderHandler commands.RemoveOrderCommandHandler,
	cancelMissionHandler commands.CancelMissionCommandHandler,
	getMissionStatusHandler queries.GetMissionStatusQueryHandler,
	getDeliveryHistoryHandler queries.GetDeliveryHistoryQueryHandler,
) *Server {
	return &Server{
		addOrderHandler:           addOrderHandler,
		removeOrderHandler:        removeOrderHandler,
		cancelMissionHandler:      cancelMissionHandler,
		getMissionStatusHandler:   getMissionStatusHandler,
		getDeliveryHistoryHandler: getDeliveryHistoryHandler,
	}
}

// RegisterRoutes attaches all operator API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.AddOrder)
	v1.DELETE("/orders/:tableId", s.RemoveOrder)
	v1.POST("/mission/cancel", s.CancelMission)
	v1.GET("/mission", s.GetMissionStatus)
	v1.GET("/deliveries", s.GetDeliveries)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// AddOrder handles POST /api/v1/orders - queues a delivery for a table.
func (s *Server) AddOrder(ctx echo.Context) error {
	var req NewOrder
	if err := ctx.Bind(&req); err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewAddOrderCommand(orderID, req.TableID)
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if err := s.addOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderAccepted{
		OrderID: orderID.String(),
		TableID: req.TableID,
	})
}

// RemoveOrder handles DELETE /api/v1/orders/:tableId - withdraws the pending
// delivery for a table.
func (s *Server) RemoveOrder(ctx echo.Context) error {
	cmd, err := commands.NewRemoveOrderCommand(ctx.Param("tableId"))
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid table id: "+err.Error())
	}

	if err := s.removeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelMission handles POST /api/v1/mission/cancel - cancels the delivery
// leg currently in flight.
func (s *Server) CancelMission(ctx echo.Context) error {
	cmd := commands.NewCancelMissionCommand()

	if err := s.cancelMissionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// GetMissionStatus handles GET /api/v1/mission - live mission status.
func (s *Server) GetMissionStatus(ctx echo.Context) error {
	query := queries.NewGetMissionStatusQuery()

	status, err := s.getMissionStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, http.StatusInternalServerError, "Failed to retrieve mission status")
	}

	return ctx.JSON(http.StatusOK, MissionStatus{
		MissionID:     status.MissionID,
		State:         status.State,
		Goal:          status.Goal,
		X:             status.X,
		Y:             status.Y,
		PendingTables: status.PendingTables,
		CurrentTable:  status.CurrentTable,
		Accepting:     status.Accepting,
		LastAlert:     status.LastAlert,
	})
}

// GetDeliveries handles GET /api/v1/deliveries - archived delivery history,
// newest first. The optional limit query parameter defaults to 50.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	limit := defaultHistoryLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return s.writeError(ctx, http.StatusBadRequest, "Invalid limit parameter")
		}
		limit = parsed
	}

	query, err := queries.NewGetDeliveryHistoryQuery(limit)
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid limit: "+err.Error())
	}

	history, err := s.getDeliveryHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, http.StatusInternalServerError, "Failed to retrieve delivery history")
	}

	response := make([]Delivery, len(history))
	for i, rec := range history {
		response[i] = Delivery{
			OrderID:    rec.OrderID.String(),
			TableID:    rec.TableID,
			Status:     rec.Status,
			CreatedAt:  rec.CreatedAt.Format(timeFormat),
			FinishedAt: rec.FinishedAt.Format(timeFormat),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

const timeFormat = "2006-01-02T15:04:05.000Z07:00"

// writeDomainError maps domain errors to HTTP status codes.
func (s *Server) writeDomainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrQueueLocked),
		errors.Is(err, services.ErrDuplicateOrder),
		errors.Is(err, services.ErrOrderAlreadyInProgress),
		errors.Is(err, mission.ErrCancelWhileIdle):
		return s.writeError(ctx, http.StatusConflict, err.Error())

	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, errs.ErrObjectNotFound):
		return s.writeError(ctx, http.StatusNotFound, err.Error())

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return s.writeError(ctx, http.StatusBadRequest, err.Error())

	default:
		return s.writeError(ctx, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) writeError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
