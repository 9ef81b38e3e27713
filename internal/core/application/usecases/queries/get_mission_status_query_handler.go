package queries

import (
	"context"

	"butler/internal/core/application/missionctl"
)

// StatusProvider exposes the live mission snapshot.
// Implemented by the mission control loop.
type StatusProvider interface {
	Status() missionctl.Snapshot
}

// GetMissionStatusQueryHandler reads the live mission status from the
// mission loop. No database access is involved.
type GetMissionStatusQueryHandler struct {
	provider StatusProvider
}

// NewGetMissionStatusQueryHandler creates a handler for mission status queries.
func NewGetMissionStatusQueryHandler(provider StatusProvider) GetMissionStatusQueryHandler {
	return GetMissionStatusQueryHandler{provider: provider}
}

// Handle executes the query and maps the mission snapshot to the response.
func (h GetMissionStatusQueryHandler) Handle(
	_ context.Context,
	query GetMissionStatusQuery,
) (GetMissionStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMissionStatusQueryResponse{}, err
	}

	s := h.provider.Status()
	return GetMissionStatusQueryResponse{
		MissionID:     s.MissionID,
		State:         s.State.String(),
		Goal:          s.Goal,
		X:             s.X,
		Y:             s.Y,
		PendingTables: s.Queue.PendingTables,
		CurrentTable:  s.Queue.CurrentTable,
		Accepting:     s.Queue.Accepting,
		LastAlert:     s.LastAlert,
	}, nil
}
