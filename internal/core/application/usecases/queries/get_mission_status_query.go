// Package queries contains read-only operations for observing the system.
// Implements the Query side of the CQRS architecture: mission status is read
// from the live mission loop, delivery history from the database.
package queries

import (
	"errors"

	"butler/internal/pkg/guard"
)

var ErrGetMissionStatusQueryIsNotConstructed = errors.New(
	"GetMissionStatusQuery must be created via NewGetMissionStatusQuery constructor",
)

// GetMissionStatusQuery retrieves the robot's live mission status: current
// state, navigation goal, pose and a snapshot of the order queue.
//
// Example:
//
//	query := NewGetMissionStatusQuery()
//	handler := NewGetMissionStatusQueryHandler(control)
//
//	status, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get mission status: %w", err)
//	}
//	fmt.Printf("robot is %s toward %s\n", status.State, status.Goal)
type GetMissionStatusQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMissionStatusQuery creates a query for the live mission status.
// This is a parameterless query.
func NewGetMissionStatusQuery() GetMissionStatusQuery {
	return GetMissionStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMissionStatusQueryIsNotConstructed if validation fails.
func (q GetMissionStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetMissionStatusQueryIsNotConstructed)
}

// GetMissionStatusQueryResponse represents the observable mission state for
// monitors and UIs.
type GetMissionStatusQueryResponse struct {
	MissionID     string
	State         string
	Goal          string
	X             float64
	Y             float64
	PendingTables []string
	CurrentTable  string
	Accepting     bool
	LastAlert     string
}
