package services

import (
	"butler/internal/core/domain/model/mission"
	"butler/internal/core/domain/model/waypoint"
)

// RecoveryPlanner is a domain service that decides where the robot should
// retreat to when a mission leg is cancelled or fails fatally.
//
// Business rules:
//   - Cancelled on the way to the kitchen or a table with orders still
//     pending: return to the kitchen so the remaining orders can resume
//   - Otherwise (returning home, recovering, or nothing left to deliver):
//     go home
//
// Example usage:
//
//	planner := services.NewRecoveryPlanner()
//	dest := planner.PlanRecovery(mission.ToTable, queue.HasPending())
type RecoveryPlanner struct{}

// NewRecoveryPlanner creates a new RecoveryPlanner instance.
func NewRecoveryPlanner() RecoveryPlanner {
	return RecoveryPlanner{}
}

// PlanRecovery returns the waypoint name the robot should retreat to after
// the leg in the given state was interrupted.
//
// Parameters:
//   - interrupted: the mission state the robot was in when interrupted
//   - hasPending: whether undelivered orders remain in the queue
func (p RecoveryPlanner) PlanRecovery(interrupted mission.State, hasPending bool) string {
	onDeliveryLeg := interrupted == mission.ToKitchen || interrupted == mission.ToTable
	if onDeliveryLeg && hasPending {
		return waypoint.KitchenName
	}
	return waypoint.HomeName
}

// ShouldResume reports whether the robot should head back to the kitchen
// after reaching the given recovery waypoint, rather than going idle.
// Resumption only happens at the kitchen with orders still pending.
func (p RecoveryPlanner) ShouldResume(recoveredAt string, hasPending bool) bool {
	return recoveredAt == waypoint.KitchenName && hasPending
}
