package services_test

import (
	"testing"

	"butler/internal/core/domain/model/mission"
	"butler/internal/core/domain/model/waypoint"
	"butler/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestRecoveryPlanner_PlanRecovery(t *testing.T) {
	planner := services.NewRecoveryPlanner()

	tests := []struct {
		name        string
		interrupted mission.State
		hasPending  bool
		want        string
	}{
		{"to kitchen with pending orders retreats to kitchen", mission.ToKitchen, true, waypoint.KitchenName},
		{"to table with pending orders retreats to kitchen", mission.ToTable, true, waypoint.KitchenName},
		{"to table with nothing pending goes home", mission.ToTable, false, waypoint.HomeName},
		{"to kitchen with nothing pending goes home", mission.ToKitchen, false, waypoint.HomeName},
		{"returning home keeps heading home", mission.ToHome, true, waypoint.HomeName},
		{"interrupted recovery goes home", mission.CancelRecovery, true, waypoint.HomeName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, planner.PlanRecovery(tt.interrupted, tt.hasPending))
		})
	}
}

func TestRecoveryPlanner_ShouldResume(t *testing.T) {
	planner := services.NewRecoveryPlanner()

	assert.True(t, planner.ShouldResume(waypoint.KitchenName, true))
	assert.False(t, planner.ShouldResume(waypoint.KitchenName, false))
	assert.False(t, planner.ShouldResume(waypoint.HomeName, true))
}
