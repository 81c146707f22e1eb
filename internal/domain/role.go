package domain

import (
	"sort"
	"time"
)

// Role is an open hiring requisition.
type Role struct {
	ID               string
	Title            string
	ClientID         string
	AssignedTAID     string
	Priority         RolePriority
	CreatedDate      time.Time
	PostedToPlatform bool
	EstimatedRevenue *float64
}

// Revenue returns the estimated revenue or 0 when unset.
func (r *Role) Revenue() float64 {
	if r.EstimatedRevenue == nil {
		return 0
	}
	return *r.EstimatedRevenue
}

// SortRoles orders roles with high priority first, then newest CreatedDate.
// Ties keep their input order.
func SortRoles(roles []Role) {
	sort.SliceStable(roles, func(i, j int) bool {
		hi, hj := roles[i].Priority == PriorityHigh, roles[j].Priority == PriorityHigh
		if hi != hj {
			return hi
		}
		return roles[i].CreatedDate.After(roles[j].CreatedDate)
	})
}
