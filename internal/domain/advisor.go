package domain

// TalentAdvisor is a dashboard user. A ta sees only its assigned roles; an
// admin sees every role.
type TalentAdvisor struct {
	ID              string
	Name            string
	Email           string
	Role            UserRole
	AssignedRoleIDs []string
}

func (a *TalentAdvisor) IsAdmin() bool {
	return a.Role == UserRoleAdmin
}

// CanSee reports whether roleID is inside the advisor's visibility scope.
func (a *TalentAdvisor) CanSee(roleID string) bool {
	if a.IsAdmin() {
		return true
	}
	for _, id := range a.AssignedRoleIDs {
		if id == roleID {
			return true
		}
	}
	return false
}

// VisibleRoles filters roles down to the advisor's scope, preserving order.
func (a *TalentAdvisor) VisibleRoles(roles []Role) []Role {
	if a.IsAdmin() {
		return roles
	}
	var out []Role
	for _, r := range roles {
		if a.CanSee(r.ID) {
			out = append(out, r)
		}
	}
	return out
}
