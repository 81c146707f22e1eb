package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortRoles_HighPriorityFirstThenNewest(t *testing.T) {
	roles := []Role{
		{ID: "low-old", Priority: PriorityLow, CreatedDate: testNow.AddDate(0, -2, 0)},
		{ID: "high-old", Priority: PriorityHigh, CreatedDate: testNow.AddDate(0, -3, 0)},
		{ID: "depr-new", Priority: PriorityDeprioritized, CreatedDate: testNow},
		{ID: "high-new", Priority: PriorityHigh, CreatedDate: testNow.AddDate(0, 0, -1)},
	}
	SortRoles(roles)

	ids := make([]string, len(roles))
	for i, r := range roles {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"high-new", "high-old", "depr-new", "low-old"}, ids)
}

func TestRoleRevenue(t *testing.T) {
	assert.Equal(t, 0.0, (&Role{}).Revenue())
	v := 25000.0
	assert.Equal(t, 25000.0, (&Role{EstimatedRevenue: &v}).Revenue())
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("HIGH")
	require.NoError(t, err)
	assert.Equal(t, PriorityHigh, p)

	_, err = ParsePriority("urgent")
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestAdvisorVisibility(t *testing.T) {
	roles := []Role{{ID: "r1"}, {ID: "r2"}, {ID: "r3"}}

	ta := &TalentAdvisor{Role: UserRoleTA, AssignedRoleIDs: []string{"r3", "r1"}}
	visible := ta.VisibleRoles(roles)
	require.Len(t, visible, 2)
	assert.Equal(t, "r1", visible[0].ID, "input order is preserved")
	assert.Equal(t, "r3", visible[1].ID)
	assert.False(t, ta.CanSee("r2"))

	admin := &TalentAdvisor{Role: UserRoleAdmin}
	assert.Len(t, admin.VisibleRoles(roles), 3)
	assert.True(t, admin.CanSee("anything"))
}

func TestClientDisplayName(t *testing.T) {
	assert.Equal(t, "Acme", (&Client{Name: "Jane", Company: "Acme"}).DisplayName())
	assert.Equal(t, "Jane", (&Client{Name: "Jane"}).DisplayName())
}
