package alerts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twillhq/talentboard/internal/calendar"
	"github.com/twillhq/talentboard/internal/domain"
)

// Wednesday.
var testNow = time.Date(2025, 6, 18, 10, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return testNow.AddDate(0, 0, -n)
}

func candidate(stage domain.Stage, lastUpdated time.Time) domain.Candidate {
	submitted := lastUpdated.AddDate(0, 0, -30)
	return domain.Candidate{
		ID:               "c1",
		RoleID:           "r1",
		CurrentStage:     stage,
		SubmittedDate:    submitted,
		StageEnteredDate: lastUpdated,
		LastUpdatedDate:  lastUpdated,
	}
}

func categories(matches []Match) []Category {
	out := make([]Category, len(matches))
	for i, m := range matches {
		out[i] = m.Category
	}
	return out
}

func TestClassify_NewSubmissionWindow(t *testing.T) {
	recent := testNow.Add(-1 * time.Hour)
	c := domain.Candidate{CurrentStage: domain.StageNoStatus, SubmittedDate: recent, StageEnteredDate: recent, LastUpdatedDate: recent}
	matches := Classify(c, testNow)
	require.Len(t, matches, 1)
	assert.Equal(t, CategoryNewSubmission, matches[0].Category)
	assert.Zero(t, matches[0].DaysInStage)

	old := testNow.Add(-25 * time.Hour)
	c = domain.Candidate{CurrentStage: domain.StageNoStatus, SubmittedDate: old, StageEnteredDate: old, LastUpdatedDate: old}
	assert.Empty(t, Classify(c, testNow))
}

func TestClassify_NewSubmissionClearsOnStageChange(t *testing.T) {
	recent := testNow.Add(-2 * time.Hour)
	c := domain.Candidate{CurrentStage: domain.StageNoStatus, SubmittedDate: recent, StageEnteredDate: recent, LastUpdatedDate: recent}
	c.MoveTo(domain.StageQualified, testNow.Add(-time.Hour))
	assert.Empty(t, Classify(c, testNow))
}

func TestClassify_NewSubmissionIgnoresTouch(t *testing.T) {
	recent := testNow.Add(-2 * time.Hour)
	c := domain.Candidate{CurrentStage: domain.StageNoStatus, SubmittedDate: recent, StageEnteredDate: recent, LastUpdatedDate: recent}
	c.Touch(testNow.Add(-time.Hour))
	assert.Equal(t, []Category{CategoryNewSubmission}, categories(Classify(c, testNow)))
}

func TestClassify_StalledThresholds(t *testing.T) {
	cases := []struct {
		name    string
		stage   domain.Stage
		updated time.Time
		want    []Category
	}{
		{"qualified 2bd", domain.StageQualified, daysAgo(2), nil},
		{"qualified 3bd", domain.StageQualified, daysAgo(5), []Category{CategoryQualifiedStalled}},
		{"twill 2bd", domain.StageTwillInterview, daysAgo(2), nil},
		{"twill 3bd", domain.StageTwillInterview, daysAgo(5), []Category{CategoryTwillScreenStalled}},
		{"client 4bd", domain.StageInClientProcess, daysAgo(6), nil},
		{"client 5bd", domain.StageInClientProcess, daysAgo(7), []Category{CategoryClientProcessStalled}},
		{"final 2bd", domain.StageFinalStages, daysAgo(2), nil},
		{"final 3bd", domain.StageFinalStages, daysAgo(5), []Category{CategoryFinalStagesStalled}},
		{"middle never", domain.StageMiddleStages, daysAgo(30), nil},
		{"unknown stage", domain.Stage("hired"), daysAgo(30), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := categories(Classify(candidate(tc.stage, tc.updated), testNow))
			if tc.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassify_DwellIsBusinessDaysSinceUpdate(t *testing.T) {
	c := candidate(domain.StageQualified, daysAgo(7))
	c.StageEnteredDate = daysAgo(20)
	matches := Classify(c, testNow)
	require.Len(t, matches, 1)
	assert.Equal(t, calendar.BusinessDaysSince(daysAgo(7), testNow), matches[0].DaysInStage)
}

func TestClassify_RearmBoundary(t *testing.T) {
	c := candidate(domain.StageInClientProcess, daysAgo(30))

	c.ClearAlert(calendar.AddBusinessDays(testNow, -4))
	assert.Empty(t, Classify(c, testNow), "4 business days after clear")

	c.ClearAlert(calendar.AddBusinessDays(testNow, -5))
	assert.Equal(t, []Category{CategoryClientProcessStalled}, categories(Classify(c, testNow)), "5 business days after clear")
}

func TestClassify_FinalStagesRearmBoundary(t *testing.T) {
	c := candidate(domain.StageFinalStages, daysAgo(30))
	c.ClearAlert(calendar.AddBusinessDays(testNow, -2))
	assert.Empty(t, Classify(c, testNow))
	c.ClearAlert(calendar.AddBusinessDays(testNow, -3))
	assert.Len(t, Classify(c, testNow), 1)
}

func TestClassify_ClearedWithoutDateCountsAsNeverCleared(t *testing.T) {
	c := candidate(domain.StageInClientProcess, daysAgo(7))
	c.AlertCleared = true
	c.AlertClearedDate = nil
	assert.Equal(t, []Category{CategoryClientProcessStalled}, categories(Classify(c, testNow)))
}

func TestClassify_ClearOnAutoCategoryHasNoEffect(t *testing.T) {
	c := candidate(domain.StageQualified, daysAgo(7))
	c.ClearAlert(testNow)
	assert.Equal(t, []Category{CategoryQualifiedStalled}, categories(Classify(c, testNow)))
}

func TestClassify_NewAndStalledAtOnce(t *testing.T) {
	recent := testNow.Add(-time.Hour)
	c := domain.Candidate{
		CurrentStage:     domain.StageQualified,
		SubmittedDate:    recent,
		StageEnteredDate: recent,
		LastUpdatedDate:  daysAgo(7),
	}
	assert.Equal(t, []Category{CategoryNewSubmission, CategoryQualifiedStalled}, categories(Classify(c, testNow)))
}

func TestCategoryMetadata(t *testing.T) {
	assert.Equal(t, TierCritical, CategoryClientProcessStalled.Tier())
	for _, c := range Categories() {
		if c != CategoryClientProcessStalled {
			assert.Equal(t, TierUrgent, c.Tier(), "category %s", c)
		}
		assert.NotEqual(t, string(c), c.Label())
	}
	assert.True(t, CategoryClientProcessStalled.Manual())
	assert.True(t, CategoryFinalStagesStalled.Manual())
	assert.False(t, CategoryQualifiedStalled.Manual())
	assert.False(t, CategoryNewSubmission.Manual())
}
