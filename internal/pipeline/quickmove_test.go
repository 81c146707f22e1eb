package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twillhq/talentboard/internal/domain"
)

func TestNextStageOptions_CoversEveryStage(t *testing.T) {
	for _, s := range domain.Stages() {
		_, ok := nextStages[s]
		assert.True(t, ok, "stage %s has no adjacency entry", s)
		opts := NextStageOptions(s)
		assert.LessOrEqual(t, len(opts), 3, "stage %s", s)
		for _, o := range opts {
			assert.True(t, o.IsValid(), "stage %s suggests unknown %s", s, o)
		}
	}
}

func TestNextStageOptions_Table(t *testing.T) {
	cases := []struct {
		from domain.Stage
		want []domain.Stage
	}{
		{domain.StageNoStatus, []domain.Stage{domain.StageQualified, domain.StageUnqualified, domain.StageFitAndHold}},
		{domain.StageSubmitted, []domain.Stage{domain.StageIntroRequestMade, domain.StageRejection0}},
		{domain.StageRejection1, []domain.Stage{domain.StageInClientProcess}},
		{domain.StageVerbalOffer, []domain.Stage{domain.StageSignedOffer, domain.StageFinalStages}},
		{domain.StageSignedOffer, []domain.Stage{}},
	}
	for _, tc := range cases {
		t.Run(string(tc.from), func(t *testing.T) {
			assert.Equal(t, tc.want, NextStageOptions(tc.from))
		})
	}
}

func TestNextStageOptions_UnknownStageEmpty(t *testing.T) {
	assert.Empty(t, NextStageOptions(domain.Stage("hired")))
}

func TestNextStageOptions_ReturnsCopy(t *testing.T) {
	opts := NextStageOptions(domain.StageQualified)
	require.NotEmpty(t, opts)
	opts[0] = domain.StageSignedOffer
	assert.Equal(t, domain.StageTwillInterview, NextStageOptions(domain.StageQualified)[0])
}

func TestUrgencyThreshold(t *testing.T) {
	n, ok := UrgencyThreshold(domain.StageInClientProcess)
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	_, ok = UrgencyThreshold(domain.StageSignedOffer)
	assert.False(t, ok)
	_, ok = UrgencyThreshold(domain.StageRejection0)
	assert.False(t, ok)
}

func TestIsStageUrgent_Boundaries(t *testing.T) {
	assert.False(t, IsStageUrgent(domain.StageNoStatus, 1))
	assert.True(t, IsStageUrgent(domain.StageNoStatus, 2))
	assert.False(t, IsStageUrgent(domain.StageFinalStages, 4))
	assert.True(t, IsStageUrgent(domain.StageFinalStages, 5))
	assert.False(t, IsStageUrgent(domain.StageSignedOffer, 100))
}

func TestWaitingLevel(t *testing.T) {
	cases := []struct {
		stage domain.Stage
		days  int
		want  WaitLevel
	}{
		{domain.StageNoStatus, 1, WaitNone},
		{domain.StageNoStatus, 2, WaitUrgent},
		{domain.StageNoStatus, 3, WaitCritical},
		{domain.StageQualified, 3, WaitNone},
		{domain.StageQualified, 4, WaitWarning},
		{domain.StageQualified, 5, WaitCritical},
		{domain.StageSubmitted, 2, WaitNone},
		{domain.StageSubmitted, 3, WaitUrgent},
		{domain.StageMiddleStages, 7, WaitUrgent},
		{domain.StageSignedOffer, 30, WaitNone},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, WaitingLevel(tc.stage, tc.days), "%s at %d", tc.stage, tc.days)
	}
}
