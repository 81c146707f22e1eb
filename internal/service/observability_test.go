package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twillhq/talentboard/internal/domain"
	"github.com/twillhq/talentboard/internal/testutil"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func TestObserver_ReceivesStageTransition(t *testing.T) {
	rec := &recordingObserver{}
	h := newHarness(t, rec)
	ctx := context.Background()
	_, role := h.seedBasicRole(t)
	c := h.seedCandidate(t, testutil.NewTestCandidate(role.ID, "Ann", testutil.WithStage(domain.StageQualified)))

	_, err := h.candidateSvc.StageTransition(ctx, c.ID, domain.StageTwillInterview, testutil.FixedNow)
	require.NoError(t, err)
	_, err = h.candidateSvc.StageTransition(ctx, "missing", domain.StageTwillInterview, testutil.FixedNow)
	require.Error(t, err)

	require.Len(t, rec.events, 2)
	assert.Equal(t, "stage-transition", rec.events[0].Name)
	assert.True(t, rec.events[0].Success)
	assert.Equal(t, "qualified", rec.events[0].Fields["from_stage"])
	assert.False(t, rec.events[1].Success)
	assert.ErrorIs(t, rec.events[1].Err, domain.ErrNotFound)
}

func TestLogUseCaseObserver_WritesEvent(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)
	h := newHarness(t, obs)
	_, role := h.seedBasicRole(t)

	_, err := h.roleSvc.UpdatePriority(context.Background(), role.ID, domain.PriorityHigh)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "service_use_case")
	assert.Contains(t, out, "use_case=update-priority")
	assert.Contains(t, out, "success=true")
}

func TestLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
