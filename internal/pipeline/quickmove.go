// Package pipeline holds the pure stage-movement rules: quick-move
// suggestions, stage urgency, placement probability and pipeline metrics.
package pipeline

import "github.com/twillhq/talentboard/internal/domain"

// nextStages is the advisory adjacency table. Every stage has an entry.
var nextStages = map[domain.Stage][]domain.Stage{
	domain.StageNoStatus:         {domain.StageQualified, domain.StageUnqualified, domain.StageFitAndHold},
	domain.StageQualified:        {domain.StageTwillInterview, domain.StageUnqualified},
	domain.StageUnqualified:      {domain.StageFitAndHold},
	domain.StageFitAndHold:       {domain.StageQualified, domain.StageUnqualified},
	domain.StageTwillInterview:   {domain.StageSubmitted, domain.StageQualified, domain.StageUnqualified},
	domain.StageSubmitted:        {domain.StageIntroRequestMade, domain.StageRejection0},
	domain.StageRejection0:       {domain.StageSubmitted},
	domain.StageIntroRequestMade: {domain.StageInClientProcess, domain.StageRejection0},
	domain.StageInClientProcess:  {domain.StageMiddleStages, domain.StageRejection1},
	domain.StageRejection1:       {domain.StageInClientProcess},
	domain.StageMiddleStages:     {domain.StageFinalStages, domain.StageRejection2},
	domain.StageRejection2:       {domain.StageMiddleStages},
	domain.StageFinalStages:      {domain.StageVerbalOffer, domain.StageRejection2},
	domain.StageVerbalOffer:      {domain.StageSignedOffer, domain.StageFinalStages},
	domain.StageSignedOffer:      {},
}

// urgencyThresholds is the business-day dwell after which a stage is urgent.
var urgencyThresholds = map[domain.Stage]int{
	domain.StageNoStatus:         2,
	domain.StageQualified:        5,
	domain.StageTwillInterview:   3,
	domain.StageSubmitted:        3,
	domain.StageIntroRequestMade: 3,
	domain.StageInClientProcess:  7,
	domain.StageMiddleStages:     7,
	domain.StageFinalStages:      5,
	domain.StageVerbalOffer:      3,
}

// NextStageOptions returns the suggested next stages for the given stage.
// The suggestion does not restrict transitions; any stage may move to any
// other. Unknown stages and signed_offer return an empty slice.
func NextStageOptions(stage domain.Stage) []domain.Stage {
	opts := nextStages[stage]
	out := make([]domain.Stage, len(opts))
	copy(out, opts)
	return out
}

// UrgencyThreshold returns the urgency threshold for a stage, if it has one.
func UrgencyThreshold(stage domain.Stage) (int, bool) {
	n, ok := urgencyThresholds[stage]
	return n, ok
}

// IsStageUrgent reports whether daysInStage meets the stage's threshold.
// Stages without a threshold are never urgent.
func IsStageUrgent(stage domain.Stage, daysInStage int) bool {
	n, ok := urgencyThresholds[stage]
	return ok && daysInStage >= n
}

type WaitLevel string

const (
	WaitNone     WaitLevel = "none"
	WaitWarning  WaitLevel = "warning"
	WaitUrgent   WaitLevel = "urgent"
	WaitCritical WaitLevel = "critical"
)

// WaitingLevel grades how long a candidate has waited in a stage for
// display colouring. no_status and qualified have their own ladders.
func WaitingLevel(stage domain.Stage, daysInStage int) WaitLevel {
	switch stage {
	case domain.StageNoStatus:
		switch {
		case daysInStage >= 3:
			return WaitCritical
		case daysInStage >= 2:
			return WaitUrgent
		}
		return WaitNone
	case domain.StageQualified:
		switch {
		case daysInStage >= 5:
			return WaitCritical
		case daysInStage >= 4:
			return WaitWarning
		}
		return WaitNone
	}
	if IsStageUrgent(stage, daysInStage) {
		return WaitUrgent
	}
	return WaitNone
}
