package domain

import (
	"fmt"
	"strings"
)

// Stage is one named position in the hiring pipeline.
type Stage string

const (
	StageNoStatus         Stage = "no_status"
	StageQualified        Stage = "qualified"
	StageUnqualified      Stage = "unqualified"
	StageFitAndHold       Stage = "fit_and_hold"
	StageTwillInterview   Stage = "twill_interview"
	StageSubmitted        Stage = "submitted"
	StageRejection0       Stage = "rejection_0"
	StageIntroRequestMade Stage = "intro_request_made"
	StageInClientProcess  Stage = "in_client_process"
	StageRejection1       Stage = "rejection_1"
	StageMiddleStages     Stage = "middle_stages"
	StageRejection2       Stage = "rejection_2"
	StageFinalStages      Stage = "final_stages"
	StageVerbalOffer      Stage = "verbal_offer"
	StageSignedOffer      Stage = "signed_offer"
)

// pipelineOrder is the canonical stage order. Index positions are part of the
// contract: the probability estimator breaks ties by it.
var pipelineOrder = [...]Stage{
	StageNoStatus,
	StageQualified,
	StageUnqualified,
	StageFitAndHold,
	StageTwillInterview,
	StageSubmitted,
	StageRejection0,
	StageIntroRequestMade,
	StageInClientProcess,
	StageRejection1,
	StageMiddleStages,
	StageRejection2,
	StageFinalStages,
	StageVerbalOffer,
	StageSignedOffer,
}

var stageLabels = map[Stage]string{
	StageNoStatus:         "No Status",
	StageQualified:        "Qualified",
	StageUnqualified:      "Unqualified",
	StageFitAndHold:       "Fit & Hold",
	StageTwillInterview:   "Twill Interview",
	StageSubmitted:        "Submitted",
	StageRejection0:       "Rejection 0",
	StageIntroRequestMade: "Intro Request Made",
	StageInClientProcess:  "In Client Process",
	StageRejection1:       "Rejection 1",
	StageMiddleStages:     "Middle Stages",
	StageRejection2:       "Rejection 2",
	StageFinalStages:      "Final Stages",
	StageVerbalOffer:      "Verbal Offer",
	StageSignedOffer:      "Signed Offer",
}

// Stages returns the canonical ordered stage list. The slice is a copy.
func Stages() []Stage {
	out := make([]Stage, len(pipelineOrder))
	copy(out, pipelineOrder[:])
	return out
}

// Label returns the display label, or the raw value for unknown stages.
func (s Stage) Label() string {
	if l, ok := stageLabels[s]; ok {
		return l
	}
	return string(s)
}

// Index returns the canonical position of s, or -1 if s is not a known stage.
func (s Stage) Index() int {
	for i, st := range pipelineOrder {
		if st == s {
			return i
		}
	}
	return -1
}

func (s Stage) IsValid() bool {
	_, ok := stageLabels[s]
	return ok
}

// IsRejection reports rejection and disqualification stages.
func (s Stage) IsRejection() bool {
	switch s {
	case StageUnqualified, StageRejection0, StageRejection1, StageRejection2:
		return true
	}
	return false
}

// IsActive reports whether a candidate in s counts as an active candidate.
func (s Stage) IsActive() bool {
	return s.IsValid() && !s.IsRejection()
}

func (s Stage) IsOfferStage() bool {
	return s == StageVerbalOffer || s == StageSignedOffer
}

// IsTerminalSuccess reports the stage that books revenue.
func (s Stage) IsTerminalSuccess() bool {
	return s == StageSignedOffer
}

// IsMiddleStage reports stages counted toward middle-stage revenue.
func (s Stage) IsMiddleStage() bool {
	return s == StageInClientProcess || s == StageMiddleStages
}

// IsFinalStage reports stages counted toward final-stage revenue.
func (s Stage) IsFinalStage() bool {
	return s == StageFinalStages || s.IsOfferStage()
}

// ParseStage accepts a stage key ("in_client_process") or its display label
// ("In Client Process"), case-insensitively.
func ParseStage(input string) (Stage, error) {
	norm := strings.ToLower(strings.TrimSpace(input))
	for _, s := range pipelineOrder {
		if norm == string(s) || norm == strings.ToLower(stageLabels[s]) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStage, input)
}
