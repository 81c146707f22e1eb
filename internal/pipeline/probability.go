package pipeline

import "github.com/twillhq/talentboard/internal/domain"

var stageProbability = map[domain.Stage]int{
	domain.StageNoStatus:         5,
	domain.StageQualified:        15,
	domain.StageUnqualified:      0,
	domain.StageFitAndHold:       10,
	domain.StageTwillInterview:   20,
	domain.StageSubmitted:        25,
	domain.StageRejection0:       0,
	domain.StageIntroRequestMade: 30,
	domain.StageInClientProcess:  40,
	domain.StageRejection1:       0,
	domain.StageMiddleStages:     50,
	domain.StageRejection2:       0,
	domain.StageFinalStages:      70,
	domain.StageVerbalOffer:      85,
	domain.StageSignedOffer:      100,
}

// StageProbability returns the placement probability percentage for a single
// stage. Unknown stages return 0.
func StageProbability(stage domain.Stage) int {
	return stageProbability[stage]
}

// PluralityStage returns the stage holding the most candidates. Ties resolve
// to the stage earliest in canonical order. ok is false when no candidate has
// a known stage.
func PluralityStage(candidates []domain.Candidate) (domain.Stage, bool) {
	counts := StageCounts(candidates)
	var best domain.Stage
	bestCount := 0
	for _, s := range domain.Stages() {
		if counts[s] > bestCount {
			best, bestCount = s, counts[s]
		}
	}
	return best, bestCount > 0
}

// EstimateProbability returns a role's placement probability (0..100) from
// the stage holding the plurality of its candidates.
func EstimateProbability(candidates []domain.Candidate) int {
	stage, ok := PluralityStage(candidates)
	if !ok {
		return 0
	}
	return stageProbability[stage]
}
