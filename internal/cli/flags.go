package cli

import (
	"github.com/spf13/pflag"

	"github.com/twillhq/talentboard/internal/domain"
)

// stageValue is a pflag.Value accepting a stage key or its display label.
type stageValue struct {
	stage *domain.Stage
}

var _ pflag.Value = stageValue{}

func newStageValue(p *domain.Stage) stageValue {
	return stageValue{stage: p}
}

func (v stageValue) String() string {
	if v.stage == nil {
		return ""
	}
	return string(*v.stage)
}

func (v stageValue) Set(s string) error {
	st, err := domain.ParseStage(s)
	if err != nil {
		return err
	}
	*v.stage = st
	return nil
}

func (v stageValue) Type() string { return "stage" }

// priorityValue is a pflag.Value for high|low|deprioritized.
type priorityValue struct {
	priority *domain.RolePriority
}

var _ pflag.Value = priorityValue{}

func (v priorityValue) String() string {
	if v.priority == nil {
		return ""
	}
	return string(*v.priority)
}

func (v priorityValue) Set(s string) error {
	p, err := domain.ParsePriority(s)
	if err != nil {
		return err
	}
	*v.priority = p
	return nil
}

func (v priorityValue) Type() string { return "priority" }
