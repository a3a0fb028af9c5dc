package usecase

import (
	"context"
	"strings"

	"laura-assistant/internal/model"
)

// classifyIntent decides whether the latest message asks for information or
// for scheduling. It runs exactly once per turn, before any other branching.
//
// The substring match is deliberate: the model is asked for a single token
// but its output is not strictly constrained, so "date" anywhere in the
// reply routes to scheduling.
func (uc *implUseCase) classifyIntent(ctx context.Context, message string) (model.Topic, error) {
	reply, err := uc.completeOne(ctx, intentPrompt, message)
	if err != nil {
		return "", err
	}

	if strings.Contains(strings.ToLower(reply), "date") {
		return model.TopicDate, nil
	}
	return model.TopicInfo, nil
}
