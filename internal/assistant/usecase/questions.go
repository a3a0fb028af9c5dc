package usecase

import (
	"context"
	"strings"
)

// extractQuestions pulls the profile questions out of the latest message,
// one per line. A "none" reply or an effectively empty reply yields nil,
// which the caller treats as "keep the previous turn's questions".
func (uc *implUseCase) extractQuestions(ctx context.Context, message string) ([]string, error) {
	reply, err := uc.completeOne(ctx, extractQuestionsPrompt, message)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(reply, noneToken) {
		return nil, nil
	}

	var questions []string
	for _, line := range strings.Split(reply, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			questions = append(questions, trimmed)
		}
	}
	return questions, nil
}
