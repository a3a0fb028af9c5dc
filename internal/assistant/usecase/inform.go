package usecase

import (
	"context"
	"fmt"

	"laura-assistant/internal/model"
)

// inform answers a profile question from the knowledge document. The whole
// history goes to the model so follow-up phrasing ("and what about his
// certifications?") stays coherent.
func (uc *implUseCase) inform(ctx context.Context, history []model.Message) (string, error) {
	system := fmt.Sprintf(profileSystemPrompt, uc.doc.Content())
	return uc.complete(ctx, system, history)
}
