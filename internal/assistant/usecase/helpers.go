package usecase

import (
	"context"
	"fmt"
	"strings"

	"laura-assistant/internal/assistant"
	"laura-assistant/internal/model"
	"laura-assistant/pkg/llmprovider"
)

// complete sends one text-completion request and returns the trimmed reply.
// Any failure, including an empty reply, surfaces as ErrCompletionFailed —
// fatal for the turn.
func (uc *implUseCase) complete(ctx context.Context, system string, messages []model.Message) (string, error) {
	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: "system", Text: system},
		Messages:          make([]llmprovider.Message, len(messages)),
	}
	for i, msg := range messages {
		req.Messages[i] = llmprovider.Message{Role: string(msg.Role), Text: msg.Content}
	}

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", assistant.ErrCompletionFailed, err)
	}

	text := strings.TrimSpace(resp.Content.Text)
	if text == "" {
		return "", fmt.Errorf("%w: empty model output", assistant.ErrCompletionFailed)
	}

	return text, nil
}

// completeOne is complete() with a single user message, the shape every
// classification and extraction call uses.
func (uc *implUseCase) completeOne(ctx context.Context, system, message string) (string, error) {
	return uc.complete(ctx, system, []model.Message{
		{Role: model.RoleUser, Content: message},
	})
}
