package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"laura-assistant/internal/assistant"
	"laura-assistant/internal/model"
)

// ProcessTurn runs one full conversation turn: classify the intent of the
// incoming message, dispatch to the matching responder and return the
// reply together with the complete updated state. State the active branch
// does not touch (slots on info turns, questions on scheduling turns) is
// carried through unchanged.
func (uc *implUseCase) ProcessTurn(ctx context.Context, input assistant.TurnInput) (assistant.TurnOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return assistant.TurnOutput{}, assistant.ErrEmptyMessage
	}

	state := input.State
	if state.ConversationID == "" {
		state.ConversationID = uuid.NewString()
	}
	if state.ReferenceDate == "" {
		state.ReferenceDate = uc.now().Format(model.DateOnlyFormat)
	}

	history := append(append([]model.Message{}, input.History...), model.Message{
		Role:    model.RoleUser,
		Content: message,
	})

	topic, err := uc.classifyIntent(ctx, message)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.ProcessTurn.classifyIntent: %v", err)
		return assistant.TurnOutput{}, err
	}
	state.Topic = &topic

	var reply string
	switch topic {
	case model.TopicDate:
		reply, state.Slots, err = uc.schedule(ctx, history, message, state)
		if err != nil {
			uc.l.Errorf(ctx, "assistant.ProcessTurn.schedule: %v", err)
			return assistant.TurnOutput{}, err
		}

	default:
		questions, qErr := uc.extractQuestions(ctx, message)
		if qErr != nil {
			uc.l.Errorf(ctx, "assistant.ProcessTurn.extractQuestions: %v", qErr)
			return assistant.TurnOutput{}, qErr
		}
		if questions != nil {
			state.Questions = questions
		}

		reply, err = uc.inform(ctx, history)
		if err != nil {
			uc.l.Errorf(ctx, "assistant.ProcessTurn.inform: %v", err)
			return assistant.TurnOutput{}, err
		}
	}

	return assistant.TurnOutput{Reply: reply, State: state}, nil
}
