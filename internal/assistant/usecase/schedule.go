package usecase

import (
	"context"
	"fmt"
	"strings"

	"laura-assistant/internal/model"
)

// orValue renders an optional slot for the scheduling prompt.
func orValue(s *string) string {
	if s == nil {
		return unknownValue
	}
	return *s
}

// schedule drives one scheduling turn: extract slot values from the latest
// message, merge them into the state, look up free slots for the chosen
// date and let the model phrase the next step's question.
func (uc *implUseCase) schedule(ctx context.Context, history []model.Message, message string, state model.ConversationState) (string, model.MeetingSlots, error) {
	extracted, err := uc.extractSlots(ctx, state.Slots, message, state.ReferenceDate)
	if err != nil {
		return "", state.Slots, err
	}
	merged := model.MergeSlots(state.Slots, extracted)

	freeSlots := slotsPendingDate
	if merged.Date != nil {
		available, slotsErr := uc.slots.AvailableSlots(ctx, *merged.Date)
		if slotsErr != nil {
			// Availability is advisory, the flow continues without it.
			uc.l.Warnf(ctx, "assistant.schedule.AvailableSlots: %v", slotsErr)
			available = nil
		}
		freeSlots = strings.Join(available, ", ")
	}

	duration := merged.DurationMinutes
	if duration == 0 {
		duration = model.DefaultDurationMinutes
	}

	system := fmt.Sprintf(schedulingSystemPrompt,
		state.ReferenceDate,
		orValue(merged.Type),
		orValue(merged.Date),
		orValue(merged.Time),
		duration,
		orValue(merged.Email),
		orValue(merged.Phone),
		model.StepFor(merged).String(),
		freeSlots,
	)

	reply, err := uc.complete(ctx, system, history)
	if err != nil {
		return "", merged, err
	}
	return reply, merged, nil
}
