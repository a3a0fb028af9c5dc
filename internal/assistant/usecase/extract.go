package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"laura-assistant/internal/model"
)

// noneToken is the literal the extraction prompts use for "field not
// present". Compared case-insensitively.
const noneToken = "none"

// extractField asks one narrowly-scoped classification question about a
// single message. A "none" reply means the field stays unset (nil).
func (uc *implUseCase) extractField(ctx context.Context, instruction, message string) (*string, error) {
	reply, err := uc.completeOne(ctx, instruction, message)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(reply, noneToken) {
		return nil, nil
	}
	return &reply, nil
}

// extractSlots runs the field extractor for every still-unset slot against
// the latest message only, in the fixed order type, date, time, duration,
// email, phone. It returns only the newly extracted values; merging with
// the existing slots is the caller's job.
//
// Repeating the extraction on the same input and the same partially-filled
// state never regresses a filled field, because filled fields are skipped.
func (uc *implUseCase) extractSlots(ctx context.Context, current model.MeetingSlots, message, referenceDate string) (model.MeetingSlots, error) {
	var extracted model.MeetingSlots

	if current.Type == nil {
		value, err := uc.extractField(ctx, classifyMeetingTypePrompt, message)
		if err != nil {
			return model.MeetingSlots{}, err
		}
		extracted.Type = value
	}

	if current.Date == nil {
		value, err := uc.extractField(ctx, fmt.Sprintf(classifyDatePrompt, referenceDate), message)
		if err != nil {
			return model.MeetingSlots{}, err
		}
		extracted.Date = value
	}

	if current.Time == nil {
		value, err := uc.extractField(ctx, classifyTimePrompt, message)
		if err != nil {
			return model.MeetingSlots{}, err
		}
		extracted.Time = value
	}

	if current.DurationMinutes == 0 {
		value, err := uc.extractField(ctx, classifyDurationPrompt, message)
		if err != nil {
			return model.MeetingSlots{}, err
		}
		if value != nil {
			// Non-numeric output is discarded, the slot stays unset.
			if minutes, convErr := strconv.Atoi(strings.TrimSpace(*value)); convErr == nil {
				extracted.DurationMinutes = minutes
			}
		}
	}

	if current.Email == nil {
		value, err := uc.extractField(ctx, classifyEmailPrompt, message)
		if err != nil {
			return model.MeetingSlots{}, err
		}
		extracted.Email = value
	}

	if current.Phone == nil {
		value, err := uc.extractField(ctx, classifyPhonePrompt, message)
		if err != nil {
			return model.MeetingSlots{}, err
		}
		extracted.Phone = value
	}

	return extracted, nil
}
