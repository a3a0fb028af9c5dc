package http

import (
	"laura-assistant/internal/assistant"
	"laura-assistant/internal/model"
)

// --- Request DTOs ---

type messageDTO struct {
	Role    string `json:"role"    binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

// chatReq carries the message plus the flattened prior state. All state
// fields are optional; absent and null both read as "not yet known".
type chatReq struct {
	Message string       `json:"message" binding:"required"`
	History []messageDTO `json:"history"`

	ConversationID  string   `json:"conversation_id"`
	Topic           *string  `json:"topic"`
	Questions       []string `json:"question"`
	MeetingType     *string  `json:"meeting_type"`
	MeetingDate     *string  `json:"meeting_date"`
	MeetingTime     *string  `json:"meeting_time"`
	MeetingDuration int      `json:"meeting_duration"`
	MeetingEmail    *string  `json:"meeting_email"`
	MeetingPhone    *string  `json:"meeting_phone"`
	DateNow         string   `json:"date_now"`
}

func (r chatReq) validate() error { return nil }

func (r chatReq) toInput() assistant.TurnInput {
	input := assistant.TurnInput{
		Message: r.Message,
		History: make([]model.Message, len(r.History)),
		State: model.ConversationState{
			ConversationID: r.ConversationID,
			Questions:      r.Questions,
			ReferenceDate:  r.DateNow,
			Slots: model.MeetingSlots{
				Type:            r.MeetingType,
				Date:            r.MeetingDate,
				Time:            r.MeetingTime,
				DurationMinutes: r.MeetingDuration,
				Email:           r.MeetingEmail,
				Phone:           r.MeetingPhone,
			},
		},
	}
	for i, m := range r.History {
		input.History[i] = model.Message{Role: model.Role(m.Role), Content: m.Content}
	}
	if r.Topic != nil {
		topic := model.Topic(*r.Topic)
		input.State.Topic = &topic
	}
	return input
}

// --- Response DTOs ---

// chatResp echoes the complete updated state next to the reply. Unknown
// slots serialize as explicit nulls so the client can resend the object
// verbatim on the next turn.
type chatResp struct {
	Response string `json:"response"`

	ConversationID  string   `json:"conversation_id"`
	Topic           *string  `json:"topic"`
	Questions       []string `json:"question"`
	MeetingType     *string  `json:"meeting_type"`
	MeetingDate     *string  `json:"meeting_date"`
	MeetingTime     *string  `json:"meeting_time"`
	MeetingDuration int      `json:"meeting_duration"`
	MeetingEmail    *string  `json:"meeting_email"`
	MeetingPhone    *string  `json:"meeting_phone"`
	DateNow         string   `json:"date_now"`
}

func (h *handler) newChatResp(out assistant.TurnOutput) chatResp {
	// An unset duration reads as the default on the wire; the zero value is
	// internal bookkeeping only.
	duration := out.State.Slots.DurationMinutes
	if duration == 0 {
		duration = model.DefaultDurationMinutes
	}

	resp := chatResp{
		Response:        out.Reply,
		ConversationID:  out.State.ConversationID,
		Questions:       out.State.Questions,
		MeetingType:     out.State.Slots.Type,
		MeetingDate:     out.State.Slots.Date,
		MeetingTime:     out.State.Slots.Time,
		MeetingDuration: duration,
		MeetingEmail:    out.State.Slots.Email,
		MeetingPhone:    out.State.Slots.Phone,
		DateNow:         out.State.ReferenceDate,
	}
	if out.State.Topic != nil {
		topic := string(*out.State.Topic)
		resp.Topic = &topic
	}
	return resp
}
