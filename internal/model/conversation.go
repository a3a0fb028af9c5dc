package model

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single conversation message.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Topic is the per-turn conversation topic decided by the intent router.
type Topic string

const (
	TopicInfo Topic = "info"
	TopicDate Topic = "date"
)

// Meeting types the classifier may produce.
const (
	MeetingTypeInitial               = "initial"
	MeetingTypeBusinessConsultation  = "business_consultation"
	MeetingTypeTechnicalConsultation = "technical_consultation"
	MeetingTypeUrgent                = "urgent"
	MeetingTypeOther                 = "other"
)

// DefaultDurationMinutes is the meeting duration assumed until the user states one.
const DefaultDurationMinutes = 60

// MeetingSlots is the accumulated meeting record. A nil pointer means the
// field is not yet known; this is distinct from an empty string.
type MeetingSlots struct {
	Type            *string `json:"meeting_type"`
	Date            *string `json:"meeting_date"`
	Time            *string `json:"meeting_time"`
	DurationMinutes int     `json:"meeting_duration"`
	Email           *string `json:"meeting_email"`
	Phone           *string `json:"meeting_phone"`
}

// MergeSlots combines previously confirmed slot values with newly extracted
// ones. Existing values always win: a slot fills in once and is never
// overwritten by a later turn.
func MergeSlots(old, extracted MeetingSlots) MeetingSlots {
	merged := MeetingSlots{
		Type:            old.Type,
		Date:            old.Date,
		Time:            old.Time,
		DurationMinutes: old.DurationMinutes,
		Email:           old.Email,
		Phone:           old.Phone,
	}
	if merged.Type == nil {
		merged.Type = extracted.Type
	}
	if merged.Date == nil {
		merged.Date = extracted.Date
	}
	if merged.Time == nil {
		merged.Time = extracted.Time
	}
	if merged.DurationMinutes == 0 {
		merged.DurationMinutes = extracted.DurationMinutes
	}
	if merged.Email == nil {
		merged.Email = extracted.Email
	}
	if merged.Phone == nil {
		merged.Phone = extracted.Phone
	}
	return merged
}

// Step is the scheduling conversation step. Steps are strictly ordered and
// transitions only move forward, because slots are never cleared.
type Step int

const (
	StepAskType  Step = iota // meeting type unknown
	StepAskDate              // type known, date unknown
	StepAskTime              // type+date known, time unknown
	StepAskEmail             // time known, email unknown
	StepAskPhone             // email known, phone unknown
	StepConfirm              // everything known, summarize and thank
)

// String returns the step label used in prompts and logs.
func (s Step) String() string {
	switch s {
	case StepAskType:
		return "ask_type"
	case StepAskDate:
		return "ask_date"
	case StepAskTime:
		return "ask_time"
	case StepAskEmail:
		return "ask_email"
	case StepAskPhone:
		return "ask_phone"
	case StepConfirm:
		return "confirm"
	}
	return "unknown"
}

// StepFor computes the current scheduling step as the first unmet condition
// in the order type, date, time, email, phone. If the type is unknown the
// step is StepAskType regardless of any other field.
func StepFor(slots MeetingSlots) Step {
	switch {
	case slots.Type == nil:
		return StepAskType
	case slots.Date == nil:
		return StepAskDate
	case slots.Time == nil:
		return StepAskTime
	case slots.Email == nil:
		return StepAskEmail
	case slots.Phone == nil:
		return StepAskPhone
	}
	return StepConfirm
}

// DateOnlyFormat is the layout of ReferenceDate and extracted meeting dates.
const DateOnlyFormat = "2006-01-02"

// ConversationState is the full per-conversation state. It is owned by the
// caller: the service receives it with each request, returns the updated
// copy, and stores nothing between turns.
type ConversationState struct {
	ConversationID string       `json:"conversation_id"`
	Topic          *Topic       `json:"topic"`
	Questions      []string     `json:"question"`
	Slots          MeetingSlots `json:"meeting_slots"`
	ReferenceDate  string       `json:"date_now"`
}
