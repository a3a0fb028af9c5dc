package assistant

import "laura-assistant/internal/model"

// TurnInput is one request/response cycle of the conversation. History and
// state are owned by the caller and sent with every request; the service
// keeps nothing between turns.
type TurnInput struct {
	History []model.Message
	Message string
	State   model.ConversationState
}

// TurnOutput carries the generated reply plus the full updated state the
// caller must persist and resend on the next turn.
type TurnOutput struct {
	Reply string
	State model.ConversationState
}
