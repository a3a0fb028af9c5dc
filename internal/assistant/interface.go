package assistant

import "context"

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	// ProcessTurn handles one user message: it classifies the intent,
	// dispatches to the informational or scheduling flow, and returns the
	// reply together with the updated conversation state.
	ProcessTurn(ctx context.Context, input TurnInput) (TurnOutput, error)
}
