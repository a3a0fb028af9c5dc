package usecase

import (
	"context"
	"time"

	"laura-assistant/internal/calendar"
	"laura-assistant/internal/knowledge"
	pkgLog "laura-assistant/pkg/log"
	"laura-assistant/pkg/llmprovider"
)

// ContentGenerator is the text-completion capability the assistant
// consumes. *llmprovider.Manager satisfies it; tests substitute a
// deterministic fake.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l     pkgLog.Logger
	llm   ContentGenerator
	slots calendar.SlotProvider
	doc   knowledge.Document
	now   func() time.Time
}

// New creates a new assistant UseCase instance.
func New(
	l pkgLog.Logger,
	llm ContentGenerator,
	slots calendar.SlotProvider,
	doc knowledge.Document,
) *implUseCase {
	return &implUseCase{
		l:     l,
		llm:   llm,
		slots: slots,
		doc:   doc,
		now:   time.Now,
	}
}

// WithClock overrides the time source. Used by tests to pin the reference
// date.
func (uc *implUseCase) WithClock(now func() time.Time) *implUseCase {
	uc.now = now
	return uc
}
