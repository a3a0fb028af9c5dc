package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"laura-assistant/internal/calendar"
	"laura-assistant/internal/knowledge"
	"laura-assistant/internal/model"
	"laura-assistant/pkg/llmprovider"
)

// fakeLLM scripts one deterministic answer per prompt kind. Extraction
// fields default to "none" when the script leaves them out, so scenarios
// only spell out what the simulated user actually said.
type fakeLLM struct {
	intent    string
	fields    map[string]string
	questions string
	reply     string
	err       error

	// captured for assertions on what the model was shown
	lastSchedulingSystem string
	calls                int
}

func (f *fakeLLM) field(name string) string {
	if v, ok := f.fields[name]; ok {
		return v
	}
	return "none"
}

func (f *fakeLLM) GenerateContent(_ context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	system := ""
	if req.SystemInstruction != nil {
		system = req.SystemInstruction.Text
	}

	var text string
	switch {
	case system == intentPrompt:
		text = f.intent
	case system == classifyMeetingTypePrompt:
		text = f.field("type")
	case strings.HasPrefix(system, "Your task is to read the meeting date"):
		text = f.field("date")
	case system == classifyTimePrompt:
		text = f.field("time")
	case system == classifyDurationPrompt:
		text = f.field("duration")
	case system == classifyEmailPrompt:
		text = f.field("email")
	case system == classifyPhonePrompt:
		text = f.field("phone")
	case system == extractQuestionsPrompt:
		text = f.questions
	case strings.Contains(system, "Your sole task"):
		text = f.reply
	case strings.Contains(system, "Your goal is to arrange"):
		f.lastSchedulingSystem = system
		text = f.reply
	default:
		return nil, errors.New("unexpected system prompt: " + system)
	}

	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: "assistant", Text: text},
		ProviderName: "fake",
	}, nil
}

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// failingSlots simulates a broken calendar backend.
type failingSlots struct{}

func (failingSlots) AvailableSlots(context.Context, string) ([]string, error) {
	return nil, errors.New("calendar backend down")
}

func newTestUseCase(llm *fakeLLM, slots calendar.SlotProvider) *implUseCase {
	if slots == nil {
		slots = calendar.NewStaticProvider()
	}
	uc := New(mockLogger{}, llm, slots, knowledge.NewDocument(`{"name":"David Kunze"}`))
	return uc.WithClock(func() time.Time {
		return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	})
}

func strPtr(s string) *string { return &s }

func emptyState() model.ConversationState { return model.ConversationState{} }
