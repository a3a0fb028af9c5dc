package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"laura-assistant/internal/assistant"
	"laura-assistant/internal/model"
)

func TestProcessTurnEmptyMessage(t *testing.T) {
	uc := newTestUseCase(&fakeLLM{}, nil)

	_, err := uc.ProcessTurn(context.Background(), assistant.TurnInput{Message: "   "})
	if !errors.Is(err, assistant.ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestProcessTurnInformational(t *testing.T) {
	llm := &fakeLLM{
		intent:    "info",
		questions: "What certifications does David have?",
		reply:     "David holds the AWS Solutions Architect certification.",
	}
	uc := newTestUseCase(llm, nil)

	out, err := uc.ProcessTurn(context.Background(), assistant.TurnInput{
		Message: "Does David have any certifications?",
		State:   emptyState(),
	})
	if err != nil {
		t.Fatalf("ProcessTurn: %v", err)
	}

	if out.Reply != llm.reply {
		t.Errorf("reply = %q, want %q", out.Reply, llm.reply)
	}
	if out.State.Topic == nil || *out.State.Topic != model.TopicInfo {
		t.Errorf("topic = %v, want info", out.State.Topic)
	}
	if len(out.State.Questions) != 1 || out.State.Questions[0] != "What certifications does David have?" {
		t.Errorf("questions = %v", out.State.Questions)
	}
	if out.State.ConversationID == "" {
		t.Error("conversation id was not assigned")
	}
	if out.State.ReferenceDate != "2026-03-14" {
		t.Errorf("reference date = %q, want 2026-03-14", out.State.ReferenceDate)
	}
}

func TestProcessTurnInformationalKeepsPreviousQuestions(t *testing.T) {
	llm := &fakeLLM{
		intent:    "info",
		questions: "none",
		reply:     "Happy to expand on that.",
	}
	uc := newTestUseCase(llm, nil)

	prior := emptyState()
	prior.ConversationID = "c-1"
	prior.Questions = []string{"What does David do?"}

	out, err := uc.ProcessTurn(context.Background(), assistant.TurnInput{
		Message: "Tell me more.",
		State:   prior,
	})
	if err != nil {
		t.Fatalf("ProcessTurn: %v", err)
	}

	if len(out.State.Questions) != 1 || out.State.Questions[0] != "What does David do?" {
		t.Errorf("previous questions were not preserved: %v", out.State.Questions)
	}
	if out.State.ConversationID != "c-1" {
		t.Errorf("conversation id changed: %q", out.State.ConversationID)
	}
}

func TestProcessTurnSchedulingFillsSlotsAcrossTurns(t *testing.T) {
	// Turn one: the user opens scheduling and names the purpose.
	llm := &fakeLLM{
		intent: "date",
		fields: map[string]string{"type": "initial"},
		reply:  "Great, which day would suit you?",
	}
	uc := newTestUseCase(llm, nil)

	out, err := uc.ProcessTurn(context.Background(), assistant.TurnInput{
		Message: "I'd like to arrange an introductory meeting.",
		State:   emptyState(),
	})
	if err != nil {
		t.Fatalf("turn 1: %v", err)
	}
	if out.State.Slots.Type == nil || *out.State.Slots.Type != "initial" {
		t.Fatalf("turn 1 type = %v", out.State.Slots.Type)
	}
	if out.State.Slots.Date != nil {
		t.Fatalf("turn 1 date should be unset, got %v", *out.State.Slots.Date)
	}
	if !strings.Contains(llm.lastSchedulingSystem, "ask_date") {
		t.Errorf("step shown to model should be ask_date:\n%s", llm.lastSchedulingSystem)
	}

	// Turn two: a date arrives; the earlier type must survive even though
	// the extractor would now answer "none" for it.
	llm.fields = map[string]string{"date": "2026-03-20"}
	out2, err := uc.ProcessTurn(context.Background(), assistant.TurnInput{
		Message: "Next Friday please.",
		State:   out.State,
	})
	if err != nil {
		t.Fatalf("turn 2: %v", err)
	}
	if out2.State.Slots.Type == nil || *out2.State.Slots.Type != "initial" {
		t.Errorf("type lost between turns: %v", out2.State.Slots.Type)
	}
	if out2.State.Slots.Date == nil || *out2.State.Slots.Date != "2026-03-20" {
		t.Errorf("date = %v", out2.State.Slots.Date)
	}
	if !strings.Contains(llm.lastSchedulingSystem, "09:00, 11:00, 14:00, 16:00") {
		t.Errorf("free slots missing from prompt:\n%s", llm.lastSchedulingSystem)
	}
	if !strings.Contains(llm.lastSchedulingSystem, "ask_time") {
		t.Errorf("step shown to model should be ask_time:\n%s", llm.lastSchedulingSystem)
	}
}

func TestProcessTurnSchedulingExistingSlotWins(t *testing.T) {
	llm := &fakeLLM{
		intent: "date",
		fields: map[string]string{"time": "14:00"},
		reply:  "Noted, 14:00 it is.",
	}
	uc := newTestUseCase(llm, nil)

	state := emptyState()
	state.Slots = model.MeetingSlots{
		Type: strPtr("urgent"),
		Date: strPtr("2026-03-20"),
	}

	out, err := uc.ProcessTurn(context.Background(), assistant.TurnInput{
		Message: "14:00 works for me.",
		State:   state,
	})
	if err != nil {
		t.Fatalf("ProcessTurn: %v", err)
	}
	if *out.State.Slots.Type != "urgent" || *out.State.Slots.Date != "2026-03-20" {
		t.Errorf("pre-filled slots changed: %+v", out.State.Slots)
	}
	if out.State.Slots.Time == nil || *out.State.Slots.Time != "14:00" {
		t.Errorf("time = %v", out.State.Slots.Time)
	}
}

func TestProcessTurnSchedulingDefaultDurationInPrompt(t *testing.T) {
	llm := &fakeLLM{
		intent: "date",
		reply:  "What is the meeting about?",
	}
	uc := newTestUseCase(llm, nil)

	_, err := uc.ProcessTurn(context.Background(), assistant.TurnInput{
		Message: "Can we meet sometime?",
		State:   emptyState(),
	})
	if err != nil {
		t.Fatalf("ProcessTurn: %v", err)
	}
	if !strings.Contains(llm.lastSchedulingSystem, "Duration: 60 min") {
		t.Errorf("default duration missing from prompt:\n%s", llm.lastSchedulingSystem)
	}
	if !strings.Contains(llm.lastSchedulingSystem, slotsPendingDate) {
		t.Errorf("pending-date slot placeholder missing:\n%s", llm.lastSchedulingSystem)
	}
}

func TestProcessTurnTopicSwitchPreservesSlots(t *testing.T) {
	llm := &fakeLLM{
		intent:    "info",
		questions: "none",
		reply:     "David has ten years of experience.",
	}
	uc := newTestUseCase(llm, nil)

	state := emptyState()
	state.Slots = model.MeetingSlots{Type: strPtr("initial"), Date: strPtr("2026-03-20")}

	out, err := uc.ProcessTurn(context.Background(), assistant.TurnInput{
		Message: "Before we continue, how experienced is David?",
		State:   state,
	})
	if err != nil {
		t.Fatalf("ProcessTurn: %v", err)
	}
	if out.State.Topic == nil || *out.State.Topic != model.TopicInfo {
		t.Errorf("topic = %v", out.State.Topic)
	}
	if out.State.Slots.Type == nil || *out.State.Slots.Type != "initial" {
		t.Errorf("slots lost on topic switch: %+v", out.State.Slots)
	}
	if out.State.Slots.Date == nil || *out.State.Slots.Date != "2026-03-20" {
		t.Errorf("slots lost on topic switch: %+v", out.State.Slots)
	}
}

func TestProcessTurnCompletionFailureIsFatal(t *testing.T) {
	llm := &fakeLLM{err: errors.New("all providers exhausted")}
	uc := newTestUseCase(llm, nil)

	_, err := uc.ProcessTurn(context.Background(), assistant.TurnInput{
		Message: "hello",
		State:   emptyState(),
	})
	if !errors.Is(err, assistant.ErrCompletionFailed) {
		t.Fatalf("expected ErrCompletionFailed, got %v", err)
	}
}

func TestProcessTurnCalendarFailureDegrades(t *testing.T) {
	llm := &fakeLLM{
		intent: "date",
		reply:  "Which time would suit you?",
	}
	uc := newTestUseCase(llm, failingSlots{})

	state := emptyState()
	state.Slots = model.MeetingSlots{Type: strPtr("initial"), Date: strPtr("2026-03-20")}

	out, err := uc.ProcessTurn(context.Background(), assistant.TurnInput{
		Message: "Any time that day.",
		State:   state,
	})
	if err != nil {
		t.Fatalf("calendar failure must not abort the turn: %v", err)
	}
	if out.Reply != llm.reply {
		t.Errorf("reply = %q", out.Reply)
	}
	if !strings.Contains(llm.lastSchedulingSystem, "FREE SLOTS (once the date is known): \n") {
		t.Errorf("expected empty slot list in prompt:\n%s", llm.lastSchedulingSystem)
	}
}
