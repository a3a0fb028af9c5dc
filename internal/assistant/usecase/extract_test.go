package usecase

import (
	"context"
	"testing"

	"laura-assistant/internal/model"
)

func TestExtractSlotsNoneStaysUnset(t *testing.T) {
	llm := &fakeLLM{fields: map[string]string{
		"type": "NONE", // case-insensitive
		"date": "none",
	}}
	uc := newTestUseCase(llm, nil)

	got, err := uc.extractSlots(context.Background(), model.MeetingSlots{}, "hello", "2026-03-14")
	if err != nil {
		t.Fatalf("extractSlots: %v", err)
	}
	if got.Type != nil || got.Date != nil || got.Time != nil || got.Email != nil || got.Phone != nil {
		t.Errorf("expected all fields unset, got %+v", got)
	}
	if got.DurationMinutes != 0 {
		t.Errorf("duration = %d, want 0", got.DurationMinutes)
	}
}

func TestExtractSlotsSkipsFilledFields(t *testing.T) {
	llm := &fakeLLM{fields: map[string]string{"email": "user@example.com"}}
	uc := newTestUseCase(llm, nil)

	current := model.MeetingSlots{
		Type: strPtr("initial"),
		Date: strPtr("2026-03-20"),
		Time: strPtr("14:00"),
	}
	got, err := uc.extractSlots(context.Background(), current, "user@example.com", "2026-03-14")
	if err != nil {
		t.Fatalf("extractSlots: %v", err)
	}

	// Three filled fields skipped, three extractor calls made.
	if llm.calls != 3 {
		t.Errorf("extractor calls = %d, want 3", llm.calls)
	}
	if got.Email == nil || *got.Email != "user@example.com" {
		t.Errorf("email = %v", got.Email)
	}
	if got.Type != nil {
		t.Errorf("filled fields must not be re-extracted: %v", *got.Type)
	}
}

func TestExtractSlotsDurationCoercion(t *testing.T) {
	cases := []struct {
		name  string
		reply string
		want  int
	}{
		{"plain number", "45", 45},
		{"padded number", "  30 ", 30},
		{"non numeric", "about an hour", 0},
		{"none", "none", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			llm := &fakeLLM{fields: map[string]string{"duration": tc.reply}}
			uc := newTestUseCase(llm, nil)

			got, err := uc.extractSlots(context.Background(), model.MeetingSlots{}, "msg", "2026-03-14")
			if err != nil {
				t.Fatalf("extractSlots: %v", err)
			}
			if got.DurationMinutes != tc.want {
				t.Errorf("duration = %d, want %d", got.DurationMinutes, tc.want)
			}
		})
	}
}

func TestExtractQuestionsSplitsLines(t *testing.T) {
	llm := &fakeLLM{questions: "What does David do?\n\n  What are his skills?  \n"}
	uc := newTestUseCase(llm, nil)

	got, err := uc.extractQuestions(context.Background(), "what does he do and what can he do?")
	if err != nil {
		t.Fatalf("extractQuestions: %v", err)
	}
	want := []string{"What does David do?", "What are his skills?"}
	if len(got) != len(want) {
		t.Fatalf("questions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("question[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtractQuestionsNoneIsNil(t *testing.T) {
	llm := &fakeLLM{questions: "None"}
	uc := newTestUseCase(llm, nil)

	got, err := uc.extractQuestions(context.Background(), "thanks!")
	if err != nil {
		t.Fatalf("extractQuestions: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
