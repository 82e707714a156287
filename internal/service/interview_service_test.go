package service

import (
	"errors"
	"testing"

	"github.com/lshigami/Margays/internal/dto"
	"github.com/lshigami/Margays/internal/model"
)

func TestStartInterviewCreatesActiveSession(t *testing.T) {
	t.Parallel()

	repo := &fakeInterviewRepo{interviews: make(map[uint]model.Interview)}
	svc := NewInterviewService(repo)

	created, err := svc.StartInterview(10, dto.InterviewCreateDTO{Title: "Backend practice"})
	if err != nil {
		t.Fatalf("StartInterview: %v", err)
	}
	if created.Status != model.InterviewInProgress {
		t.Fatalf("expected in_progress, got %q", created.Status)
	}
	if created.UserID != 10 || created.Title != "Backend practice" {
		t.Fatalf("unexpected interview: %+v", created)
	}
	if created.CompletedAt != nil {
		t.Fatalf("a fresh session must not have a completion timestamp")
	}
}

func TestCompleteInterviewTransitions(t *testing.T) {
	t.Parallel()

	repo := &fakeInterviewRepo{interviews: map[uint]model.Interview{
		1: {ID: 1, UserID: 10, Title: "Mine", Status: model.InterviewInProgress},
	}}
	svc := NewInterviewService(repo)

	if _, err := svc.CompleteInterview(99, 1); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for a foreign session, got %v", err)
	}
	if _, err := svc.CompleteInterview(10, 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	completed, err := svc.CompleteInterview(10, 1)
	if err != nil {
		t.Fatalf("CompleteInterview: %v", err)
	}
	if completed.Status != model.InterviewCompleted || completed.CompletedAt == nil {
		t.Fatalf("expected completed with timestamp, got %+v", completed)
	}

	if _, err := svc.CompleteInterview(10, 1); !errors.Is(err, ErrInterviewNotActive) {
		t.Fatalf("expected ErrInterviewNotActive on a second completion, got %v", err)
	}
}

func TestListInterviewsScopedToUser(t *testing.T) {
	t.Parallel()

	repo := &fakeInterviewRepo{interviews: map[uint]model.Interview{
		1: {ID: 1, UserID: 10, Title: "Mine", Status: model.InterviewInProgress},
		2: {ID: 2, UserID: 99, Title: "Not mine", Status: model.InterviewInProgress},
	}}
	svc := NewInterviewService(repo)

	mine, err := svc.ListInterviews(10)
	if err != nil {
		t.Fatalf("ListInterviews: %v", err)
	}
	if len(mine) != 1 || mine[0].UserID != 10 {
		t.Fatalf("expected only the caller's sessions, got %+v", mine)
	}
}
