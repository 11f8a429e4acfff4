package service

import (
	"errors"
	"testing"

	"estudiapro_client/internal/repository"
	"estudiapro_client/internal/util"
)

func newExamService() *ExamService {
	return NewExamService(repository.NewExamRepository(repository.NewStore()))
}

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12x^3-10x", "12x^3-10x"},
		{" 12 X^3 - 10x ", "12x^3-10x"},
		{"12X^3\t-\n10X", "12x^3-10x"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeAnswer(tt.in); got != tt.want {
			t.Errorf("normalizeAnswer(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSubmitGradesWithNormalization(t *testing.T) {
	svc := newExamService()

	result, err := svc.Submit("exam-derivadas", map[string]string{
		"q-1": " 12 X^3 - 10x ",
		"q-2": "2",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// One correct (after normalization), one wrong, one unanswered.
	if result.Correct != 1 || result.Total != 3 {
		t.Errorf("result = %+v, want 1/3 correct", result)
	}
	if result.Score != 33 {
		t.Errorf("score = %d, want 33", result.Score)
	}
}

func TestSubmitPerfectScore(t *testing.T) {
	svc := newExamService()

	result, err := svc.Submit("exam-algebra", map[string]string{
		"alg-q1": "5",
		"alg-q2": "3",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.Score != 100 || result.Correct != 2 {
		t.Errorf("result = %+v, want perfect score", result)
	}
}

func TestSubmitEmptyAnswersScoreZero(t *testing.T) {
	svc := newExamService()

	result, err := svc.Submit("exam-algebra", nil)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.Score != 0 || result.Correct != 0 || result.Total != 2 {
		t.Errorf("result = %+v, want 0/2", result)
	}
}

func TestSubmitUnknownExam(t *testing.T) {
	svc := newExamService()

	if _, err := svc.Submit("exam-nope", nil); !errors.Is(err, util.ErrExamNotFound) {
		t.Fatalf("err = %v, want ErrExamNotFound", err)
	}
}
