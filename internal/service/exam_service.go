package service

import (
	"math"
	"strings"
	"unicode"

	"estudiapro_client/internal/model"
	"estudiapro_client/internal/repository"
)

type ExamService struct {
	ExamRepo *repository.ExamRepository
}

func NewExamService(examRepo *repository.ExamRepository) *ExamService {
	return &ExamService{ExamRepo: examRepo}
}

type StartExamRequest struct {
	ExamID string `json:"examId" binding:"required"`
}

type SubmitExamRequest struct {
	ExamID  string            `json:"examId" binding:"required"`
	Answers map[string]string `json:"answers"`
}

func (s *ExamService) All() []model.Exam {
	return s.ExamRepo.All()
}

func (s *ExamService) Start(examID string) (model.Exam, error) {
	return s.ExamRepo.FindByID(examID)
}

// Submit grades by normalized string comparison: whitespace stripped,
// case folded. "12 X^3 - 10x" and "12x^3-10x" are the same answer.
func (s *ExamService) Submit(examID string, answers map[string]string) (model.ExamResult, error) {
	exam, err := s.ExamRepo.FindByID(examID)
	if err != nil {
		return model.ExamResult{}, err
	}

	correct := 0
	for _, q := range exam.Questions {
		if normalizeAnswer(answers[q.ID]) == normalizeAnswer(q.Answer) {
			correct++
		}
	}

	total := len(exam.Questions)
	score := 0
	if total > 0 {
		score = int(math.Round(float64(correct) / float64(total) * 100))
	}

	return model.ExamResult{
		Score:   score,
		Correct: correct,
		Total:   total,
	}, nil
}

func normalizeAnswer(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
