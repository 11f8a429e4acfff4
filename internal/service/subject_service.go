package service

import (
	"estudiapro_client/internal/model"
	"estudiapro_client/internal/repository"
)

type SubjectService struct {
	SubjectRepo *repository.SubjectRepository
}

func NewSubjectService(subjectRepo *repository.SubjectRepository) *SubjectService {
	return &SubjectService{SubjectRepo: subjectRepo}
}

type AddSubjectRequest struct {
	SubjectID string `json:"subjectId" binding:"required"`
}

type ExamDateRequest struct {
	SubjectID string `json:"subjectId" binding:"required"`
	ExamDate  string `json:"examDate"`
}

func (s *SubjectService) Catalog() []model.Subject {
	return s.SubjectRepo.Catalog()
}

func (s *SubjectService) UserSubjects() []model.UserSubject {
	return s.SubjectRepo.UserSubjects()
}

func (s *SubjectService) AddSubject(subjectID string) error {
	return s.SubjectRepo.AddUserSubject(subjectID)
}

func (s *SubjectService) UpdateExamDate(subjectID, examDate string) {
	s.SubjectRepo.SetExamDate(subjectID, examDate)
}

func (s *SubjectService) CreateSubject(subject model.Subject) {
	s.SubjectRepo.CreateCatalog(subject)
}

func (s *SubjectService) UpdateSubject(subject model.Subject) error {
	return s.SubjectRepo.UpdateCatalog(subject)
}

func (s *SubjectService) DeleteSubject(id string) error {
	return s.SubjectRepo.DeleteCatalog(id)
}
