package model

// Subject is an immutable catalog entry. UserSubject is the per-user
// association that carries progress and the scheduled exam date.
type Subject struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Professor   string         `json:"professor"`
	School      string         `json:"school"`
	Progress    int            `json:"progress"`
	Level       string         `json:"level,omitempty"`
	Syllabus    []SyllabusItem `json:"temario"`
}

type SyllabusItem struct {
	Title string `json:"title"`
}

type UserSubject struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Professor string         `json:"professor"`
	School    string         `json:"school"`
	Progress  int            `json:"progress"`
	ExamDate  string         `json:"examDate"`
	Syllabus  []SyllabusItem `json:"temario"`
}

func (s Subject) Clone() Subject {
	s.Syllabus = append([]SyllabusItem(nil), s.Syllabus...)
	return s
}

func (s UserSubject) Clone() UserSubject {
	s.Syllabus = append([]SyllabusItem(nil), s.Syllabus...)
	return s
}
