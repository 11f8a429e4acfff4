package model

type Exam struct {
	ID          string     `json:"id"`
	SubjectID   string     `json:"subjectId"`
	SubjectName string     `json:"subjectName"`
	Title       string     `json:"title"`
	// Duration is in seconds, as the simulator page expects.
	Duration  int        `json:"duration"`
	Questions []Question `json:"questions"`
}

type Question struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	Answer       string `json:"answer"`
	Explanation  string `json:"explanation"`
	WolframQuery string `json:"wolframQuery,omitempty"`
}

// ExamResult keeps the legacy wire keys the simulator page renders.
type ExamResult struct {
	Score   int `json:"calificacion"`
	Correct int `json:"correctas"`
	Total   int `json:"total"`
}

func (e Exam) Clone() Exam {
	e.Questions = append([]Question(nil), e.Questions...)
	return e
}
