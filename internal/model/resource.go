package model

type ResourceType string

const (
	ResourcePDF     ResourceType = "pdf"
	ResourceExam    ResourceType = "exam"
	ResourceFormula ResourceType = "formula"
)

// Resource is a marketplace item. Whether the current user owns it lives in
// a separate purchased-id set, not on the resource itself.
type Resource struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Author      string       `json:"author"`
	SubjectID   string       `json:"subjectId"`
	SubjectName string       `json:"subjectName"`
	Type        ResourceType `json:"type"`
	Price       int          `json:"price"`
	Rating      float64      `json:"rating"`
	Downloads   int          `json:"downloads"`
	Free        bool         `json:"free"`
}

// Formulary is a downloadable formula sheet.
type Formulary struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Subject string `json:"subject"`
	Type    string `json:"type"`
	URL     string `json:"url"`
}
