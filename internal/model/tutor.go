package model

type Tutor struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	Sessions    int     `json:"sessions"`
	Specialties string  `json:"specialties"`
	Bio         string  `json:"bio"`
	Tariff30    int     `json:"tariff30"`
	Tariff60    int     `json:"tariff60"`
}

// TutoringSession is the confirmation returned by scheduling.
type TutoringSession struct {
	ID        string `json:"id"`
	TutorID   string `json:"tutorId"`
	SubjectID string `json:"subjectId"`
	Duration  int    `json:"duration"`
	Topic     string `json:"topic"`
}
