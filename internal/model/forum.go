package model

type ForumTopic struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	SubjectName  string `json:"subjectName"`
	PostCount    int    `json:"postCount"`
	LastActivity string `json:"lastActivity"`
}

type ForumPost struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

type ForumTopicDetail struct {
	ID    string      `json:"id"`
	Title string      `json:"title"`
	Posts []ForumPost `json:"posts"`
}

func (d ForumTopicDetail) Clone() ForumTopicDetail {
	d.Posts = append([]ForumPost(nil), d.Posts...)
	return d
}
