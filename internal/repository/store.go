package repository

import (
	"sync"

	"estudiapro_client/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// Store is the in-memory object graph the demo simulator runs against. It is
// constructed explicitly and injected into the repositories, so tests get a
// fresh graph instead of sharing a process-wide singleton. State lives only
// in memory and resets on restart.
type Store struct {
	mu sync.Mutex

	subjectsCatalog      []model.Subject
	userSubjects         []model.UserSubject
	resources            []model.Resource
	purchasedResourceIDs map[string]bool
	exams                []model.Exam
	formularies          []model.Formulary
	tutors               []model.Tutor
	forums               []model.ForumTopic
	achievements         []model.Achievement
	notifications        []model.Notification

	demoUser         model.RawProfile
	demoPasswordHash []byte
}

func NewStore() *Store {
	s := &Store{}
	s.Reset()
	return s
}

// Reset reseeds every collection. Mutations accumulated since the last reset
// (purchases, added subjects, forum topics) are discarded.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subjectsCatalog = seedSubjectsCatalog()
	s.userSubjects = seedUserSubjects()
	s.resources = seedResources()
	s.purchasedResourceIDs = seedPurchasedResourceIDs()
	s.exams = seedExams()
	s.formularies = seedFormularies()
	s.tutors = seedTutors()
	s.forums = seedForums()
	s.achievements = seedAchievements()
	s.notifications = seedNotifications()

	s.demoUser = seedDemoProfile()
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	s.demoPasswordHash = hash
}
