package service

import (
	"estudiapro_client/internal/config"
	"estudiapro_client/internal/repository"
)

// Services bundles every domain service over one seed store. The in-process
// demo bridge and the HTTP server both consume the same bundle, which is
// what keeps the two backends behaviorally identical.
type Services struct {
	Auth          *AuthService
	Users         *UserService
	Subjects      *SubjectService
	Resources     *ResourceService
	Exams         *ExamService
	Tutors        *TutorService
	Forums        *ForumService
	Achievements  *AchievementService
	Notifications *NotificationService
	Storage       *StorageService
}

func NewServices(cfg *config.Config, store *repository.Store) *Services {
	userRepo := repository.NewUserRepository(store)
	subjectRepo := repository.NewSubjectRepository(store)
	resourceRepo := repository.NewResourceRepository(store)
	examRepo := repository.NewExamRepository(store)
	tutorRepo := repository.NewTutorRepository(store)
	forumRepo := repository.NewForumRepository(store)
	achievementRepo := repository.NewAchievementRepository(store)
	notificationRepo := repository.NewNotificationRepository(store)

	storage := NewStorageService(cfg)

	return &Services{
		Auth:          NewAuthService(userRepo, cfg),
		Users:         NewUserService(userRepo),
		Subjects:      NewSubjectService(subjectRepo),
		Resources:     NewResourceService(resourceRepo, storage),
		Exams:         NewExamService(examRepo),
		Tutors:        NewTutorService(tutorRepo),
		Forums:        NewForumService(forumRepo, subjectRepo),
		Achievements:  NewAchievementService(achievementRepo),
		Notifications: NewNotificationService(notificationRepo),
		Storage:       storage,
	}
}
