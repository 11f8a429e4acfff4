package client

import "strings"

// Endpoint is a logical route key. Both backends consume the same keys: the
// live dispatcher appends them to the base URL, the demo router matches them
// against its dispatch table. Keeping them as typed constants makes an
// unknown route unrepresentable at call sites.
type Endpoint string

// Auth
const (
	AuthLogin    Endpoint = "/auth/login/"
	AuthRegister Endpoint = "/auth/register/"
	AuthVerify   Endpoint = "/auth/verify/"
	AuthLogout   Endpoint = "/auth/logout/"
)

// Users
const (
	UsersProfile       Endpoint = "/auth/profile/"
	UsersUpdateProfile Endpoint = "/users/profile/"
)

// Subjects
const (
	SubjectsAll            Endpoint = "/cursos/"
	SubjectsMine           Endpoint = "/mis-cursos/"
	SubjectsEnroll         Endpoint = "/mis-cursos/inscribir/"
	SubjectsUpdateExamDate Endpoint = "/mis-cursos/fecha-examen/"
)

// Resources
const (
	ResourcesAll       Endpoint = "/recursos/"
	ResourcesPurchased Endpoint = "/recursos/mis-compras/"
	ResourcesPurchase  Endpoint = "/recursos/comprar/"
	ResourcesDownload  Endpoint = "/recursos/descargar/"
)

// Exams
const (
	ExamsAll    Endpoint = "/examenes/"
	ExamsStart  Endpoint = "/examenes/iniciar/"
	ExamsSubmit Endpoint = "/examenes/enviar/"
)

// Tutors
const (
	TutorsAll      Endpoint = "/tutores/"
	TutorsSchedule Endpoint = "/tutores/agendar/"
)

// Forums. Topic detail routes are built with JoinPath(ForumsAll, id).
const (
	ForumsAll         Endpoint = "/foro/"
	ForumsCreateTopic Endpoint = "/foro/"
)

// Achievements
const (
	AchievementsMine Endpoint = "/mis-logros/"
	AchievementsAll  Endpoint = "/logros/"
)

// Notifications
const (
	NotificationsMine     Endpoint = "/notificaciones/"
	NotificationsMarkRead Endpoint = "/notificaciones/leer/"
)

// Formularies
const (
	FormulariesAll Endpoint = "/formularios-estudio/"
)

// Admin
const (
	AdminUsers     Endpoint = "/admin/users/"
	AdminSubjects  Endpoint = "/admin/custom/cursos/"
	AdminResources Endpoint = "/admin/custom/recursos/"
)

// JoinPath appends an id segment to a collection endpoint, keeping the
// trailing slash convention of the backend.
func JoinPath(base Endpoint, id string) Endpoint {
	return Endpoint(strings.TrimRight(string(base), "/") + "/" + id + "/")
}
