package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"estudiapro_client/internal/config"
	"estudiapro_client/internal/model"
	"estudiapro_client/internal/service"
	"estudiapro_client/internal/util"
	"estudiapro_client/pkg/logger"

	"go.uber.org/zap"
)

// DemoToken is the sentinel session token the simulator hands out. Any other
// token fails the auth gate, which is how an expired live session surfaces
// after switching modes.
const DemoToken = "demo-token"

// DemoBackend answers requests in-process against the seed store. It sits
// behind the same Endpoint/method surface as the live backend so the
// dispatcher can route to either without callers noticing.
type DemoBackend struct {
	cfg   *config.Config
	prefs *Prefs

	auth          *service.AuthService
	users         *service.UserService
	subjects      *service.SubjectService
	resources     *service.ResourceService
	exams         *service.ExamService
	tutors        *service.TutorService
	forums        *service.ForumService
	achievements  *service.AchievementService
	notifications *service.NotificationService
}

func NewDemoBackend(cfg *config.Config, prefs *Prefs, svcs *service.Services) *DemoBackend {
	return &DemoBackend{
		cfg:           cfg,
		prefs:         prefs,
		auth:          svcs.Auth,
		users:         svcs.Users,
		subjects:      svcs.Subjects,
		resources:     svcs.Resources,
		exams:         svcs.Exams,
		tutors:        svcs.Tutors,
		forums:        svcs.Forums,
		achievements:  svcs.Achievements,
		notifications: svcs.Notifications,
	}
}

// Handle simulates one round trip: wait the configured latency, gate on the
// sentinel token when required, then route. Cancelling ctx aborts the wait.
func (d *DemoBackend) Handle(ctx context.Context, endpoint Endpoint, method string, payload any, requiresAuth bool) (any, error) {
	if d.cfg.Client.DemoLatency > 0 {
		timer := time.NewTimer(d.cfg.Client.DemoLatency)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if requiresAuth && d.prefs.Token() != DemoToken {
		return nil, util.ErrUnauthorized
	}

	return d.route(endpoint, method, payload)
}

func (d *DemoBackend) route(endpoint Endpoint, method string, payload any) (any, error) {
	switch {
	case endpoint == AuthLogin && method == http.MethodPost:
		var req service.LoginRequest
		if err := decodePayload(payload, &req); err != nil {
			return nil, err
		}
		if _, err := d.auth.Authenticate(req.Identifier(), req.Password); err != nil {
			return nil, err
		}
		return map[string]any{"token": DemoToken, "user": d.users.Profile()}, nil

	case endpoint == AuthRegister && method == http.MethodPost:
		var req service.RegisterRequest
		if err := decodePayload(payload, &req); err != nil {
			return nil, err
		}
		return map[string]any{"success": true, "token": DemoToken, "user": d.users.Profile()}, nil

	case endpoint == AuthVerify && method == http.MethodGet:
		return map[string]any{"valid": true, "user": d.users.Profile()}, nil

	case endpoint == AuthLogout && method == http.MethodPost:
		return map[string]any{"success": true}, nil

	case endpoint == UsersProfile && method == http.MethodGet:
		return d.users.Profile(), nil

	case endpoint == UsersUpdateProfile && (method == http.MethodPut || method == http.MethodPatch):
		var req service.UpdateProfileRequest
		if err := decodePayload(payload, &req); err != nil {
			return nil, err
		}
		return d.users.UpdateProfile(req), nil

	case endpoint == SubjectsAll && method == http.MethodGet:
		return d.subjects.Catalog(), nil

	case endpoint == SubjectsMine && method == http.MethodGet:
		return d.subjects.UserSubjects(), nil

	case endpoint == SubjectsEnroll && method == http.MethodPost:
		var req service.AddSubjectRequest
		if err := decodePayload(payload, &req); err != nil {
			return nil, err
		}
		if err := d.subjects.AddSubject(req.SubjectID); err != nil {
			return nil, err
		}
		return map[string]any{"success": true, "subjects": d.subjects.UserSubjects()}, nil

	case endpoint == SubjectsUpdateExamDate && (method == http.MethodPost || method == http.MethodPut):
		var req service.ExamDateRequest
		if err := decodePayload(payload, &req); err != nil {
			return nil, err
		}
		d.subjects.UpdateExamDate(req.SubjectID, req.ExamDate)
		return map[string]any{"success": true}, nil

	case endpoint == ResourcesAll && method == http.MethodGet:
		return d.resources.All(), nil

	case endpoint == ResourcesPurchased && method == http.MethodGet:
		return d.resources.Purchased(), nil

	case endpoint == ResourcesPurchase && method == http.MethodPost:
		var req service.PurchaseRequest
		if err := decodePayload(payload, &req); err != nil {
			return nil, err
		}
		if err := d.resources.Purchase(req.ResourceID); err != nil {
			return nil, err
		}
		return map[string]any{"success": true}, nil

	case endpoint == ResourcesDownload && method == http.MethodPost:
		var req service.PurchaseRequest
		if err := decodePayload(payload, &req); err != nil {
			return nil, err
		}
		return d.resources.Download(req.ResourceID)

	case endpoint == ExamsAll && method == http.MethodGet:
		return d.exams.All(), nil

	case endpoint == ExamsStart && method == http.MethodPost:
		var req service.StartExamRequest
		if err := decodePayload(payload, &req); err != nil {
			return nil, err
		}
		return d.exams.Start(req.ExamID)

	case endpoint == ExamsSubmit && method == http.MethodPost:
		var req service.SubmitExamRequest
		if err := decodePayload(payload, &req); err != nil {
			return nil, err
		}
		return d.exams.Submit(req.ExamID, req.Answers)

	case endpoint == TutorsAll && method == http.MethodGet:
		return d.tutors.All(), nil

	case endpoint == TutorsSchedule && method == http.MethodPost:
		var req service.ScheduleRequest
		if err := decodePayload(payload, &req); err != nil {
			return nil, err
		}
		session, err := d.tutors.Schedule(req)
		if err != nil {
			return nil, err
		}
		return map[string]any{"success": true, "session": session}, nil

	case endpoint == ForumsAll && method == http.MethodGet:
		return d.forums.All(), nil

	case endpoint == ForumsCreateTopic && method == http.MethodPost:
		var req service.CreateTopicRequest
		if err := decodePayload(payload, &req); err != nil {
			return nil, err
		}
		topic := d.forums.CreateTopic(req)
		return service.CreateTopicResponse{Success: true, Topic: topic}, nil

	case isIDRoute(endpoint, ForumsAll) && method == http.MethodGet:
		return d.forums.Topic(routeID(endpoint, ForumsAll)), nil

	case endpoint == AchievementsMine && method == http.MethodGet:
		return d.achievements.UserAchievements(), nil

	case endpoint == AchievementsAll && method == http.MethodGet:
		return d.achievements.All(), nil

	case endpoint == NotificationsMine && method == http.MethodGet:
		return d.notifications.UserNotifications(), nil

	case endpoint == NotificationsMarkRead && method == http.MethodPost:
		var req service.MarkReadRequest
		if err := decodePayload(payload, &req); err != nil {
			return nil, err
		}
		d.notifications.MarkRead(req.NotificationID)
		return map[string]any{"success": true}, nil

	case endpoint == FormulariesAll && method == http.MethodGet:
		return d.resources.Formularies(), nil

	case endpoint == AdminUsers && method == http.MethodGet:
		return d.users.AllUsers(), nil

	case isIDRoute(endpoint, AdminUsers) && method == http.MethodPatch:
		var req service.ManageUserRequest
		if err := decodePayload(payload, &req); err != nil {
			return nil, err
		}
		if err := d.users.ManageUser(routeID(endpoint, AdminUsers), req.Action); err != nil {
			return nil, err
		}
		return map[string]any{"success": true}, nil

	case endpoint == AdminSubjects && method == http.MethodPost:
		return d.adminCreateSubject(payload)

	case isIDRoute(endpoint, AdminSubjects) && method == http.MethodPut:
		return d.adminUpdateSubject(routeID(endpoint, AdminSubjects), payload)

	case isIDRoute(endpoint, AdminSubjects) && method == http.MethodDelete:
		if err := d.subjects.DeleteSubject(routeID(endpoint, AdminSubjects)); err != nil {
			return nil, err
		}
		return map[string]any{"success": true}, nil

	case endpoint == AdminResources && method == http.MethodGet:
		return d.resources.All(), nil
	}

	if d.cfg.Client.LenientRouting {
		logger.Log.Warn("unmatched demo route answered with stub",
			zap.String("endpoint", string(endpoint)),
			zap.String("method", method))
		return map[string]any{"success": true}, nil
	}
	return nil, fmt.Errorf("%w: %s %s", util.ErrUnknownEndpoint, method, endpoint)
}

func (d *DemoBackend) adminCreateSubject(payload any) (any, error) {
	var subject model.Subject
	if err := decodePayload(payload, &subject); err != nil {
		return nil, err
	}
	d.subjects.CreateSubject(subject)
	return map[string]any{"success": true}, nil
}

func (d *DemoBackend) adminUpdateSubject(id string, payload any) (any, error) {
	var subject model.Subject
	if err := decodePayload(payload, &subject); err != nil {
		return nil, err
	}
	subject.ID = id
	if err := d.subjects.UpdateSubject(subject); err != nil {
		return nil, err
	}
	return map[string]any{"success": true}, nil
}

func isIDRoute(endpoint, base Endpoint) bool {
	if endpoint == base || !strings.HasPrefix(string(endpoint), string(base)) {
		return false
	}
	return routeID(endpoint, base) != ""
}

func routeID(endpoint, base Endpoint) string {
	rest := strings.TrimPrefix(string(endpoint), string(base))
	rest = strings.Trim(rest, "/")
	if strings.Contains(rest, "/") {
		return ""
	}
	return rest
}

// decodePayload re-marshals the loosely typed payload into the request
// struct a handler expects, the same coercion the real backend's JSON
// binding would do.
func decodePayload(payload, dst any) error {
	if payload == nil {
		return nil
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}
