package repository

import "estudiapro_client/internal/model"

type NotificationRepository struct {
	store *Store
}

func NewNotificationRepository(store *Store) *NotificationRepository {
	return &NotificationRepository{store: store}
}

func (r *NotificationRepository) All() []model.Notification {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return append([]model.Notification(nil), r.store.notifications...)
}

// MarkRead flips the read flag in place. Unknown ids are ignored, matching
// the lenient demo behavior.
func (r *NotificationRepository) MarkRead(id string) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.notifications {
		if r.store.notifications[i].ID == id {
			r.store.notifications[i].Read = true
			return
		}
	}
}
