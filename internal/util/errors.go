package util

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrUserNotFound         = errors.New("user not found")
	ErrSubjectNotFound      = errors.New("subject not found")
	ErrResourceNotFound     = errors.New("resource not found")
	ErrResourceNotOwned     = errors.New("resource not purchased")
	ErrExamNotFound         = errors.New("exam not found")
	ErrTutorNotFound        = errors.New("tutor not found")
	ErrTopicNotFound        = errors.New("forum topic not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrUnknownEndpoint      = errors.New("unknown endpoint")
)
