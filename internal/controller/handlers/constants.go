package handlers

import "time"

const (
	sessionCookieName = "session"
	teacherSessionKey = "teacher_username"
	sessionMaxAge     = 14 * 24 * time.Hour

	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"

	indexPage = "/static/index.html"
)

// Коды ошибок в теле ответа
const (
	codeUnauthenticated    = "UNAUTHENTICATED"
	codeInvalidCredentials = "INVALID_CREDENTIALS"
	codeNotFound           = "NOT_FOUND"
	codeAlreadyRegistered  = "ALREADY_REGISTERED"
	codeNotRegistered      = "NOT_REGISTERED"
	codeInvalidInput       = "INVALID_INPUT"
	codeInternal           = "INTERNAL_ERROR"
)
