package model

// AuthStatus состояние сессии учителя
type AuthStatus struct {
	IsAuthenticated bool    `json:"is_authenticated"`
	Username        *string `json:"username"`
}

// LoginResult ответ на успешный вход
type LoginResult struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

// MessageResult ответ с текстовым сообщением
type MessageResult struct {
	Message string `json:"message"`
}

// LoginRequest тело запроса /auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}
