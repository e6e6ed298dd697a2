package dto

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

// LoginResponse returns the token alongside the cookie so the browser
// side can attach it to direct backend calls (hybrid cookie + store).
type LoginResponse struct {
	Success bool      `json:"success"`
	Token   string    `json:"token"`
	User    LoginUser `json:"user"`
}

type VerifyResponse struct {
	Success  bool `json:"success"`
	HasToken bool `json:"hasToken"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// SubmittedResponse is the terminal confirmation state of the one-shot
// forms (forgot/reset password).
type SubmittedResponse struct {
	Success   bool   `json:"success"`
	Submitted bool   `json:"submitted"`
	Message   string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
