package dto

type RequestPasswordResetInput struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=128"`
}

// PasswordResetRequested is always a 202 so callers cannot probe which emails
// exist. MockResetToken is populated only outside production.
type PasswordResetRequested struct {
	OK             bool    `json:"ok"`
	Requested      bool    `json:"requested"`
	MockResetToken *string `json:"mockResetToken"`
}
