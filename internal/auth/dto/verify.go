package dto

type ConfirmEmailVerificationInput struct {
	Token string `json:"token" validate:"required"`
}

type EmailVerificationRequested struct {
	OK                    bool    `json:"ok"`
	AlreadyVerified       bool    `json:"alreadyVerified"`
	MockVerificationToken *string `json:"mockVerificationToken"`
}
