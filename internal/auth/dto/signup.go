package dto

type SignupInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8,max=128"`
	DisplayName string `json:"displayName" validate:"omitempty,max=100"`
	Timezone    string `json:"timezone" validate:"omitempty,timezone"`
}
