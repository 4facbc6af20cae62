// AngelaMos | 2026
// dto.go

package auth

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=128"`
}

type RegisterRequest struct {
	Username    string `json:"username"     validate:"required,min=3,max=50"`
	Email       string `json:"email"        validate:"required,email,max=255"`
	FirstName   string `json:"first_name"   validate:"required,min=1,max=100"`
	LastName    string `json:"last_name"    validate:"required,min=1,max=100"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
	Password    string `json:"password"     validate:"required,min=8,max=128"`
	Role        string `json:"role"         validate:"required,oneof=user admin"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
