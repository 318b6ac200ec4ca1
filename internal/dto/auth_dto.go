package dto

// SignupDTO is the request body for POST /auth/sign-up.
type SignupDTO struct {
	FirstName   string  `json:"first_name" binding:"required"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=8"`
	Role        string  `json:"role" binding:"required,oneof=student teacher admin"`
	PhoneNumber *string `json:"phone_number"`
}

// LoginDTO is the request body for POST /auth/login.
type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponseDTO struct {
	ID        uint    `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Avatar    *string `json:"avatar,omitempty"`
	Role      string  `json:"role"`
}

// AuthResponseDTO carries the signed token alongside the user it identifies.
type AuthResponseDTO struct {
	User        UserResponseDTO `json:"user"`
	AccessToken string          `json:"access"`
}
