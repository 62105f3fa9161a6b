package dto

type RegisterUserRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"amy@example.com"`
	Name     string `json:"name" validate:"max=100" example:"Amy"`
	PhotoURL string `json:"photoURL" validate:"omitempty,url" example:"https://example.com/amy.png"`
	// Role is accepted for compatibility and ignored.
	Role string `json:"role,omitempty" swaggerignore:"true"`
}

type RegisterUserResponseDTO struct {
	Message  string           `json:"message"`
	Inserted bool             `json:"inserted"`
	User     *UserResponseDTO `json:"user,omitempty"`
}

type UserResponseDTO struct {
	ID        string `json:"id" example:"5d0b8f2e-4a1b-4c9e-8f3a-2b7c9d1e0f11"`
	Email     string `json:"email" example:"amy@example.com"`
	Name      string `json:"name" example:"Amy"`
	PhotoURL  string `json:"photoURL,omitempty"`
	Role      string `json:"role" example:"user"`
	CreatedAt string `json:"createdAt" example:"2024-08-01T08:00:00Z"`
}

type RoleResponseDTO struct {
	Role string `json:"role" example:"admin"`
}

type SetRoleRequestDTO struct {
	Role string `json:"role" validate:"required,oneof=user admin" example:"admin"`
}
