package dto

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateUserRequest entrada para crear un usuario (solo admin).
type CreateUserRequest struct {
	Email         string   `json:"email" validate:"required,email"`
	Name          string   `json:"name" validate:"required"`
	Password      string   `json:"password" validate:"required"`
	Role          string   `json:"role" validate:"required,oneof=admin user"`
	AssignedWorks []string `json:"assigned_works"`
}

// UpdateUserRequest parche explícito: los campos nil se preservan.
// La credencial solo cambia si se envía un valor no vacío.
type UpdateUserRequest struct {
	Email         *string   `json:"email" validate:"omitempty,email"`
	Name          *string   `json:"name" validate:"omitempty,min=1"`
	Password      *string   `json:"password" validate:"omitempty,min=1"`
	Role          *string   `json:"role" validate:"omitempty,oneof=admin user"`
	AssignedWorks *[]string `json:"assigned_works"`
}

// UserResponse salida de un usuario; nunca incluye la credencial.
type UserResponse struct {
	ID            string   `json:"id"`
	Email         string   `json:"email"`
	Name          string   `json:"name"`
	Role          string   `json:"role"`
	AssignedWorks []string `json:"assigned_works"`
}
