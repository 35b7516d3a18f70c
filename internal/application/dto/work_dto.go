package dto

// CreateWorkRequest entrada para crear una obra.
type CreateWorkRequest struct {
	Name          string   `json:"name" validate:"required"`
	Address       string   `json:"address" validate:"required"`
	Responsible   string   `json:"responsible"`
	AssignedUsers []string `json:"assigned_users"`
}

// UpdateWorkRequest parche explícito: los campos nil se preservan.
type UpdateWorkRequest struct {
	Name          *string   `json:"name" validate:"omitempty,min=1"`
	Address       *string   `json:"address" validate:"omitempty,min=1"`
	Responsible   *string   `json:"responsible"`
	AssignedUsers *[]string `json:"assigned_users"`
}

// WorkResponse salida de una obra.
type WorkResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Responsible   string   `json:"responsible,omitempty"`
	AssignedUsers []string `json:"assigned_users"`
}
