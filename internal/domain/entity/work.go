package entity

// Work representa una obra: el sitio de destino que recibe los envíos.
// Las referencias a usuarios son débiles (solo ids, sin integridad referencial).
type Work struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Responsible   string   `json:"responsible,omitempty"`
	AssignedUsers []string `json:"assigned_users"`
}
