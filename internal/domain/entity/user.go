package entity

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa un usuario del sistema.
//
// Password se persiste junto al resto del registro (el almacén local hace de
// backend simulado) pero nunca debe salir de una operación de lectura: los
// casos de uso limpian la credencial antes de devolver el usuario.
type User struct {
	ID            string   `json:"id"`
	Email         string   `json:"email"`
	Name          string   `json:"name"`
	Password      string   `json:"password,omitempty"`
	Role          string   `json:"role"` // admin, user
	AssignedWorks []string `json:"assigned_works"`
}

// Sanitized devuelve una copia sin la credencial.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// IsAdmin indica si el usuario tiene rol de administrador.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
