package entity

// Owner es la cuenta única del dueño del negocio (el dashboard es
// mono-usuario; no hay registro ni roles).
type Owner struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt
	Name         string
	BusinessName string
}
