package dto

// LoginRequest credenciales del dueño del negocio.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserProfile perfil visible del dueño (nunca incluye el hash del password).
type UserProfile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	BusinessName string `json:"businessName"`
}

// LoginResponse token JWT más el perfil para el dashboard.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}
