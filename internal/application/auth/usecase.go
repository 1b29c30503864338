package auth

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/smartsell/smartsell-api/internal/application/dto"
	"github.com/smartsell/smartsell-api/internal/domain"
	"github.com/smartsell/smartsell-api/internal/domain/entity"
	"github.com/smartsell/smartsell-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase login del dueño del negocio. El dashboard es mono-usuario: la
// cuenta sale de la configuración, no hay registro ni gestión de usuarios.
type UseCase struct {
	owner  *entity.Owner
	jwtCfg JWTConfig
}

// OwnerAccount datos de la cuenta del dueño (password en claro, desde config).
type OwnerAccount struct {
	Email        string
	Password     string
	Name         string
	BusinessName string
}

// NewUseCase hashea el password con bcrypt y deja la cuenta lista en memoria.
func NewUseCase(account OwnerAccount, jwtCfg JWTConfig) (*UseCase, error) {
	if account.Email == "" || account.Password == "" {
		return nil, fmt.Errorf("auth: email y password del dueño son requeridos")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth: hashear password: %w", err)
	}
	return &UseCase{
		owner: &entity.Owner{
			ID:           uuid.New().String(),
			Email:        strings.ToLower(strings.TrimSpace(account.Email)),
			PasswordHash: string(hash),
			Name:         account.Name,
			BusinessName: account.BusinessName,
		},
		jwtCfg: jwtCfg,
	}, nil
}

// Login verifica email/password, genera JWT y retorna token + perfil.
// Devuelve ErrInvalidCredentials sin distinguir cuál de los dos falló.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if strings.ToLower(strings.TrimSpace(in.Email)) != uc.owner.Email {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.owner.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.owner.ID, uc.owner.BusinessName, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("auth: generar token: %w", err)
	}
	return &dto.LoginResponse{
		Token: token,
		User:  uc.Profile(),
	}, nil
}

// Profile devuelve el perfil visible del dueño (sin hash).
func (uc *UseCase) Profile() dto.UserProfile {
	return dto.UserProfile{
		ID:           uc.owner.ID,
		Name:         uc.owner.Name,
		Email:        uc.owner.Email,
		BusinessName: uc.owner.BusinessName,
	}
}
