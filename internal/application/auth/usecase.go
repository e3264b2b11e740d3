package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stock-lotes-api/internal/application/dto"
	"github.com/jhoicas/stock-lotes-api/internal/domain"
	"github.com/jhoicas/stock-lotes-api/internal/domain/entity"
	"github.com/jhoicas/stock-lotes-api/internal/domain/repository"
	"github.com/jhoicas/stock-lotes-api/pkg/jwt"
)

// JWTConfig parámetros para emitir tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registro y login de usuarios con bcrypt + JWT.
type AuthUseCase struct {
	users repository.UserRepository
	cfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(users repository.UserRepository, cfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, cfg: cfg}
}

// Register crea un usuario y devuelve un token de sesión.
func (uc *AuthUseCase) Register(req dto.RegisterRequest) (*dto.TokenResponse, error) {
	if req.Email == "" || len(req.Password) < 8 {
		return nil, fmt.Errorf("%w: email obligatorio y contraseña de al menos 8 caracteres", domain.ErrInvalidInput)
	}
	existing, err := uc.users.GetByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash de contraseña: %w", err)
	}
	role := req.Role
	if role == "" {
		role = "bodeguero"
	}
	u := &entity.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := uc.users.Create(u); err != nil {
		return nil, fmt.Errorf("crear usuario: %w", err)
	}
	return uc.issueToken(u)
}

// Login valida credenciales y devuelve un token.
func (uc *AuthUseCase) Login(req dto.LoginRequest) (*dto.TokenResponse, error) {
	u, err := uc.users.GetByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.issueToken(u)
}

func (uc *AuthUseCase) issueToken(u *entity.User) (*dto.TokenResponse, error) {
	token, err := jwt.Generate(uc.cfg.Secret, u.ID, u.Role, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("emitir token: %w", err)
	}
	return &dto.TokenResponse{Token: token}, nil
}
