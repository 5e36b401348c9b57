package services

import (
	"context"
	"errors"

	"github.com/Leonzuka/Projeto-Valex/internal/apperrors"
	portssvc "github.com/Leonzuka/Projeto-Valex/internal/core/ports/services"
	"github.com/Leonzuka/Projeto-Valex/internal/dto"
	"github.com/Leonzuka/Projeto-Valex/internal/platform/config"
	"github.com/Leonzuka/Projeto-Valex/internal/utils"
)

// Roles known to the backend.
const (
	RoleGestor    = "gestor"
	RoleCooperado = "cooperado"
)

var errInvalidCredentials = errors.New("invalid credentials")

type authService struct {
	BaseService
	cfg *config.Config
}

// NewAuthService creates the role-password authentication service.
func NewAuthService(cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg}
}

// Login checks the role password against the configured bcrypt hash and
// issues a token carrying the role. A role with no configured hash is
// disabled.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	var hash string
	switch req.Role {
	case RoleGestor:
		hash = s.cfg.GestorPasswordHash
	case RoleCooperado:
		hash = s.cfg.CooperadoPasswordHash
	default:
		return nil, apperrors.NewAppError(400, "perfil desconhecido", apperrors.ErrValidation)
	}

	if hash == "" || !utils.CheckPasswordHash(req.Password, hash) {
		s.LogInfo(ctx, "Login rejected", "role", req.Role)
		return nil, apperrors.NewAppError(401, "credenciais inválidas", errInvalidCredentials)
	}

	token, err := utils.GenerateJWT(req.Role, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to issue token", err)
	}

	s.LogInfo(ctx, "Login accepted", "role", req.Role)
	return &dto.LoginResponse{Token: token, Role: req.Role}, nil
}

// VerifyToken validates a token and returns its role claim.
func (s *authService) VerifyToken(_ context.Context, token string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret)
	if err != nil {
		return "", err
	}
	if s.cfg.JWTIssuer != "" && claims.Issuer != s.cfg.JWTIssuer {
		return "", errInvalidCredentials
	}
	return claims.Subject, nil
}
