package services

import (
	"context"

	"github.com/Leonzuka/Projeto-Valex/internal/dto"
)

// AuthSvcFacade issues and validates role tokens.
type AuthSvcFacade interface {
	// Login checks a role password and issues a signed token carrying the
	// role claim.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// VerifyToken validates a token and returns the role claim.
	VerifyToken(ctx context.Context, token string) (string, error)
}
