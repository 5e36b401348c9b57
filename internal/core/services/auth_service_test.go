package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Leonzuka/Projeto-Valex/internal/apperrors"
	"github.com/Leonzuka/Projeto-Valex/internal/core/services"
	"github.com/Leonzuka/Projeto-Valex/internal/dto"
	"github.com/Leonzuka/Projeto-Valex/internal/platform/config"
	"github.com/Leonzuka/Projeto-Valex/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestConfig(t *testing.T) *config.Config {
	t.Helper()
	gestorHash, err := utils.HashPassword("senha-gestor")
	require.NoError(t, err)
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTExpiryDuration:  time.Hour,
		JWTIssuer:          "valex-backend",
		GestorPasswordHash: gestorHash,
		// Cooperado hash left empty: the role is disabled.
	}
}

func TestAuthLoginAndVerify(t *testing.T) {
	svc := services.NewAuthService(authTestConfig(t))
	ctx := context.Background()

	resp, err := svc.Login(ctx, dto.LoginRequest{Role: "gestor", Password: "senha-gestor"})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "gestor", resp.Role)
	assert.NotEmpty(t, resp.Token)

	role, err := svc.VerifyToken(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "gestor", role)
}

func TestAuthLoginWrongPassword(t *testing.T) {
	svc := services.NewAuthService(authTestConfig(t))

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Role: "gestor", Password: "errada"})
	require.Error(t, err)
	assert.Nil(t, resp)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.Code)
}

func TestAuthLoginDisabledRole(t *testing.T) {
	svc := services.NewAuthService(authTestConfig(t))

	_, err := svc.Login(context.Background(), dto.LoginRequest{Role: "cooperado", Password: "qualquer"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.Code)
}

func TestAuthVerifyTokenRejectsGarbage(t *testing.T) {
	svc := services.NewAuthService(authTestConfig(t))

	_, err := svc.VerifyToken(context.Background(), "not-a-token")
	assert.Error(t, err)
}

func TestAuthVerifyTokenRejectsOtherIssuer(t *testing.T) {
	cfg := authTestConfig(t)
	svc := services.NewAuthService(cfg)

	token, err := utils.GenerateJWT("gestor", cfg.JWTSecret, time.Hour, "outro-emissor")
	require.NoError(t, err)

	_, err = svc.VerifyToken(context.Background(), token)
	assert.Error(t, err)
}
