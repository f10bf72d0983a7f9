package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrimilho/estoque-api/internal/application/auth"
	"github.com/nutrimilho/estoque-api/internal/application/dto"
	"github.com/nutrimilho/estoque-api/internal/domain"
	"github.com/nutrimilho/estoque-api/internal/infrastructure/memory"
	pkgjwt "github.com/nutrimilho/estoque-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func buildAuthUC(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	store := memory.NewStore()
	return auth.NewAuthUseCase(store.Users(), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "estoque-api-test",
	})
}

func TestRegister_RolPorDefectoOperador(t *testing.T) {
	uc := buildAuthUC(t)

	out, err := uc.Register(dto.RegisterRequest{
		Name:     "Maria Silva",
		Email:    "Maria@Nutrimilho.com",
		Password: "senha-segura",
	})
	require.NoError(t, err)

	assert.Equal(t, "operador", out.Role)
	assert.Equal(t, "maria@nutrimilho.com", out.Email, "el email se normaliza a minúsculas")
}

func TestRegister_Validacion(t *testing.T) {
	uc := buildAuthUC(t)

	_, err := uc.Register(dto.RegisterRequest{Name: "X", Email: "x@y.com", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "contraseña de menos de 8 caracteres")

	_, err = uc.Register(dto.RegisterRequest{Name: "", Email: "x@y.com", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío")

	_, err = uc.Register(dto.RegisterRequest{Name: "X", Email: "x@y.com", Password: "12345678", Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "rol desconocido")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := buildAuthUC(t)

	_, err := uc.Register(dto.RegisterRequest{Name: "A", Email: "a@b.com", Password: "12345678"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Name: "B", Email: "A@B.COM", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_EmiteTokenConRol(t *testing.T) {
	uc := buildAuthUC(t)

	reg, err := uc.Register(dto.RegisterRequest{
		Name: "Admin", Email: "admin@nutrimilho.com", Password: "12345678", Role: "admin",
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@nutrimilho.com", Password: "12345678"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID)
	assert.Equal(t, "admin", role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := buildAuthUC(t)

	_, err := uc.Register(dto.RegisterRequest{Name: "A", Email: "a@b.com", Password: "12345678"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@b.com", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"usuario inexistente y contraseña mala deben ser indistinguibles")
}
