package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidManiIbrahim/keeper-api/internal/application/auth"
	"github.com/DavidManiIbrahim/keeper-api/internal/application/dto"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain/entity"
)

type fakeUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
	failAll bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*entity.User),
		byEmail: make(map[string]*entity.User),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if f.failAll {
		return errors.New("db caída")
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if f.failAll {
		return nil, errors.New("db caída")
	}
	return f.byID[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.failAll {
		return nil, errors.New("db caída")
	}
	return f.byEmail[email], nil
}

func testConfig() auth.JWTConfig {
	return auth.JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "keeper-api-test"}
}

func TestRegisterUser_RolPorDefectoEmployee(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testConfig())

	out, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:    "Nueva@Ejemplo.Com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, out.Role)
	assert.Equal(t, "nueva@ejemplo.com", out.Email, "el email se normaliza a minúsculas")
	assert.Equal(t, "active", out.Status)
}

func TestRegisterUser_RolInvalido(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testConfig())

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:    "a@b.com",
		Password: "password123",
		Role:     "superadmin",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterUser_EmailRepetido(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testConfig())

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: "a@b.com", Password: "password123"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: "A@B.COM", Password: "otra-clave-123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists,
		"la comparación de email es insensible a mayúsculas")
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testConfig())

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:    "manager@b.com",
		Password: "password123",
		Role:     entity.RoleManager,
	})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "manager@b.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleManager, out.User.Role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testConfig())

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: "a@b.com", Password: "password123"})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "a@b.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testConfig())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@b.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testConfig())

	out, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: "a@b.com", Password: "password123"})
	require.NoError(t, err)
	repo.byID[out.ID].Status = "inactive"

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "a@b.com", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetRole_FallaSilenciosaDevuelveEmployee(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testConfig())

	// Usuario inexistente → employee, nunca error.
	assert.Equal(t, entity.RoleEmployee, uc.GetRole(context.Background(), "no-existe"))

	// Error de consulta → employee, el rol de menor privilegio.
	repo.failAll = true
	assert.Equal(t, entity.RoleEmployee, uc.GetRole(context.Background(), "cualquiera"))
}

func TestGetRole_DevuelveRolReal(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testConfig())

	out, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:    "admin@b.com",
		Password: "password123",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAdmin, uc.GetRole(context.Background(), out.ID))
}
