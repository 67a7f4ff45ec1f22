package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/cosmetica-saas/internal/application/auth"
	"github.com/tu-usuario/cosmetica-saas/internal/application/dto"
	"github.com/tu-usuario/cosmetica-saas/internal/application/fakes"
	"github.com/tu-usuario/cosmetica-saas/internal/domain"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/cosmetica-saas/pkg/jwt"
)

const testCompanyID = "00000000-0000-0000-0000-0000000000c1"

var testJWTCfg = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "cosmetica-saas-test"}

func newFixture(t *testing.T) (*fakes.Store, *auth.AuthUseCase) {
	t.Helper()
	s := fakes.NewStore()
	s.Companies[testCompanyID] = entity.Company{
		ID: testCompanyID, Name: "Distribuidora Rosa",
		Status: entity.CompanyStatusActive, CreatedAt: time.Now(),
	}
	return s, auth.NewAuthUseCase(fakes.NewUserRepo(s), fakes.NewCompanyRepo(s), testJWTCfg)
}

func TestRegisterUser(t *testing.T) {
	s, uc := newFixture(t)

	resp, err := uc.RegisterUser(dto.RegisterRequest{
		CompanyID: testCompanyID,
		Name:      "Ana",
		Email:     "ana@rosa.co",
		Password:  "secreta123",
		Role:      entity.RoleOwner,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOwner, resp.Role)

	user := s.Users[resp.ID]
	assert.NotEqual(t, "secreta123", user.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secreta123")))
}

func TestRegisterUser_RolPorDefectoVendedor(t *testing.T) {
	_, uc := newFixture(t)
	resp, err := uc.RegisterUser(dto.RegisterRequest{
		CompanyID: testCompanyID, Email: "v@rosa.co", Password: "secreta123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendedor, resp.Role)
}

func TestRegisterUser_SuperAdminNoRegistrable(t *testing.T) {
	_, uc := newFixture(t)
	_, err := uc.RegisterUser(dto.RegisterRequest{
		CompanyID: testCompanyID, Email: "root@rosa.co", Password: "secreta123",
		Role: entity.RoleSuperAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	_, uc := newFixture(t)
	in := dto.RegisterRequest{CompanyID: testCompanyID, Email: "ana@rosa.co", Password: "secreta123"}
	_, err := uc.RegisterUser(in)
	require.NoError(t, err)

	_, err = uc.RegisterUser(in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_EmpresaInexistente(t *testing.T) {
	_, uc := newFixture(t)
	_, err := uc.RegisterUser(dto.RegisterRequest{
		CompanyID: "no-existe", Email: "ana@rosa.co", Password: "secreta123",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogin(t *testing.T) {
	_, uc := newFixture(t)
	reg, err := uc.RegisterUser(dto.RegisterRequest{
		CompanyID: testCompanyID, Email: "ana@rosa.co", Password: "secreta123", Role: entity.RoleOwner,
	})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "ana@rosa.co", Password: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, reg.ID, resp.User.ID)

	userID, companyID, role, err := pkgjwt.Parse(testJWTCfg.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID)
	assert.Equal(t, testCompanyID, companyID)
	assert.Equal(t, entity.RoleOwner, role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	_, uc := newFixture(t)
	_, err := uc.RegisterUser(dto.RegisterRequest{
		CompanyID: testCompanyID, Email: "ana@rosa.co", Password: "secreta123",
	})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@rosa.co", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	_, uc := newFixture(t)
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@rosa.co", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_EmpresaInactivaBloqueada(t *testing.T) {
	s, uc := newFixture(t)
	_, err := uc.RegisterUser(dto.RegisterRequest{
		CompanyID: testCompanyID, Email: "ana@rosa.co", Password: "secreta123",
	})
	require.NoError(t, err)

	c := s.Companies[testCompanyID]
	c.Status = entity.CompanyStatusInactive
	s.Companies[testCompanyID] = c

	_, err = uc.Login(dto.LoginRequest{Email: "ana@rosa.co", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"la desactivación del tenant congela el acceso de sus usuarios")
}
