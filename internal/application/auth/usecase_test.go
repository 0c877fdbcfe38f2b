package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ilya-HxH/TgBot/internal/application/auth"
	"github.com/Ilya-HxH/TgBot/internal/domain"
	"github.com/Ilya-HxH/TgBot/internal/domain/entity"
	"github.com/Ilya-HxH/TgBot/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeUserRepo repositorio de usuarios en memoria con la misma semántica
// que el adaptador PostgreSQL: ids secuenciales, username único.
type fakeUserRepo struct {
	users  []*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{nextID: 1} }

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByCredentials(username, password string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username && u.Password == password {
			return u, nil
		}
	}
	return nil, nil
}

func newUseCase() (*auth.UseCase, *fakeUserRepo, *memory.SessionStore) {
	users := newFakeUserRepo()
	sessions := memory.NewSessionStore()
	return auth.NewUseCase(users, sessions), users, sessions
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

// Registro con rol válido crea el usuario con id asignado.
func TestRegister_CreaUsuario(t *testing.T) {
	uc, repo, _ := newUseCase()

	user, err := uc.Register("ana", "secreto", "customer")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, entity.RoleCustomer, user.Role)
	assert.Len(t, repo.users, 1)
}

// Rol distinto de admin/customer → ErrInvalidRole, no se persiste nada.
func TestRegister_RolInvalido(t *testing.T) {
	uc, repo, _ := newUseCase()

	_, err := uc.Register("ana", "secreto", "superuser")
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
	assert.Empty(t, repo.users)
}

// Username repetido → ErrUsernameTaken, el usuario original queda intacto.
func TestRegister_UsernameDuplicado(t *testing.T) {
	uc, repo, _ := newUseCase()

	_, err := uc.Register("ana", "secreto", "customer")
	require.NoError(t, err)

	_, err = uc.Register("ana", "otro", "admin")
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	require.Len(t, repo.users, 1)
	assert.Equal(t, "secreto", repo.users[0].Password)
	assert.Equal(t, entity.RoleCustomer, repo.users[0].Role)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

// Register + Login deja sesión con el rol de registro.
func TestLogin_CreaSesionConRolDeRegistro(t *testing.T) {
	uc, _, sessions := newUseCase()
	_, err := uc.Register("ana", "secreto", "admin")
	require.NoError(t, err)

	user, err := uc.Login(42, "ana", "secreto")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)

	got, ok := sessions.Get(42)
	require.True(t, ok)
	assert.Equal(t, "ana", got.Username)
}

// Password equivocado → ErrInvalidCredentials y sin sesión.
func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _, sessions := newUseCase()
	_, err := uc.Register("ana", "secreto", "customer")
	require.NoError(t, err)

	_, err = uc.Login(42, "ana", "equivocado")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, ok := sessions.Get(42)
	assert.False(t, ok, "un login fallido nunca crea sesión")
}

// Usuario inexistente → ErrInvalidCredentials y sin sesión.
func TestLogin_UsuarioDesconocido(t *testing.T) {
	uc, _, sessions := newUseCase()

	_, err := uc.Login(42, "nadie", "nada")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, ok := sessions.Get(42)
	assert.False(t, ok)
}
