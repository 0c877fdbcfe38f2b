package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ilya-HxH/TgBot/internal/domain"
	"github.com/Ilya-HxH/TgBot/internal/domain/entity"
)

// Los dos roles válidos parsean a su constante.
func TestParseRole_RolesValidos(t *testing.T) {
	role, err := entity.ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role)

	role, err = entity.ParseRole("customer")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, role)
}

// Cualquier otro string es rechazado con ErrInvalidRole.
func TestParseRole_RolInvalido(t *testing.T) {
	for _, s := range []string{"", "Admin", "superuser", "cliente"} {
		_, err := entity.ParseRole(s)
		assert.ErrorIs(t, err, domain.ErrInvalidRole, "rol %q debe ser rechazado", s)
	}
}

// IsAdmin/IsCustomer son excluyentes por construcción.
func TestUser_Permisos(t *testing.T) {
	admin := &entity.User{Role: entity.RoleAdmin}
	customer := &entity.User{Role: entity.RoleCustomer}

	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsCustomer())
	assert.True(t, customer.IsCustomer())
	assert.False(t, customer.IsAdmin())
}
