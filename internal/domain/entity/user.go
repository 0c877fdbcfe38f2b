package entity

import "github.com/Ilya-HxH/TgBot/internal/domain"

// Role rol de un usuario. Solo existen dos variantes; todo chequeo de
// permisos se hace contra estas constantes, nunca contra strings sueltos.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// ParseRole valida el rol tal como llega del comando /register.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleCustomer:
		return Role(s), nil
	default:
		return "", domain.ErrInvalidRole
	}
}

// User representa un usuario del bot. Password se guarda en texto plano:
// el contrato de login es comparación exacta (ver decisiones en DESIGN.md).
type User struct {
	ID       int64
	Username string // único
	Password string
	Role     Role
}

// IsAdmin indica si el usuario puede administrar el catálogo.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// IsCustomer indica si el usuario puede comprar.
func (u *User) IsCustomer() bool { return u.Role == RoleCustomer }
