package domain

import "errors"

// Errores de dominio (sin dependencias externas). Cada handler los traduce
// a un mensaje de texto para el chat; nunca llegan crudos al transporte.
var (
	ErrNotAuthenticated   = errors.New("no hay sesión para este chat")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrForbidden          = errors.New("rol sin permiso para la operación")
	ErrInvalidRole        = errors.New("rol inválido")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUsernameTaken      = errors.New("el nombre de usuario ya existe")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrEmptyCart          = errors.New("el carrito está vacío")
)
