package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Toda lectura que no encuentra la fila devuelve ErrNotFound explícito:
// el éxito o fracaso de una operación es una rama tipada, nunca un nil ambiguo.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("credenciales inválidas")
	ErrForbidden          = errors.New("acceso denegado")
)
