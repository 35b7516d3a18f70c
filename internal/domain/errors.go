package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrValidation         = errors.New("entrada inválida")
	ErrDuplicateEmail     = errors.New("el email ya está en uso")
	ErrStorage            = errors.New("fallo del medio de almacenamiento")
)
