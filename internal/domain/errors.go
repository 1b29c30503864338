package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
)

// ValidationError detalla qué campo es inválido y por qué.
// Satisface errors.Is(err, ErrInvalidInput) para que los callers que solo
// distinguen por categoría sigan funcionando.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// InsufficientStockError lleva el stock disponible y el solicitado para que
// la capa de presentación pueda armar el mensaje exacto sin recalcular nada.
type InsufficientStockError struct {
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %d, solicitado %d", e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool { return target == ErrInsufficientStock }

// PersistenceError indica que el colaborador de almacenamiento falló al leer
// o escribir. El núcleo nunca asume efecto parcial: si aparece este error,
// el estado en memoria no cambió.
type PersistenceError struct {
	Op  string // "guardar productos", "cargar ventas", ...
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistencia: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
