package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrAlertResolved     = errors.New("la alerta ya fue resuelta")
	// ErrConcurrency indica un conflicto transitorio de bloqueo/serialización
	// sobre la fila del producto; la operación completa es segura de reintentar.
	ErrConcurrency = errors.New("conflicto de concurrencia")
)

// Códigos de error de campo para ValidationError.
const (
	CodeRequired          = "REQUIRED"
	CodeInvalid           = "INVALID"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
)

// FieldError describe un fallo de validación sobre un campo concreto.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError agrupa todos los fallos de validación de una petición,
// etiquetados por campo. Nunca se corta en el primer fallo: el caller recibe
// la lista completa, como en la validación de formularios.
type ValidationError struct {
	Fields []FieldError
}

// Add acumula un fallo de campo.
func (e *ValidationError) Add(field, code, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Code: code, Message: message})
}

// HasErrors indica si se acumuló al menos un fallo.
func (e *ValidationError) HasErrors() bool { return len(e.Fields) > 0 }

// Has indica si hay un fallo con el código dado.
func (e *ValidationError) Has(code string) bool {
	for _, f := range e.Fields {
		if f.Code == code {
			return true
		}
	}
	return false
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validación fallida"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validación fallida: " + strings.Join(parts, "; ")
}

// AsValidation extrae un *ValidationError de una cadena de errores.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
