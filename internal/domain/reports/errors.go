package reports

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrStorageUnavailable: el store embebido no se pudo abrir/crear.
	// Se resuelve reintentando Initialize(); no hay retry automático aquí.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrConstraint: un write violó NOT NULL o el CHECK de enumeraciones.
	ErrConstraint = errors.New("constraint violation")

	// ErrMapping: una fila persistida no se pudo traducir a PetReport.
	// No debería ocurrir con writes normales; indica datos corruptos.
	ErrMapping = errors.New("row mapping failed")

	// ErrNotFound lo devuelve solo GetByID. Update/Delete sobre un id
	// inexistente son no-ops silenciosos (comportamiento heredado).
	ErrNotFound = errors.New("report not found")
)

// ConstraintError envuelve ErrConstraint con el campo ofensor cuando
// el motor permite determinarlo.
type ConstraintError struct {
	Field string
	Cause error
}

func (e *ConstraintError) Error() string {
	msg := ErrConstraint.Error()
	if e.Field != "" {
		msg += " on " + e.Field
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ConstraintError) Unwrap() error { return ErrConstraint }
