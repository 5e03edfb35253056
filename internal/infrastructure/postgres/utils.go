package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/holawaleh/e-commerce/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return false
}

// isLockConflict verifica códigos transitorios de bloqueo/serialización:
// 40001 serialization_failure, 40P01 deadlock_detected, 55P03 lock_not_available.
func isLockConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "55P03":
			return true
		}
	}
	return false
}

// mapTxError traduce conflictos transitorios a domain.ErrConcurrency para que
// el caso de uso pueda reintentar la transacción completa.
func mapTxError(err error) error {
	if err == nil {
		return nil
	}
	if isLockConflict(err) {
		return fmt.Errorf("%w: %v", domain.ErrConcurrency, err)
	}
	return err
}
