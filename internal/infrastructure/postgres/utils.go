package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/DavidManiIbrahim/keeper-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isPermissionDenied verifica si un error es un rechazo de la política
// row-level security de la DB (42501) o su variante en el mensaje.
// Es la señal que la capa HTTP reclasifica como "Permission Denied".
func isPermissionDenied(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "42501" // insufficient_privilege
	}
	return strings.Contains(err.Error(), "row-level security")
}

// writeError mapea violaciones conocidas a errores de dominio y envuelve
// el resto con la operación que falló.
func writeError(op string, err error) error {
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	if isPermissionDenied(err) {
		return domain.ErrForbidden
	}
	return fmt.Errorf("%s: %w", op, err)
}
