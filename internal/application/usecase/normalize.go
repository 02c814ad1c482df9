package usecase

import (
	"strings"
	"time"

	"github.com/DavidManiIbrahim/keeper-api/internal/domain"
)

// dateLayout formato de fechas de formulario (inputs type=date).
const dateLayout = "2006-01-02"

// optString normaliza un string opcional: recorta espacios y convierte el
// vacío en NULL (nil). Todo campo opcional de texto pasa por aquí antes de
// llegar al repositorio.
func optString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// optDate parsea una fecha "2006-01-02" opcional. Vacía devuelve nil;
// mal formada devuelve ErrInvalidInput (no se coerce en silencio).
func optDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &t, nil
}
