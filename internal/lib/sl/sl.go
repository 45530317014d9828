// Package sl содержит вспомогательные атрибуты slog для вывода ошибок.
package sl

import (
	"log/slog"

	"github.com/magabrotheeeer/member-hub/internal/lib/apperr"
)

// Err возвращает атрибут "error" с текстом ошибки. Для nil значение пустое.
//
//	log.Error("failed to create record", sl.Err(err))
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// Typed возвращает группу "error" с текстом, видом ошибки и шагом каскада, если он есть.
func Typed(err error) slog.Attr {
	if err == nil {
		return slog.Group("error")
	}
	attrs := []any{
		slog.String("msg", err.Error()),
		slog.String("kind", apperr.KindOf(err).String()),
	}
	if step := apperr.StepOf(err); step != "" {
		attrs = append(attrs, slog.String("step", step))
	}
	return slog.Group("error", attrs...)
}
