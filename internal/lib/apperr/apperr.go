// Package apperr содержит типизированные ошибки уровня бизнес-логики.
// Каждая ошибка несёт Kind, по которому HTTP-слой выбирает код ответа.
package apperr

import (
	"errors"
	"fmt"
)

// Kind классифицирует ошибку.
type Kind int

const (
	// KindUnknown — ошибка без классификации, отдаётся как 500.
	KindUnknown Kind = iota
	// KindNotFound — запрошенный или упомянутый id не существует.
	KindNotFound
	// KindValidation — структура записи нарушена (не хватает обязательных полей).
	KindValidation
	// KindConflict — нарушено ограничение уникальности.
	KindConflict
	// KindBadRequest — нарушено семантическое правило (подписка на себя и т.п.).
	KindBadRequest
	// KindPrecondition — шаг изменения хранилища неожиданно не удался.
	KindPrecondition
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation_failure"
	case KindConflict:
		return "conflict"
	case KindBadRequest:
		return "bad_request"
	case KindPrecondition:
		return "precondition_failed"
	default:
		return "unknown"
	}
}

// Sentinel-значения для сравнения через errors.Is.
var (
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrValidation   = &Error{Kind: KindValidation}
	ErrConflict     = &Error{Kind: KindConflict}
	ErrBadRequest   = &Error{Kind: KindBadRequest}
	ErrPrecondition = &Error{Kind: KindPrecondition}
)

// Error — ошибка с классификацией.
// Step заполняется только для ошибок каскадного удаления и указывает шаг, на котором оно прервалось.
type Error struct {
	Kind Kind
	Msg  string
	Step string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg == "" && e.Err != nil {
		return e.Err.Error()
	}
	if e.Msg == "" {
		return e.Kind.String()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is сравнивает ошибки по Kind, поэтому errors.Is(err, ErrNotFound) работает для любой NotFound.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// NotFound создаёт ошибку KindNotFound.
func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// Validation создаёт ошибку KindValidation, оборачивая причину.
func Validation(cause error, format string, args ...any) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// Conflict создаёт ошибку KindConflict.
func Conflict(format string, args ...any) error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

// BadRequest создаёт ошибку KindBadRequest.
func BadRequest(format string, args ...any) error {
	return &Error{Kind: KindBadRequest, Msg: fmt.Sprintf(format, args...)}
}

// Precondition создаёт ошибку KindPrecondition для шага step с исходной причиной cause.
func Precondition(step string, cause error, format string, args ...any) error {
	return &Error{Kind: KindPrecondition, Msg: fmt.Sprintf(format, args...), Step: step, Err: cause}
}

// KindOf возвращает Kind первой типизированной ошибки в цепочке.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// StepOf возвращает тег шага каскада, если он есть.
func StepOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Step
	}
	return ""
}

// Message возвращает текст типизированной ошибки без префиксов op, добавленных при обёртке.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
