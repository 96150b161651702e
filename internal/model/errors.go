package model

import (
	"errors"
	"fmt"
)

// Ошибки состояния: сигнализируются отдельно от ошибок валидации и расчёта.
var (
	ErrNoChart       = errors.New("карта Ба-Цзы не задана")
	ErrNoSolarTerm   = errors.New("солнечный термин для даты не найден")
	ErrChartNotFound = errors.New("карта не найдена")

	ErrSubscriptionNotFound = errors.New("подписка не найдена")
)

// ValidationError - ошибка входных данных (отсутствующее или выходящее за
// диапазон поле). Всегда возникает до начала расчётов.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("некорректное поле %q: %s", e.Field, e.Reason)
}

// NewValidationError создаёт ошибку валидации для поля
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// CalculationError - неожиданный сбой внутри калькулятора (например, промах
// по справочной таблице). Отличается от ошибки валидации, чтобы вызывающий
// код мог различить «плохой ввод» и «внутренний сбой расчёта».
type CalculationError struct {
	Stage string
	Err   error
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("ошибка расчёта на этапе %q: %v", e.Stage, e.Err)
}

func (e *CalculationError) Unwrap() error {
	return e.Err
}

// NewCalculationError оборачивает сбой калькулятора с указанием этапа
func NewCalculationError(stage string, err error) *CalculationError {
	return &CalculationError{Stage: stage, Err: err}
}
