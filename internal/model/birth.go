package model

import "fmt"

// BirthMoment - момент рождения. Неизменяем после создания: создаётся из
// пользовательского ввода и потребляется всеми калькуляторами.
type BirthMoment struct {
	Year           int     `json:"year" validate:"required,gte=1900,lte=2100"`
	Month          int     `json:"month" validate:"required,gte=1,lte=12"`
	Day            int     `json:"day" validate:"required,gte=1,lte=31"`
	Hour           int     `json:"hour" validate:"gte=0,lte=23"`
	Minute         int     `json:"minute" validate:"gte=0,lte=59"`
	Second         int     `json:"second" validate:"gte=0,lte=59"`
	TimezoneOffset float64 `json:"timezone_offset" validate:"gte=-12,lte=14"`
}

// Validate проверяет диапазоны всех полей момента рождения, включая
// корректность дня для месяца с учётом високосного года
func (b *BirthMoment) Validate() error {
	if b.Year < 1900 || b.Year > 2100 {
		return NewValidationError("year", fmt.Sprintf("год должен быть в диапазоне 1900..2100, получено %d", b.Year))
	}
	if b.Month < 1 || b.Month > 12 {
		return NewValidationError("month", fmt.Sprintf("месяц должен быть в диапазоне 1..12, получено %d", b.Month))
	}
	maxDay := daysInMonth(b.Year, b.Month)
	if b.Day < 1 || b.Day > maxDay {
		return NewValidationError("day", fmt.Sprintf("день должен быть в диапазоне 1..%d для %d-%02d, получено %d", maxDay, b.Year, b.Month, b.Day))
	}
	if b.Hour < 0 || b.Hour > 23 {
		return NewValidationError("hour", fmt.Sprintf("час должен быть в диапазоне 0..23, получено %d", b.Hour))
	}
	if b.Minute < 0 || b.Minute > 59 {
		return NewValidationError("minute", fmt.Sprintf("минута должна быть в диапазоне 0..59, получено %d", b.Minute))
	}
	if b.Second < 0 || b.Second > 59 {
		return NewValidationError("second", fmt.Sprintf("секунда должна быть в диапазоне 0..59, получено %d", b.Second))
	}
	if b.TimezoneOffset < -12 || b.TimezoneOffset > 14 {
		return NewValidationError("timezone_offset", fmt.Sprintf("смещение часового пояса должно быть в диапазоне -12..14, получено %g", b.TimezoneOffset))
	}
	return nil
}

// CacheKey возвращает ключ кэша по полному кортежу момента рождения
func (b *BirthMoment) CacheKey() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d@%+.2f",
		b.Year, b.Month, b.Day, b.Hour, b.Minute, b.Second, b.TimezoneOffset)
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}

// IsLeapYear определяет, является ли год високосным по григорианскому календарю
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
