// Пакет astro - чистое вычислительное ядро китайской астрологии:
// календарная математика, таблицы стволов и ветвей, упрощённая астрономия,
// Ба-Цзы, баланс стихий, девятизвёздная ци, гороскопы и совместимость.
// Пакет не выполняет ввод-вывод и не ведёт журналирование: каждая операция -
// детерминированная чистая функция над данными в памяти.
package astro

import (
	"errors"
	"math"
	"time"
)

// DegToRad переводит градусы в радианы
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg переводит радианы в градусы
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeAngle сворачивает угол в диапазон [0, 360)
func NormalizeAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// ErrZeroDivisor возвращается Mod при нулевом делителе
var ErrZeroDivisor = errors.New("деление по модулю на ноль")

// Mod - истинное математическое деление по модулю: результат неотрицателен
// при положительном делителе. Нулевой делитель - ошибка, а не NaN.
func Mod(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrZeroDivisor
	}
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m, nil
}

// modInt - целочисленный вариант истинного модуля для положительного делителя
func modInt(a, b int) int {
	return ((a % b) + b) % b
}

// GregorianToJulianDay переводит григорианскую дату-время в непрерывный
// юлианский день. Смещение часового пояса применяется сдвигом к UTC с
// переносом дня/месяца/года до стандартной формулы; месяцы <=2 считаются
// 13-м и 14-м месяцами предыдущего года.
func GregorianToJulianDay(year, month, day, hour, minute, second int, tzOffsetHours float64) float64 {
	// Сдвиг к UTC: перенос суток выполняем до календарной формулы
	totalHours := float64(hour) + float64(minute)/60 + float64(second)/3600 - tzOffsetHours
	dayShift := int(math.Floor(totalHours / 24))
	totalHours -= float64(dayShift) * 24

	t := time.Date(year, time.Month(month), day+dayShift, 0, 0, 0, 0, time.UTC)
	y, m, d := t.Year(), int(t.Month()), t.Day()

	if m <= 2 {
		y--
		m += 12
	}
	a := y / 100
	b := 2 - a + a/4

	jd := math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(d) + float64(b) - 1524.5

	return jd + totalHours/24
}

// JulianDayToGregorian - обратное преобразование: юлианский день в дату-время
// UTC с разложением дробной части суток на часы, минуты и секунды.
// Свойство обратимости выполняется с точностью до секунды.
func JulianDayToGregorian(jd float64) (year, month, day, hour, minute, second int) {
	z := math.Floor(jd + 0.5)
	f := jd + 0.5 - z

	a := z
	if z >= 2299161 {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day = int(b - d - math.Floor(30.6001*e))
	if e < 14 {
		month = int(e) - 1
	} else {
		month = int(e) - 13
	}
	if month > 2 {
		year = int(c) - 4716
	} else {
		year = int(c) - 4715
	}

	// Дробная часть суток в секундах, с округлением до ближайшей секунды
	totalSeconds := int(math.Round(f * 86400))
	if totalSeconds >= 86400 {
		totalSeconds -= 86400
		t := time.Date(year, time.Month(month), day+1, 0, 0, 0, 0, time.UTC)
		year, month, day = t.Year(), int(t.Month()), t.Day()
	}
	hour = totalSeconds / 3600
	minute = (totalSeconds % 3600) / 60
	second = totalSeconds % 60
	return
}

// TimeToJulianDay переводит момент time.Time (в его собственной зоне,
// трактуемой как UTC-эквивалент после перевода) в юлианский день
func TimeToJulianDay(t time.Time) float64 {
	u := t.UTC()
	return GregorianToJulianDay(u.Year(), int(u.Month()), u.Day(), u.Hour(), u.Minute(), u.Second(), 0)
}
