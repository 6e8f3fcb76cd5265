// Package stats contiene la aritmética pura de los reportes: rangos de fecha
// canónicos (hoy / semana / mes) y el cálculo de variación porcentual entre
// períodos. Sin acceso a almacenamiento; todo es función de sus argumentos.
package stats

import (
	"time"

	"github.com/tu-usuario/petshop-pos/internal/domain"
)

// Period período canónico de los reportes.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// ParsePeriod valida el período recibido por query param. Vacío equivale a "today".
func ParsePeriod(s string) (Period, error) {
	switch s {
	case "", string(PeriodToday):
		return PeriodToday, nil
	case string(PeriodWeek):
		return PeriodWeek, nil
	case string(PeriodMonth):
		return PeriodMonth, nil
	}
	return "", domain.ErrInvalidInput
}

// Range intervalo cerrado [Start, End] para filtrar registros por createdAt.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains indica si t cae dentro del rango (ambos extremos inclusive).
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// RangeFor devuelve el rango del período que contiene a now:
//   - today: [medianoche, medianoche siguiente − 1ms]
//   - week:  [domingo más reciente a medianoche, +7 días a medianoche]
//   - month: [día 1 a las 00:00, último día a las 23:59:59]
//
// La semana incluye la medianoche del domingo siguiente porque el filtro es
// inclusive en ambos extremos.
func RangeFor(p Period, now time.Time) Range {
	today := midnight(now)
	switch p {
	case PeriodWeek:
		weekStart := today.AddDate(0, 0, -int(today.Weekday()))
		return Range{Start: weekStart, End: weekStart.AddDate(0, 0, 7)}
	case PeriodMonth:
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Second)
		return Range{Start: monthStart, End: monthEnd}
	default: // today
		return Range{Start: today, End: today.Add(24*time.Hour - time.Millisecond)}
	}
}

// PreviousRangeFor devuelve la ventana equivalente inmediatamente anterior:
// ayer, la semana domingo-a-domingo previa o el mes calendario previo.
func PreviousRangeFor(p Period, now time.Time) Range {
	today := midnight(now)
	switch p {
	case PeriodWeek:
		weekStart := today.AddDate(0, 0, -int(today.Weekday())-7)
		return Range{Start: weekStart, End: weekStart.AddDate(0, 0, 7)}
	case PeriodMonth:
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
		monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Second)
		return Range{Start: monthStart, End: monthEnd}
	default: // today → ayer
		yesterday := today.AddDate(0, 0, -1)
		return Range{Start: yesterday, End: yesterday.Add(24*time.Hour - time.Millisecond)}
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
