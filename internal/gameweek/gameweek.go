package gameweek

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	// DeadlineWeekday день недели, в который закрывается набор
	DeadlineWeekday = time.Friday
	// DeadlineHour час закрытия набора по местному времени
	DeadlineHour = 21
	// DaysPerWeek длина недели набора в календарных днях
	DaysPerWeek = 7
)

var (
	ErrInvalidCount = errors.New("week count must be positive")
	ErrNilLocation  = errors.New("time zone location is required")
)

// isoMillis формат, в котором границы недели уходят в запросы и JSON
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Week неделя набора гостей, закрывающаяся дедлайном в пятницу 21:00
type Week struct {
	Label string
	Start time.Time // включительно, полночь за 6 дней до дедлайна
	End   time.Time // включительно, сам дедлайн
}

// StartUTC возвращает начало недели в ISO-8601 UTC
func (w Week) StartUTC() string {
	return w.Start.UTC().Format(isoMillis)
}

// EndUTC возвращает конец недели в ISO-8601 UTC
func (w Week) EndUTC() string {
	return w.End.UTC().Format(isoMillis)
}

// Contains проверяет попадает ли момент в окно недели (границы включительно)
func (w Week) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

func (w Week) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Label     string `json:"label"`
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}{
		Label:     w.Label,
		StartDate: w.StartUTC(),
		EndDate:   w.EndUTC(),
	})
}

// Calculator считает недели набора в заданном часовом поясе.
// Не хранит состояния, безопасен для конкурентного использования.
type Calculator struct {
	loc *time.Location
}

// New создаёт калькулятор для часового пояса клуба
func New(loc *time.Location) (*Calculator, error) {
	if loc == nil {
		return nil, ErrNilLocation
	}
	return &Calculator{loc: loc}, nil
}

// Location возвращает часовой пояс калькулятора
func (c *Calculator) Location() *time.Location {
	return c.loc
}

// CurrentDeadline возвращает ближайший дедлайн (пятница 21:00 по местному времени).
// В пятницу после 21:00 дедлайном становится следующая пятница.
func (c *Calculator) CurrentDeadline(ref time.Time) time.Time {
	local := ref.In(c.loc)

	var daysUntilFriday int
	switch weekday := local.Weekday(); {
	case weekday == DeadlineWeekday && local.Hour() < DeadlineHour:
		daysUntilFriday = 0
	case weekday == DeadlineWeekday:
		daysUntilFriday = DaysPerWeek
	case weekday == time.Saturday:
		daysUntilFriday = 6
	case weekday == time.Sunday:
		daysUntilFriday = 5
	default:
		daysUntilFriday = int(DeadlineWeekday) - int(weekday)
	}

	return c.at(local, daysUntilFriday, DeadlineHour)
}

// WeekFor строит неделю, которая закрывается данным дедлайном
func (c *Calculator) WeekFor(deadline time.Time) Week {
	local := deadline.In(c.loc)

	return Week{
		Label: Label(local.Year(), local.Month(), local.Day()),
		Start: c.at(local, -(DaysPerWeek - 1), 0),
		End:   local,
	}
}

// GenerateWeeks возвращает count последовательных недель, начиная с текущей
func (c *Calculator) GenerateWeeks(ref time.Time, count int) ([]Week, error) {
	if count <= 0 {
		return nil, fmt.Errorf("generate weeks: %w (got %d)", ErrInvalidCount, count)
	}

	deadline := c.CurrentDeadline(ref)

	weeks := make([]Week, 0, count)
	for i := 0; i < count; i++ {
		weeks = append(weeks, c.WeekFor(c.shift(deadline, i)))
	}

	return weeks, nil
}

// WeekAt возвращает неделю со смещением offset относительно текущей
// (0 - текущая, -1 - прошлая, 1 - следующая)
func (c *Calculator) WeekAt(ref time.Time, offset int) Week {
	return c.WeekFor(c.shift(c.CurrentDeadline(ref), offset))
}

// shift сдвигает дедлайн на weeks недель по местному календарю,
// чтобы дедлайн оставался в 21:00 и при переходе на летнее время
func (c *Calculator) shift(deadline time.Time, weeks int) time.Time {
	local := deadline.In(c.loc)
	return c.at(local, weeks*DaysPerWeek, local.Hour())
}

// at возвращает момент hour:00:00 через days календарных дней от local
func (c *Calculator) at(local time.Time, days, hour int) time.Time {
	return time.Date(local.Year(), local.Month(), local.Day()+days, hour, 0, 0, 0, c.loc)
}

// Label формирует подпись недели "<год>년 <месяц>월 <n>주차".
// n = ceil(day/7): грубое деление месяца, не ISO-неделя.
func Label(year int, month time.Month, day int) string {
	return fmt.Sprintf("%d년 %d월 %d주차", year, int(month), WeekOfMonth(day))
}

// WeekOfMonth номер недели месяца: дни 1-7 -> 1, 8-14 -> 2 и т.д.
func WeekOfMonth(day int) int {
	return (day + DaysPerWeek - 1) / DaysPerWeek
}
