package formatting

import (
	"fmt"
	"time"

	"github.com/Freeeeeet/thunders/internal/model"
)

// Plan возвращает подпись тарифа
func Plan(plan string) string {
	switch plan {
	case model.PlanRegular2:
		return "2회"
	case model.PlanRegular4:
		return "4회"
	case model.PlanGuestOnce:
		return "게스트"
	}
	return plan
}

var membershipText = map[string]string{
	"regular":     "정규 회원 월2회",
	"dormant":     "정규 회원 월4회",
	"firefighter": "입단전 게스트 신청",
}

// MembershipText возвращает подпись типа членства из формы
func MembershipText(kind string) string {
	if text, ok := membershipText[kind]; ok {
		return text
	}
	return kind
}

// monthLayout формат значения target_month
const monthLayout = "2006-01-02"

// MonthValue возвращает первое число месяца в формате "2025-03-01"
func MonthValue(t time.Time) string {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).Format(monthLayout)
}

// MonthLabel возвращает подпись месяца "2025년 3월"
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%d년 %d월", t.Year(), int(t.Month()))
}

// ParseMonth разбирает "2025-03-01" или "2025-03" в первое число месяца
func ParseMonth(value string) (time.Time, error) {
	for _, layout := range []string{monthLayout, "2006-01"} {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid month %q", value)
}
