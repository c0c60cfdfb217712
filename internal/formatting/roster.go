package formatting

import (
	"fmt"
	"strings"

	"github.com/Freeeeeet/thunders/internal/gameweek"
	"github.com/Freeeeeet/thunders/internal/model"
)

// RosterLine строка списка гостей: "1. 김철수 · 30 · 178cm · 가드"
func RosterLine(n int, g *model.GuestApplication) string {
	parts := []string{g.Name}
	if g.Age != "" {
		parts = append(parts, g.Age)
	}
	if g.Height != "" {
		parts = append(parts, Height(g.Height))
	}
	if g.Position != "" {
		parts = append(parts, Position(g.Position))
	}
	return fmt.Sprintf("%d. %s", n, strings.Join(parts, " · "))
}

// RosterLines нумерованный список гостей
func RosterLines(guests []*model.GuestApplication) []string {
	lines := make([]string, 0, len(guests))
	for i, g := range guests {
		lines = append(lines, RosterLine(i+1, g))
	}
	return lines
}

// RosterDigest итог недели после закрытия набора
func RosterDigest(week gameweek.Week, guests []*model.GuestApplication) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🏀 %s 게스트 모집 마감\n", week.Label)
	fmt.Fprintf(&sb, "%s\n", FormatWindow(week.Start, week.End))
	fmt.Fprintf(&sb, "신청 %d명\n", len(guests))

	if len(guests) == 0 {
		sb.WriteString("\n신청자가 없습니다.")
		return sb.String()
	}

	sb.WriteString("\n")
	sb.WriteString(strings.Join(RosterLines(guests), "\n"))
	return sb.String()
}
