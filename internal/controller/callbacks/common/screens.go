package common

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/Freeeeeet/thunders/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/thunders/internal/formatting"
	"github.com/Freeeeeet/thunders/internal/model"
	"github.com/Freeeeeet/thunders/internal/service"
	"github.com/go-telegram/bot/models"
)

// MainMenuText текст главного меню администратора
const MainMenuText = "🏀 <b>썬더스 관리자 메뉴</b>\n\n" +
	"/guests - 이번 주 게스트 명단\n" +
	"/members - 이번 달 회원 현황\n" +
	"/card - 게스트 명단 이미지\n" +
	"/draft - 공지 초안 작성 (AI)\n" +
	"/cancel - 입력 취소\n" +
	"/help - 도움말"

// BuildMainMenu формирует главное меню
func BuildMainMenu(currentMonth time.Time) (string, *models.InlineKeyboardMarkup) {
	kb := keyboard.NewBuilder().
		Row(keyboard.GuestsButton()).
		Row(keyboard.MembersButton(MonthKey(currentMonth))).
		Row(keyboard.DraftButton()).
		Build()

	return MainMenuText, kb
}

// BuildRosterScreen формирует экран списка гостей недели
func BuildRosterScreen(roster *service.Roster) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🏀 <b>%s</b>\n", html.EscapeString(roster.Week.Label))
	fmt.Fprintf(&sb, "🕘 %s\n", html.EscapeString(formatting.FormatWindow(roster.Week.Start, roster.Week.End)))
	fmt.Fprintf(&sb, "👥 신청 %d명\n\n", len(roster.Guests))

	if len(roster.Guests) == 0 {
		sb.WriteString("신청자가 없습니다.")
	} else {
		for _, line := range formatting.RosterLines(roster.Guests) {
			sb.WriteString(html.EscapeString(line))
			sb.WriteString("\n")
		}
	}

	offset := ClampWeekOffset(roster.Offset)
	kb := keyboard.NewBuilder().
		AddWeekPagination(GuestsWeek, offset, MaxWeekOffset).
		Row(keyboard.Button("🖼 이미지로 보기", fmt.Sprintf("%s%d", RosterCard, offset))).
		AddBackToMainButton().
		Build()

	return strings.TrimRight(sb.String(), "\n"), kb
}

// BuildMembersScreen формирует доску членства за месяц с кнопками отметки посещения
func BuildMembersScreen(month time.Time, board []*model.MemberStatus) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📋 <b>%s 회원 현황</b>\n", formatting.MonthLabel(month))
	fmt.Fprintf(&sb, "정규 회원 %d명\n\n", len(board))

	b := keyboard.NewBuilder()

	if len(board) == 0 {
		sb.WriteString("등록된 회원이 없습니다.")
	}

	for i, m := range board {
		fmt.Fprintf(&sb, "%d. %s · %s · 사용 %d/%d · 남은 %d회 · %d개월차\n",
			i+1,
			html.EscapeString(m.Name),
			m.PlanDisplay,
			m.UsedCount,
			m.TotalGames(),
			m.RemainingCount,
			m.CumulativeCount,
		)

		if m.RemainingCount > 0 {
			b.Row(keyboard.Button(
				fmt.Sprintf("✅ %s 출석 (%d회 남음)", m.Name, m.RemainingCount),
				AttendCallback(m.ID, month),
			))
		}
	}

	kb := b.
		AddRow(keyboard.MonthPagination(MembersMonth, month)).
		AddBackToMainButton().
		Build()

	return strings.TrimRight(sb.String(), "\n"), kb
}
