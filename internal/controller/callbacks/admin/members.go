package admin

import (
	"fmt"
	"time"

	"github.com/Freeeeeet/thunders/internal/controller/callbacks/common"
	"go.uber.org/zap"
)

// HandleMembersMonth показывает доску членства: "members_month:2025-03"
func HandleMembersMonth(hc *common.HandlerContext) {
	month, err := common.ParseMonthKey(hc.Data(), common.MembersMonth)
	if err != nil {
		common.HandleError(hc, err, "parse month")
		return
	}

	if err := showBoard(hc, month); err != nil {
		common.HandleError(hc, err, "load membership board")
		return
	}
	hc.Answer("")
}

// HandleMemberAttend отмечает посещение: "member_attend:<uuid>:2025-03"
func HandleMemberAttend(hc *common.HandlerContext) {
	id, month, err := common.ParseAttendCallback(hc.Data())
	if err != nil {
		common.HandleError(hc, err, "parse attend callback")
		return
	}

	member, err := hc.Handler.MembershipService.MarkAttendance(hc.Ctx, id, hc.Handler.Now())
	if err != nil {
		common.HandleError(hc, err, "mark attendance")
		return
	}

	if err := showBoard(hc, month); err != nil {
		hc.Handler.Logger.Error("Failed to refresh membership board", zap.Error(err))
	}
	hc.Answer(fmt.Sprintf("✅ %s 출석 (%d회 남음)", member.Name, member.RemainingGames()))
}

func showBoard(hc *common.HandlerContext, month time.Time) error {
	board, err := hc.Handler.MembershipService.Board(hc.Ctx, month)
	if err != nil {
		return err
	}

	text, kb := common.BuildMembersScreen(month, board)
	return hc.EditMessage(text, kb)
}
