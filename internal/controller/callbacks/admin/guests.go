package admin

import (
	"fmt"

	"github.com/Freeeeeet/thunders/internal/controller/callbacks/common"
	"go.uber.org/zap"
)

// HandleGuestsWeek показывает список гостей недели: "guests_week:<offset>"
func HandleGuestsWeek(hc *common.HandlerContext) {
	offset, err := common.ParseWeekOffset(hc.Data(), common.GuestsWeek)
	if err != nil {
		common.HandleError(hc, err, "parse week offset")
		return
	}

	roster, err := hc.Handler.RosterService.GuestsAt(hc.Ctx, hc.Handler.Now(), offset)
	if err != nil {
		common.HandleError(hc, err, "load roster")
		return
	}

	text, kb := common.BuildRosterScreen(roster)
	if err := hc.EditMessage(text, kb); err != nil {
		hc.Handler.Logger.Error("Failed to edit roster message", zap.Error(err))
	}
	hc.Answer("")
}

// HandleRosterCard отправляет список гостей недели картинкой: "roster_card:<offset>"
func HandleRosterCard(hc *common.HandlerContext) {
	offset, err := common.ParseWeekOffset(hc.Data(), common.RosterCard)
	if err != nil {
		common.HandleError(hc, err, "parse week offset")
		return
	}

	roster, err := hc.Handler.RosterService.GuestsAt(hc.Ctx, hc.Handler.Now(), offset)
	if err != nil {
		common.HandleError(hc, err, "load roster")
		return
	}

	img, err := common.GenerateRosterImage(roster, hc.Handler.FontPath)
	if err != nil {
		common.HandleError(hc, err, "render roster card")
		return
	}

	_, kb := common.BuildRosterScreen(roster)
	caption := fmt.Sprintf("🏀 <b>%s</b> · %d명", roster.Week.Label, len(roster.Guests))
	if err := hc.SendPhoto("roster.png", img, caption, kb); err != nil {
		common.HandleError(hc, err, "send roster card")
		return
	}
	hc.Answer("")
}
