package admin

import (
	"github.com/Freeeeeet/thunders/internal/controller/callbacks/common"
	"go.uber.org/zap"
)

// HandleMainMenu возвращает администратора к главному меню и сбрасывает диалог
func HandleMainMenu(hc *common.HandlerContext) {
	hc.Handler.StateManager.ClearState(hc.TelegramID)

	text, kb := common.BuildMainMenu(hc.Handler.MembershipService.CurrentMonth(hc.Handler.Now()))
	if err := hc.EditMessage(text, kb); err != nil {
		hc.Handler.Logger.Error("Failed to show main menu", zap.Error(err))
	}
	hc.Answer("")
}
