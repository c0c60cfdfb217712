package admin

import (
	"github.com/Freeeeeet/thunders/internal/assist"
	"github.com/Freeeeeet/thunders/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/thunders/internal/controller/callbacks/common"
	"github.com/Freeeeeet/thunders/internal/controller/callbacks/common/keyboard"
	"go.uber.org/zap"
)

// DraftPrompt подсказка при вводе темы объявления
const DraftPrompt = "✍️ <b>공지 초안 작성</b>\n\n" +
	"공지에 들어갈 내용을 입력해주세요.\n" +
	"예: 이번 주 금요일 8시, 2,3파전, 장소 변경\n\n" +
	"날짜를 입력하지 않으면 다가오는 마감일을 사용합니다."

// HandleDraftNotice переводит администратора в ввод темы объявления
func HandleDraftNotice(hc *common.HandlerContext) {
	if !hc.Handler.Assistant.Enabled() {
		hc.AnswerAlert(common.ErrorMessage(assist.ErrNotConfigured))
		return
	}

	hc.SetState(callbacktypes.StateDraftNotice)

	kb := keyboard.NewBuilder().
		Row(keyboard.CancelButton(common.BackToMain)).
		Build()
	if err := hc.SendMessage(DraftPrompt, kb); err != nil {
		hc.Handler.Logger.Error("Failed to send draft prompt", zap.Error(err))
	}
	hc.Answer("")
}
