package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/thunders/internal/assist"
	"github.com/Freeeeeet/thunders/internal/controller/callbacks"
	"github.com/Freeeeeet/thunders/internal/controller/handlers"
	"github.com/Freeeeeet/thunders/internal/controller/state"
	"github.com/Freeeeeet/thunders/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	stateManager    *state.Manager
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	rosterService *service.RosterService,
	membershipService *service.MembershipService,
	adminService *service.AdminService,
	assistant *assist.Assistant,
	fontPath string,
	logger *zap.Logger,
) *BotController {
	// Создаём менеджер состояний
	stateManager := state.NewManager(state.DefaultTTL)

	// Создаём обработчики команд
	cmdHandlers := handlers.NewHandlers(
		rosterService,
		membershipService,
		adminService,
		assistant,
		stateManager,
		fontPath,
		logger,
	)

	// Создаём callback handler с зависимостями
	callbackHandler := callbacks.NewHandler(
		rosterService,
		membershipService,
		adminService,
		assistant,
		state.NewAdapter(stateManager),
		fontPath,
		logger,
	)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		stateManager:    stateManager,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)

	// Команды администратора
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/guests", bot.MatchTypeExact, c.handlers.HandleGuests)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/members", bot.MatchTypeExact, c.handlers.HandleMembers)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/card", bot.MatchTypeExact, c.handlers.HandleCard)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/draft", bot.MatchTypeExact, c.handlers.HandleDraft)

	// Обработчик текстовых сообщений (для диалогов с состояниями)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🏀 메인 메뉴"},
		{Command: "guests", Description: "👥 이번 주 게스트 명단"},
		{Command: "members", Description: "📋 이번 달 회원 현황"},
		{Command: "card", Description: "🖼 게스트 명단 이미지"},
		{Command: "draft", Description: "✍️ AI 공지 초안"},
		{Command: "cancel", Description: "❌ 입력 취소"},
		{Command: "help", Description: "❓ 도움말"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Notify отправляет текст в чат, используется планировщиком дайджеста
func (c *BotController) Notify(ctx context.Context, chatID int64, text string) error {
	_, err := c.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("notify chat %d: %w", chatID, err)
	}
	return nil
}

// Start запускает бота и блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")

	go c.sweepStates(ctx)

	c.bot.Start(ctx)
	return nil
}

// sweepStates периодически чистит брошенные диалоги
func (c *BotController) sweepStates(ctx context.Context) {
	ticker := time.NewTicker(state.DefaultTTL)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := c.stateManager.Sweep(); removed > 0 {
				c.logger.Debug("Expired dialog states removed", zap.Int("count", removed))
			}
		}
	}
}
