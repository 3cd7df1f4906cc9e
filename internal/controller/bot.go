package controller

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Freeeeeet/meeting_bot/internal/controller/handlers"
	"github.com/Freeeeeet/meeting_bot/internal/controller/state"
	"github.com/Freeeeeet/meeting_bot/internal/service"
)

type BotController struct {
	bot      *bot.Bot
	handlers *handlers.Handlers
	logger   *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	userService *service.UserService,
	meetingService *service.MeetingService,
	stateManager *state.Manager,
	historyLimit int,
	logger *zap.Logger,
) *BotController {
	cmdHandlers := handlers.NewHandlers(
		userService,
		meetingService,
		stateManager,
		historyLimit,
		logger,
	)

	return &BotController{
		bot:      botInstance,
		handlers: cmdHandlers,
		logger:   logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)

	// Поиск времени встречи
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/newmeeting", bot.MatchTypePrefix, c.handlers.HandleNewMeeting)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/addoptional", bot.MatchTypePrefix, c.handlers.HandleAddOptional)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/draft", bot.MatchTypeExact, c.handlers.HandleDraft)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/find", bot.MatchTypeExact, c.handlers.HandleFind)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/history", bot.MatchTypeExact, c.handlers.HandleHistory)

	// Файлы календаря
	c.bot.RegisterHandlerMatchFunc(handlers.IsDocument, c.handlers.HandleDocument)

	// Обработчик текстовых сообщений (для диалогов с состояниями)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.handlers.HandleCallbackQuery)

	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "newmeeting", Description: "🗓 Новая встреча"},
		{Command: "addoptional", Description: "🙋 Добавить желательных участников"},
		{Command: "draft", Description: "📝 Черновик встречи"},
		{Command: "find", Description: "🔍 Найти время"},
		{Command: "history", Description: "🕘 Последние поиски"},
		{Command: "cancel", Description: "✖️ Удалить черновик"},
		{Command: "help", Description: "❓ Справка по командам"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("Bot commands menu set")
	return nil
}

// Start запускает long polling и блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot")
	c.bot.Start(ctx)
	return nil
}
