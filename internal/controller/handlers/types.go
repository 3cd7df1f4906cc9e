package handlers

import (
	"time"

	"go.uber.org/zap"

	"github.com/Freeeeeet/meeting_bot/internal/controller/state"
	"github.com/Freeeeeet/meeting_bot/internal/service"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	userService    *service.UserService
	meetingService *service.MeetingService
	stateManager   *state.Manager
	historyLimit   int
	now            func() time.Time
	logger         *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	userService *service.UserService,
	meetingService *service.MeetingService,
	stateManager *state.Manager,
	historyLimit int,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		userService:    userService,
		meetingService: meetingService,
		stateManager:   stateManager,
		historyLimit:   historyLimit,
		now:            time.Now,
		logger:         logger,
	}
}
