package handlers

import (
	"time"

	"github.com/Freeeeeet/thunders/internal/assist"
	"github.com/Freeeeeet/thunders/internal/controller/state"
	"github.com/Freeeeeet/thunders/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	rosterService     *service.RosterService
	membershipService *service.MembershipService
	adminService      *service.AdminService
	assistant         *assist.Assistant
	stateManager      *state.Manager
	fontPath          string
	logger            *zap.Logger
	now               func() time.Time
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	rosterService *service.RosterService,
	membershipService *service.MembershipService,
	adminService *service.AdminService,
	assistant *assist.Assistant,
	stateManager *state.Manager,
	fontPath string,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		rosterService:     rosterService,
		membershipService: membershipService,
		adminService:      adminService,
		assistant:         assistant,
		stateManager:      stateManager,
		fontPath:          fontPath,
		logger:            logger,
		now:               time.Now,
	}
}
