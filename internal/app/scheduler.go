package app

import (
	"context"
	"sync"
	"time"

	"github.com/Freeeeeet/thunders/internal/formatting"
	"github.com/Freeeeeet/thunders/internal/gameweek"
	"github.com/Freeeeeet/thunders/internal/model"
	"go.uber.org/zap"
)

// RosterSource источник недельного списка гостей
type RosterSource interface {
	Calculator() *gameweek.Calculator
	GuestsForWeek(ctx context.Context, week gameweek.Week) ([]*model.GuestApplication, error)
}

// ChatSource чаты, в которые уходит рассылка
type ChatSource interface {
	ChatIDs(ctx context.Context) ([]int64, error)
}

// Notifier доставляет текст в чат
type Notifier interface {
	Notify(ctx context.Context, chatID int64, text string) error
}

// Scheduler управляет фоновыми задачами
type Scheduler struct {
	roster   RosterSource
	chats    ChatSource
	notifier Notifier
	logger   *zap.Logger

	now      func() time.Time
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewScheduler создаёт новый планировщик
func NewScheduler(roster RosterSource, chats ChatSource, notifier Notifier, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		roster:   roster,
		chats:    chats,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
		stopChan: make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler")

	s.wg.Add(1)
	go s.runDeadlineDigestTask(ctx)
}

// Stop останавливает фоновые задачи и ждёт их завершения
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Info("Stopping background scheduler")
		close(s.stopChan)
	})
	s.wg.Wait()
}

// runDeadlineDigestTask ждёт очередного дедлайна и рассылает итог недели
func (s *Scheduler) runDeadlineDigestTask(ctx context.Context) {
	defer s.wg.Done()

	var last time.Time
	for {
		deadline := s.nextDeadline(last)
		wait := deadline.Sub(s.now())

		s.logger.Info("Next deadline digest scheduled",
			zap.Time("deadline", deadline),
			zap.Duration("in", wait),
		)

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
			s.SendDigest(ctx, deadline)
			last = deadline
		case <-s.stopChan:
			timer.Stop()
			s.logger.Info("Deadline digest task stopped")
			return
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("Deadline digest task cancelled")
			return
		}
	}
}

// nextDeadline возвращает дедлайн строго позже уже разосланного last.
// Если часы отстали и снова указывают на ту же пятницу, берётся следующая неделя
func (s *Scheduler) nextDeadline(last time.Time) time.Time {
	deadline := s.roster.Calculator().CurrentDeadline(s.now())
	if !last.IsZero() && !deadline.After(last) {
		deadline = last.AddDate(0, 0, 7)
	}
	return deadline
}

// SendDigest отправляет список недели, закрытой дедлайном, всем администраторам.
// Возвращает число успешных отправок
func (s *Scheduler) SendDigest(ctx context.Context, deadline time.Time) int {
	week := s.roster.Calculator().WeekFor(deadline)

	guests, err := s.roster.GuestsForWeek(ctx, week)
	if err != nil {
		s.logger.Error("Failed to load roster for digest", zap.String("week", week.Label), zap.Error(err))
		return 0
	}

	chatIDs, err := s.chats.ChatIDs(ctx)
	if err != nil {
		s.logger.Error("Failed to load digest recipients", zap.Error(err))
		return 0
	}

	text := formatting.RosterDigest(week, guests)

	sent := 0
	for _, chatID := range chatIDs {
		if err := s.notifier.Notify(ctx, chatID, text); err != nil {
			s.logger.Warn("Failed to deliver digest", zap.Int64("chat_id", chatID), zap.Error(err))
			continue
		}
		sent++
	}

	s.logger.Info("Deadline digest sent",
		zap.String("week", week.Label),
		zap.Int("guests", len(guests)),
		zap.Int("recipients", sent),
	)

	return sent
}
