package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Freeeeeet/thunders/internal/formatting"
	"github.com/Freeeeeet/thunders/internal/model"
	"github.com/Freeeeeet/thunders/internal/repository"
	"github.com/Freeeeeet/thunders/internal/signup"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GroupColors цвета групп на доске членства, по порядку переключения.
// Пустая строка - без цвета.
var GroupColors = []string{"red", "yellow", "green", "blue", "pink", ""}

// NextGroupColor возвращает следующий цвет в цикле
func NextGroupColor(current string) string {
	for i, c := range GroupColors {
		if c == current {
			return GroupColors[(i+1)%len(GroupColors)]
		}
	}
	return GroupColors[0]
}

// MonthRange сколько месяцев в выборе на доске (текущий посередине)
const MonthRange = 41

// MonthOption пункт выбора месяца на доске
type MonthOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// regularGuestSuffix метка регулярного члена в списке гостей
const regularGuestSuffix = "(정규)"

type MembershipService struct {
	members MembershipStore
	guests  GuestStore
	loc     *time.Location
	logger  *zap.Logger
}

func NewMembershipService(members MembershipStore, guests GuestStore, loc *time.Location, logger *zap.Logger) *MembershipService {
	return &MembershipService{
		members: members,
		guests:  guests,
		loc:     loc,
		logger:  logger,
	}
}

// Board возвращает доску членства за месяц: посещения, остаток и стаж
func (s *MembershipService) Board(ctx context.Context, month time.Time) ([]*model.MemberStatus, error) {
	month = firstOfMonth(month)

	apps, err := s.members.ListRegularByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("membership board: %w", err)
	}
	if len(apps) == 0 {
		return []*model.MemberStatus{}, nil
	}

	seen := make(map[string]bool, len(apps))
	var phones []string
	for _, app := range apps {
		if !seen[app.Phone] {
			seen[app.Phone] = true
			phones = append(phones, app.Phone)
		}
	}

	// стаж не критичен для доски: при ошибке показываем 1
	counts, err := s.members.CountRegularByPhones(ctx, phones, month)
	if err != nil {
		s.logger.Warn("Failed to count membership history", zap.Error(err))
		counts = map[string]int{}
	}

	board := make([]*model.MemberStatus, 0, len(apps))
	for _, app := range apps {
		cumulative := counts[app.Phone]
		if cumulative == 0 {
			cumulative = 1
		}
		board = append(board, &model.MemberStatus{
			MembershipApplication: app,
			CumulativeCount:       cumulative,
			PlanDisplay:           formatting.Plan(app.Plan),
			RemainingCount:        app.RemainingGames(),
		})
	}

	return board, nil
}

// MarkAttendance отмечает посещение игры участником
func (s *MembershipService) MarkAttendance(ctx context.Context, id uuid.UUID, now time.Time) (*model.MembershipApplication, error) {
	app, err := s.getMember(ctx, id)
	if err != nil {
		return nil, err
	}

	used, err := s.members.IncrementUsedCount(ctx, id, now)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("mark attendance: %w", err)
	}

	app.UsedCount = used
	app.LastGameDate = &now

	s.logger.Info("Attendance marked",
		zap.String("member_id", id.String()),
		zap.String("name", app.Name),
		zap.Int("used_count", used),
		zap.Int("remaining", app.RemainingGames()),
	)

	return app, nil
}

// AddAsGuest добавляет участника в список гостей текущей недели
func (s *MembershipService) AddAsGuest(ctx context.Context, id uuid.UUID, now time.Time) (*model.GuestApplication, error) {
	app, err := s.getMember(ctx, id)
	if err != nil {
		return nil, err
	}

	guest := &model.GuestApplication{
		ID:        uuid.New(),
		Name:      app.Name + regularGuestSuffix,
		Age:       app.Age,
		Position:  app.Position,
		Height:    app.HeightRange,
		Phone:     app.Phone,
		AppliedAt: now,
	}

	if err := s.guests.Create(ctx, guest); err != nil {
		return nil, fmt.Errorf("add member as guest: %w", err)
	}

	s.logger.Info("Member added as guest", zap.String("member_id", id.String()), zap.String("name", app.Name))
	return guest, nil
}

// SetGroupColor задаёт цвет группы выбранным участникам
func (s *MembershipService) SetGroupColor(ctx context.Context, ids []uuid.UUID, color string) (int64, error) {
	if !validGroupColor(color) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}

	var value *string
	if color != "" {
		value = &color
	}

	updated, err := s.members.SetGroupColor(ctx, ids, value)
	if err != nil {
		return 0, fmt.Errorf("set group color: %w", err)
	}

	s.logger.Info("Group color updated", zap.String("color", color), zap.Int64("members", updated))
	return updated, nil
}

// CycleGroupColor переключает цвет группы участника на следующий по кругу
func (s *MembershipService) CycleGroupColor(ctx context.Context, id uuid.UUID) (string, error) {
	app, err := s.getMember(ctx, id)
	if err != nil {
		return "", err
	}

	current := ""
	if app.GroupColor != nil {
		current = *app.GroupColor
	}
	next := NextGroupColor(current)

	if _, err := s.SetGroupColor(ctx, []uuid.UUID{id}, next); err != nil {
		return "", err
	}
	return next, nil
}

// Apply сохраняет заявку на членство с формы сайта
func (s *MembershipService) Apply(ctx context.Context, form signup.MembershipForm, now time.Time) (*model.MembershipApplication, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	month := firstOfMonth(now.In(s.loc))
	if form.TargetMonth != "" {
		parsed, err := formatting.ParseMonth(form.TargetMonth)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", signup.ErrMissingFields, err)
		}
		month = parsed
	}

	app := &model.MembershipApplication{
		Name:        form.Name,
		Phone:       form.Contact,
		Age:         form.Age,
		Position:    form.Position,
		HeightRange: form.Height,
		UniformSize: form.JerseySize,
		Plan:        form.Plan(),
		TargetMonth: month,
	}

	if err := s.members.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("apply membership: %w", err)
	}

	s.logger.Info("Membership application received",
		zap.String("id", app.ID.String()),
		zap.String("plan", app.Plan),
		zap.String("month", formatting.MonthValue(month)),
	)

	return app, nil
}

// MonthOptions возвращает rng месяцев с текущим посередине
func (s *MembershipService) MonthOptions(now time.Time, rng int) []MonthOption {
	if rng <= 0 {
		return nil
	}

	current := firstOfMonth(now.In(s.loc))
	half := rng / 2

	options := make([]MonthOption, 0, rng)
	for i := -half; i < rng-half; i++ {
		m := current.AddDate(0, i, 0)
		options = append(options, MonthOption{
			Label: formatting.MonthLabel(m),
			Value: formatting.MonthValue(m),
		})
	}

	return options
}

// CurrentMonth возвращает первое число текущего месяца в часовом поясе клуба
func (s *MembershipService) CurrentMonth(now time.Time) time.Time {
	return firstOfMonth(now.In(s.loc))
}

func (s *MembershipService) getMember(ctx context.Context, id uuid.UUID) (*model.MembershipApplication, error) {
	app, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}
	if app == nil {
		return nil, ErrMemberNotFound
	}
	return app, nil
}

func validGroupColor(color string) bool {
	for _, c := range GroupColors {
		if c == color {
			return true
		}
	}
	return false
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
