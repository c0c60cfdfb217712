package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Freeeeeet/thunders/internal/gameweek"
	"github.com/Freeeeeet/thunders/internal/model"
	"github.com/Freeeeeet/thunders/internal/service"
	"github.com/Freeeeeet/thunders/internal/signup"
	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Зависимости API. Реализуются сервисами из internal/service и internal/assist

type Roster interface {
	Weeks(now time.Time, count int) ([]gameweek.Week, error)
	GuestsAt(ctx context.Context, now time.Time, offset int) (*service.Roster, error)
	ApplyGuest(ctx context.Context, form signup.GuestForm, now time.Time) ([]*model.GuestApplication, error)
	HideGuest(ctx context.Context, id uuid.UUID) error
}

type Memberships interface {
	Board(ctx context.Context, month time.Time) ([]*model.MemberStatus, error)
	MarkAttendance(ctx context.Context, id uuid.UUID, now time.Time) (*model.MembershipApplication, error)
	AddAsGuest(ctx context.Context, id uuid.UUID, now time.Time) (*model.GuestApplication, error)
	SetGroupColor(ctx context.Context, ids []uuid.UUID, color string) (int64, error)
	CycleGroupColor(ctx context.Context, id uuid.UUID) (string, error)
	Apply(ctx context.Context, form signup.MembershipForm, now time.Time) (*model.MembershipApplication, error)
	CurrentMonth(now time.Time) time.Time
	MonthOptions(now time.Time, rng int) []service.MonthOption
}

type IcnMembers interface {
	ActiveMembers(ctx context.Context) ([]*model.IcnMember, error)
	AddAsGuest(ctx context.Context, id uuid.UUID, now time.Time) (*model.GuestApplication, error)
}

type Videos interface {
	Create(ctx context.Context, title, description, rawURL string) (*model.YoutubePost, error)
	Page(ctx context.Context, search, cursor string) (*service.BoardPage, error)
}

type Contacts interface {
	Create(ctx context.Context, name, contact, message string) (*model.ContactMessage, error)
	List(ctx context.Context) ([]*model.ContactMessage, error)
}

type Assistant interface {
	Draft(ctx context.Context, input string, now time.Time) (string, error)
}

// Deps сервисы, которые обслуживает API
type Deps struct {
	Roster      Roster
	Memberships Memberships
	Icn         IcnMembers
	Videos      Videos
	Contacts    Contacts
	Assistant   Assistant
}

// Options настройки API
type Options struct {
	AdminToken    string
	GuestChatURL  string
	MemberChatURL string
	WeeksCount    int
}

type Server struct {
	router *mux.Router
	deps   Deps
	opts   Options
	logger *zap.Logger
	now    func() time.Time
}

func NewServer(deps Deps, opts Options, logger *zap.Logger) *Server {
	if opts.WeeksCount <= 0 {
		opts.WeeksCount = 8
	}

	s := &Server{
		router: mux.NewRouter().StrictSlash(true),
		deps:   deps,
		opts:   opts,
		logger: logger,
		now:    time.Now,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	// Публичные маршруты сайта
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
	api.HandleFunc("/game-weeks", s.handleGameWeeks).Methods("GET")
	api.HandleFunc("/guest-applications", s.handleCreateGuestApplication).Methods("POST")
	api.HandleFunc("/membership-applications", s.handleCreateMembershipApplication).Methods("POST")
	api.HandleFunc("/contact-messages", s.handleCreateContactMessage).Methods("POST")
	api.HandleFunc("/signup/membership-message", s.handleMembershipMessage).Methods("POST")
	api.HandleFunc("/signup/guest-message", s.handleGuestMessage).Methods("POST")
	api.HandleFunc("/youtube-posts", s.handleListYoutubePosts).Methods("GET")

	// Админка
	admin := api.NewRoute().Subrouter()
	admin.Use(s.requireAdmin)

	admin.HandleFunc("/guest-applications", s.handleListGuestApplications).Methods("GET")
	admin.HandleFunc("/guest-applications/{id}", s.handleHideGuestApplication).Methods("DELETE")
	admin.HandleFunc("/membership-applications", s.handleMembershipBoard).Methods("GET")
	admin.HandleFunc("/membership-applications/group-color", s.handleSetGroupColor).Methods("POST")
	admin.HandleFunc("/membership-applications/{id}/group-color/next", s.handleCycleGroupColor).Methods("POST")
	admin.HandleFunc("/membership-applications/{id}/attendance", s.handleMarkAttendance).Methods("POST")
	admin.HandleFunc("/membership-applications/{id}/guest", s.handleMemberAsGuest).Methods("POST")
	admin.HandleFunc("/icn-members", s.handleListIcnMembers).Methods("GET")
	admin.HandleFunc("/icn-members/{id}/guest", s.handleIcnMemberAsGuest).Methods("POST")
	admin.HandleFunc("/youtube-posts", s.handleCreateYoutubePost).Methods("POST")
	admin.HandleFunc("/contact-messages", s.handleListContactMessages).Methods("GET")
	admin.HandleFunc("/ai-assist", s.handleAIAssist).Methods("POST")

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
}

// Handler собирает роутер с CORS, восстановлением после паники и access log
func (s *Server) Handler() http.Handler {
	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)

	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(zap.NewStdLog(s.logger.Named("http.recovery"))),
	)

	return recovery(corsHandler(s.router))
}

// Start запускает HTTP сервер и останавливает его при отмене ctx
func (s *Server) Start(ctx context.Context, addr string, accessLog io.Writer) error {
	handler := s.Handler()
	if accessLog != nil {
		handler = handlers.LoggingHandler(accessLog, handler)
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.logger.Info("Shutting down HTTP server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
