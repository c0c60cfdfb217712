package httpapi

import (
	"net/http"
	"strconv"

	"github.com/Freeeeeet/thunders/internal/signup"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /api/game-weeks?count=8
func (s *Server) handleGameWeeks(w http.ResponseWriter, r *http.Request) {
	count := s.opts.WeeksCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "count must be a number")
			return
		}
		count = n
	}

	weeks, err := s.deps.Roster.Weeks(s.now(), count)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, weeks)
}

func (s *Server) handleCreateGuestApplication(w http.ResponseWriter, r *http.Request) {
	var form signup.GuestForm
	if err := decodeJSON(r, &form); err != nil {
		s.fail(w, r, err)
		return
	}

	apps, err := s.deps.Roster.ApplyGuest(r.Context(), form, s.now())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":      true,
		"applications": apps,
		"message":      form.Message(),
		"redirect_url": s.opts.GuestChatURL,
	})
}

func (s *Server) handleCreateMembershipApplication(w http.ResponseWriter, r *http.Request) {
	var form signup.MembershipForm
	if err := decodeJSON(r, &form); err != nil {
		s.fail(w, r, err)
		return
	}

	app, err := s.deps.Memberships.Apply(r.Context(), form, s.now())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":      true,
		"application":  app,
		"message":      form.Message(),
		"redirect_url": s.opts.MemberChatURL,
	})
}

func (s *Server) handleCreateContactMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Contact string `json:"contact"`
		Message string `json:"message"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	msg, err := s.deps.Contacts.Create(r.Context(), req.Name, req.Contact, req.Message)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "message": msg})
}

// Превью сообщений для открытого чата, пока пользователь заполняет форму
func (s *Server) handleMembershipMessage(w http.ResponseWriter, r *http.Request) {
	var form signup.MembershipForm
	if err := decodeJSON(r, &form); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": form.Message()})
}

func (s *Server) handleGuestMessage(w http.ResponseWriter, r *http.Request) {
	var form signup.GuestForm
	if err := decodeJSON(r, &form); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": form.Message()})
}

// GET /api/youtube-posts?q=&cursor=
func (s *Server) handleListYoutubePosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := s.deps.Videos.Page(r.Context(), q.Get("q"), q.Get("cursor"))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}
