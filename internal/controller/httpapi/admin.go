package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Freeeeeet/thunders/internal/formatting"
	"github.com/Freeeeeet/thunders/internal/service"
	"github.com/google/uuid"
)

// GET /api/guest-applications?offset=0
func (s *Server) handleListGuestApplications(w http.ResponseWriter, r *http.Request) {
	offset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "offset must be a number")
			return
		}
		offset = n
	}

	roster, err := s.deps.Roster.GuestsAt(r.Context(), s.now(), offset)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, roster)
}

func (s *Server) handleHideGuestApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	if err := s.deps.Roster.HideGuest(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// GET /api/membership-applications?month=2025-03-01
func (s *Server) handleMembershipBoard(w http.ResponseWriter, r *http.Request) {
	month := s.deps.Memberships.CurrentMonth(s.now())
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := formatting.ParseMonth(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		month = parsed
	}

	board, err := s.deps.Memberships.Board(r.Context(), month)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"month":       formatting.MonthValue(month),
		"label":       formatting.MonthLabel(month),
		"months":      s.deps.Memberships.MonthOptions(s.now(), service.MonthRange),
		"memberships": board,
	})
}

func (s *Server) handleMarkAttendance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	app, err := s.deps.Memberships.MarkAttendance(r.Context(), id, s.now())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "application": app})
}

func (s *Server) handleMemberAsGuest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	guest, err := s.deps.Memberships.AddAsGuest(r.Context(), id, s.now())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "guest": guest})
}

func (s *Server) handleSetGroupColor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs   []string `json:"ids"`
		Color string   `json:"color"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if len(req.IDs) == 0 {
		writeError(w, http.StatusBadRequest, "ids are required")
		return
	}

	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid id %q", raw))
			return
		}
		ids = append(ids, id)
	}

	updated, err := s.deps.Memberships.SetGroupColor(r.Context(), ids, req.Color)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "updated": updated})
}

// POST /api/membership-applications/{id}/group-color/next
func (s *Server) handleCycleGroupColor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	color, err := s.deps.Memberships.CycleGroupColor(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "group_color": color})
}

func (s *Server) handleListIcnMembers(w http.ResponseWriter, r *http.Request) {
	members, err := s.deps.Icn.ActiveMembers(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func (s *Server) handleIcnMemberAsGuest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	guest, err := s.deps.Icn.AddAsGuest(r.Context(), id, s.now())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "guest": guest})
}

func (s *Server) handleCreateYoutubePost(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		YoutubeURL  string `json:"youtube_url"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	post, err := s.deps.Videos.Create(r.Context(), req.Title, req.Description, req.YoutubeURL)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "post": post})
}

func (s *Server) handleListContactMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := s.deps.Contacts.List(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func (s *Server) handleAIAssist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	suggestion, err := s.deps.Assistant.Draft(r.Context(), req.Content, s.now())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"suggestion": suggestion})
}
