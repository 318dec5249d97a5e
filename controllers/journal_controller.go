package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/blogem/adminjournal/models"
	"github.com/blogem/adminjournal/repositories"
	"github.com/blogem/adminjournal/services"
)

// JournalController serves read-only access to journal entries
type JournalController struct {
	services *services.Services
	logger   *zap.Logger
}

// NewJournalController creates a new journal controller
func NewJournalController(services *services.Services, logger *zap.Logger) *JournalController {
	return &JournalController{
		services: services,
		logger:   logger,
	}
}

// entryResponse adds the rendered description to a stored entry
type entryResponse struct {
	*models.JournalEntry
	DisplayDescription string `json:"display_description"`
}

type listResponse struct {
	Entries []entryResponse `json:"entries"`
	Total   int             `json:"total"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
}

func newEntryResponse(entry *models.JournalEntry) entryResponse {
	return entryResponse{JournalEntry: entry, DisplayDescription: entry.DisplayDescription()}
}

// Index handles GET /journal/entries
func (c *JournalController) Index(w http.ResponseWriter, r *http.Request) {
	filter, err := parseJournalFilter(r)
	if err != nil {
		renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := c.services.Journal.ListEntries(r.Context(), filter)
	if err != nil {
		c.logger.Error("Failed to list journal entries", zap.Error(err))
		renderError(w, http.StatusInternalServerError, "Failed to load journal entries")
		return
	}

	resp := listResponse{
		Entries: make([]entryResponse, 0, len(page.Entries)),
		Total:   page.Total,
		Limit:   page.Limit,
		Offset:  page.Offset,
	}
	for i := range page.Entries {
		resp.Entries = append(resp.Entries, newEntryResponse(&page.Entries[i]))
	}

	renderJSON(w, resp)
}

// Show handles GET /journal/entries/{id}
func (c *JournalController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		renderError(w, http.StatusBadRequest, "Invalid journal entry ID")
		return
	}

	entry, err := c.services.Journal.GetEntry(r.Context(), id)
	if errors.Is(err, repositories.ErrJournalEntryNotFound) {
		renderError(w, http.StatusNotFound, "Journal entry not found")
		return
	}
	if err != nil {
		c.logger.Error("Failed to load journal entry", zap.Int64("id", id), zap.Error(err))
		renderError(w, http.StatusInternalServerError, "Failed to load journal entry")
		return
	}

	renderJSON(w, newEntryResponse(entry))
}

// parseJournalFilter reads the listing filters from the query string
func parseJournalFilter(r *http.Request) (models.JournalFilter, error) {
	q := r.URL.Query()
	filter := models.JournalFilter{
		SubjectType: q.Get("subject_type"),
		ActorSearch: q.Get("actor"),
	}

	if v := q.Get("action"); v != "" {
		action, err := models.ParseAction(v)
		if err != nil {
			return filter, errors.New("invalid action filter")
		}
		filter.Action = action
	}

	if v := q.Get("before"); v != "" {
		before, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errors.New("before must be an RFC 3339 timestamp")
		}
		filter.Before = before
	}

	for name, dst := range map[string]*int{"limit": &filter.Limit, "offset": &filter.Offset} {
		if v := q.Get(name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return filter, errors.New(name + " must be a non-negative integer")
			}
			*dst = n
		}
	}

	return filter, nil
}
