package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/blogem/adminjournal/admin"
	"github.com/blogem/adminjournal/config"
	"github.com/blogem/adminjournal/metrics"
	"github.com/blogem/adminjournal/models"
	"github.com/blogem/adminjournal/persistence"
)

// journalSiteMarker is set on a site once the journal is installed
const journalSiteMarker = "adminjournal"

// Recorder constructs and persists a journal entry.
// services.JournalService implements it.
type Recorder interface {
	Record(ctx context.Context, in models.EntryInput) (*models.Entry, error)
}

// Journaled marks handlers that already write journal entries
type Journaled interface {
	admin.Handler
	IsJournaled() bool
}

// JournaledHandler forwards every call to the wrapped handler and records
// a journal entry for it. Journal failures are logged, never returned.
type JournaledHandler struct {
	next        admin.Handler
	subjectType models.SubjectType
	journal     Recorder
	logger      *zap.Logger
}

// NewJournaledHandler decorates h. A handler that is already journaled is
// returned unchanged.
func NewJournaledHandler(h admin.Handler, subjectType models.SubjectType, journal Recorder, logger *zap.Logger) admin.Handler {
	if j, ok := h.(Journaled); ok && j.IsJournaled() {
		return h
	}
	if logger == nil {
		logger = zap.L()
	}
	return &JournaledHandler{
		next:        h,
		subjectType: subjectType,
		journal:     journal,
		logger:      logger.Named("journal"),
	}
}

// InstallJournal makes the site journal every allow-listed registration,
// present and future. It returns false when installation is disabled or
// already done.
func InstallJournal(site *admin.Site, settings config.Provider, journal Recorder, logger *zap.Logger) bool {
	if !settings.Settings().PatchAdminSite {
		return false
	}
	if !site.Mark(journalSiteMarker) {
		return false
	}

	site.Use(func(subjectType models.SubjectType, h admin.Handler) admin.Handler {
		if !settings.Settings().JournalsModel(subjectType.String()) {
			return h
		}
		return NewJournaledHandler(h, subjectType, journal, logger)
	})
	return true
}

// IsJournaled implements Journaled
func (h *JournaledHandler) IsJournaled() bool { return true }

// Unwrap returns the decorated handler
func (h *JournaledHandler) Unwrap() admin.Handler { return h.next }

// Add journals the addition, then forwards
func (h *JournaledHandler) Add(ctx context.Context, req *admin.Request, obj models.Subject, message models.ChangeMessage) error {
	description, payload := changeMessageFields(message)
	h.record(ctx, req, models.ActionAdd, obj, description, payload)
	return h.next.Add(ctx, req, obj, message)
}

// Change journals the change, then forwards
func (h *JournaledHandler) Change(ctx context.Context, req *admin.Request, obj models.Subject, message models.ChangeMessage) error {
	description, payload := changeMessageFields(message)
	h.record(ctx, req, models.ActionChange, obj, description, payload)
	return h.next.Change(ctx, req, obj, message)
}

// Delete journals the deletion, then forwards
func (h *JournaledHandler) Delete(ctx context.Context, req *admin.Request, obj models.Subject, repr string) error {
	h.record(ctx, req, models.ActionDelete, obj, fmt.Sprintf("Deleted \"%s\"", repr), nil)
	return h.next.Delete(ctx, req, obj, repr)
}

// View journals read access to a single object, then forwards
func (h *JournaledHandler) View(ctx context.Context, req *admin.Request, obj models.Subject) error {
	h.record(ctx, req, models.ActionView, obj, "Object viewed.", nil)
	return h.next.View(ctx, req, obj)
}

// List forwards and journals the change list view when it rendered
func (h *JournaledHandler) List(ctx context.Context, req *admin.Request) (*admin.ChangeList, error) {
	cl, err := h.next.List(ctx, req)
	if err != nil || cl == nil {
		return cl, err
	}

	description := "Changelist viewed."
	if len(cl.Filters) > 0 {
		description = "Changelist viewed, filtered."
	}
	filters := make(map[string]any, len(cl.Filters))
	for k, v := range cl.Filters {
		filters[k] = v
	}

	h.record(ctx, req, models.ActionView, nil, description, map[string]any{"filters": filters})
	return cl, nil
}

// RunAction journals the bulk action, then forwards. Malformed action forms
// are forwarded without a journal entry.
func (h *JournaledHandler) RunAction(ctx context.Context, req *admin.Request) error {
	var form url.Values
	if req != nil {
		form = req.Form
	}

	if action, ok := parseActionForm(form); ok {
		target := strconv.Itoa(len(action.selectedIDs))
		selectedIDs := action.selectedIDs
		if action.selectedAll != 0 {
			target = "all"
			selectedIDs = []string{}
		}

		h.record(ctx, req, models.ActionView, nil,
			fmt.Sprintf("Action \"%s\" executed on %s objects.", admin.ActionLabel(h.next, action.name), target),
			map[string]any{
				"action":       action.name,
				"selected_all": action.selectedAll,
				"selected_ids": selectedIDs,
			},
		)
	} else {
		metrics.JournalSkipped.WithLabelValues("malformed_action").Inc()
	}

	return h.next.RunAction(ctx, req)
}

// Actions forwards
func (h *JournaledHandler) Actions() []admin.ActionChoice {
	return h.next.Actions()
}

func (h *JournaledHandler) record(ctx context.Context, req *admin.Request, action models.Action, obj models.Subject, description string, payload map[string]any) {
	var actor models.Actor
	if req != nil {
		actor = req.Actor
	}

	subjectType := h.subjectType
	_, err := h.journal.Record(ctx, models.EntryInput{
		Action:      action,
		Actor:       actor,
		SubjectType: &subjectType,
		Subject:     obj,
		Description: description,
		Payload:     payload,
	})
	if err == nil {
		return
	}

	reason := "construction"
	switch {
	case errors.Is(err, persistence.ErrPersistence):
		reason = "persistence"
	case errors.Is(err, persistence.ErrBackendNotFound):
		reason = "resolution"
	default:
		var loadErr *persistence.BackendLoadError
		if errors.As(err, &loadErr) {
			reason = "resolution"
		}
	}
	metrics.JournalSkipped.WithLabelValues(reason).Inc()

	h.logger.Warn("Failed to write journal entry",
		zap.String("action", string(action)),
		zap.Stringer("subject_type", h.subjectType),
		zap.String("reason", reason),
		zap.Error(err),
	)
}

func changeMessageFields(message models.ChangeMessage) (string, map[string]any) {
	if message == nil {
		return "", nil
	}
	return message.String(), map[string]any{"message": message.Payload()}
}

type actionForm struct {
	name        string
	selectedIDs []string
	selectedAll int
}

// parseActionForm reads the bulk action form of a change list: "index"
// selects which "action" and "select_across" value applies. A missing
// "index" means 0; a present but unparsable one, empty included, is malformed.
func parseActionForm(form url.Values) (actionForm, bool) {
	index := 0
	if vs, ok := form["index"]; ok && len(vs) > 0 {
		i, err := strconv.Atoi(vs[0])
		if err != nil {
			return actionForm{}, false
		}
		index = i
	}

	actions := form["action"]
	if index < 0 || index >= len(actions) {
		return actionForm{}, false
	}

	parsed := actionForm{
		name:        actions[index],
		selectedIDs: append([]string{}, form["_selected_action"]...),
	}

	if across := form["select_across"]; len(across) > 0 {
		if index >= len(across) {
			return actionForm{}, false
		}
		n, err := strconv.Atoi(across[index])
		if err != nil {
			return actionForm{}, false
		}
		parsed.selectedAll = n
	}

	return parsed, true
}
