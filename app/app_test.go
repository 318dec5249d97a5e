package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/blogem/adminjournal/admin"
	"github.com/blogem/adminjournal/authenticator"
	"github.com/blogem/adminjournal/config"
	"github.com/blogem/adminjournal/middleware"
	"github.com/blogem/adminjournal/models"
	"github.com/blogem/adminjournal/persistence"
)

type staticVerifier struct{}

func (staticVerifier) Verify(_ context.Context, raw string) (*authenticator.Identity, error) {
	if raw != "token" {
		return nil, errors.New("invalid token")
	}
	return &authenticator.Identity{Subject: "auditor", Email: "auditor@example.com"}, nil
}

type permission struct {
	ID int
}

func (p *permission) SubjectType() models.SubjectType { return models.NewSubjectType("auth", "permission") }
func (p *permission) PrimaryKey() string              { return strconv.Itoa(p.ID) }

type staff struct{}

func (staff) String() string     { return "admin" }
func (staff) IdentityID() string { return "1" }

type permissionAdmin struct {
	saved int
}

func (h *permissionAdmin) Add(context.Context, *admin.Request, models.Subject, models.ChangeMessage) error {
	h.saved++
	return nil
}
func (h *permissionAdmin) Change(context.Context, *admin.Request, models.Subject, models.ChangeMessage) error {
	return nil
}
func (h *permissionAdmin) Delete(context.Context, *admin.Request, models.Subject, string) error {
	return nil
}
func (h *permissionAdmin) View(context.Context, *admin.Request, models.Subject) error { return nil }
func (h *permissionAdmin) List(context.Context, *admin.Request) (*admin.ChangeList, error) {
	return &admin.ChangeList{}, nil
}
func (h *permissionAdmin) RunAction(context.Context, *admin.Request) error { return nil }
func (h *permissionAdmin) Actions() []admin.ActionChoice                  { return nil }

func testSettings(t *testing.T) config.Static {
	return config.Static{
		PersistenceBackend: persistence.BackendDB,
		ModelAllowList:     []string{config.AllModels},
		PatchAdminSite:     true,
		DatabaseDriver:     "sqlite3",
		DatabaseURL:        filepath.Join(t.TempDir(), "journal.db"),
	}
}

func TestApp_EndToEnd(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, testSettings(t), zaptest.NewLogger(t), Options{Verifier: staticVerifier{}})
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	// Host registers its handler after startup; the journal wraps it
	permissionType := models.NewSubjectType("auth", "permission")
	host := &permissionAdmin{}
	require.NoError(t, a.Site.Register(permissionType, host))

	h, ok := a.Site.Handler(permissionType)
	require.True(t, ok)
	require.Implements(t, (*middleware.Journaled)(nil), h)

	req := &admin.Request{Method: http.MethodPost, Actor: staff{}}
	require.NoError(t, h.Add(ctx, req, &permission{ID: 9}, nil))
	assert.Equal(t, 1, host.saved)

	router := a.Router()

	t.Run("api requires a token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/journal/entries", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("api lists the journal newest first", func(t *testing.T) {
		httpReq := httptest.NewRequest(http.MethodGet, "/journal/entries?subject_type=auth.permission", nil)
		httpReq.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httpReq)

		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Entries []struct {
				Action             string  `json:"action"`
				ActorRepr          string  `json:"actor_repr"`
				SubjectID          *string `json:"subject_id"`
				DisplayDescription string  `json:"display_description"`
			} `json:"entries"`
			Total int `json:"total"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, 1, body.Total)
		assert.Equal(t, "add", body.Entries[0].Action)
		assert.Equal(t, "admin", body.Entries[0].ActorRepr)
		require.NotNil(t, body.Entries[0].SubjectID)
		assert.Equal(t, "9", *body.Entries[0].SubjectID)
		assert.Equal(t, "n/a", body.Entries[0].DisplayDescription)
	})

	t.Run("api reads are journaled", func(t *testing.T) {
		page, err := a.Services.Journal.ListEntries(ctx, models.JournalFilter{SubjectType: "adminjournal.entry"})
		require.NoError(t, err)
		require.NotEmpty(t, page.Entries)
		assert.Equal(t, "auditor@example.com", page.Entries[0].ActorRepr)
	})

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestApp_CleanupClearsExpired(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, testSettings(t), zaptest.NewLogger(t), Options{})
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	permissionType := models.NewSubjectType("auth", "permission")
	_, err = a.Services.Journal.Record(ctx, models.EntryInput{
		Action:      models.ActionView,
		Actor:       staff{},
		SubjectType: &permissionType,
	})
	require.NoError(t, err)

	deleted, err := a.Services.Cleanup.ClearExpired(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	deleted, err = a.Services.Cleanup.ClearExpired(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestNew_FailsFastOnUnknownBackend(t *testing.T) {
	settings := testSettings(t)
	settings.PersistenceBackend = "mongo"

	_, err := New(context.Background(), settings, zaptest.NewLogger(t), Options{})
	assert.ErrorIs(t, err, persistence.ErrBackendNotFound)
}

func TestNew_KafkaWithoutBrokers(t *testing.T) {
	settings := testSettings(t)
	settings.PersistenceBackend = persistence.BackendKafka

	_, err := New(context.Background(), settings, zaptest.NewLogger(t), Options{})
	var loadErr *persistence.BackendLoadError
	assert.ErrorAs(t, err, &loadErr)
}
