package middleware

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/blogem/adminjournal/admin"
	"github.com/blogem/adminjournal/config"
	"github.com/blogem/adminjournal/metrics"
	"github.com/blogem/adminjournal/models"
	"github.com/blogem/adminjournal/persistence"
)

type testUser struct {
	ID       int
	Username string
}

func (u *testUser) String() string     { return u.Username }
func (u *testUser) IdentityID() string { return strconv.Itoa(u.ID) }

type testPermission struct {
	ID int
}

func (p *testPermission) SubjectType() models.SubjectType { return permissionType }
func (p *testPermission) PrimaryKey() string              { return strconv.Itoa(p.ID) }

var (
	permissionType = models.NewSubjectType("auth", "permission")
	userType       = models.NewSubjectType("auth", "user")
)

// fakeRecorder builds entries like the journal service and keeps them
type fakeRecorder struct {
	entries []*models.Entry
	err     error
}

func (r *fakeRecorder) Record(_ context.Context, in models.EntryInput) (*models.Entry, error) {
	entry, err := models.NewEntry(in)
	if err != nil {
		return nil, err
	}
	if r.err != nil {
		return entry, r.err
	}
	r.entries = append(r.entries, entry)
	return entry, nil
}

// recordingHandler remembers which operations ran
type recordingHandler struct {
	calls      []string
	changeList *admin.ChangeList
	err        error
}

func (h *recordingHandler) Add(context.Context, *admin.Request, models.Subject, models.ChangeMessage) error {
	h.calls = append(h.calls, "add")
	return h.err
}

func (h *recordingHandler) Change(context.Context, *admin.Request, models.Subject, models.ChangeMessage) error {
	h.calls = append(h.calls, "change")
	return h.err
}

func (h *recordingHandler) Delete(context.Context, *admin.Request, models.Subject, string) error {
	h.calls = append(h.calls, "delete")
	return h.err
}

func (h *recordingHandler) View(context.Context, *admin.Request, models.Subject) error {
	h.calls = append(h.calls, "view")
	return h.err
}

func (h *recordingHandler) List(context.Context, *admin.Request) (*admin.ChangeList, error) {
	h.calls = append(h.calls, "list")
	return h.changeList, h.err
}

func (h *recordingHandler) RunAction(context.Context, *admin.Request) error {
	h.calls = append(h.calls, "action")
	return h.err
}

func (h *recordingHandler) Actions() []admin.ActionChoice {
	return []admin.ActionChoice{{Name: "delete_selected", Label: "Delete selected permissions"}}
}

func newRequest() *admin.Request {
	return &admin.Request{Method: "POST", Actor: &testUser{ID: 1, Username: "admin"}}
}

func newJournaled(t *testing.T, next admin.Handler, recorder Recorder) admin.Handler {
	return NewJournaledHandler(next, permissionType, recorder, zaptest.NewLogger(t))
}

func TestJournaledHandler_Lifecycle(t *testing.T) {
	ctx := context.Background()
	obj := &testPermission{ID: 7}

	t.Run("add", func(t *testing.T) {
		recorder := &fakeRecorder{}
		next := &recordingHandler{}
		h := newJournaled(t, next, recorder)

		require.NoError(t, h.Add(ctx, newRequest(), obj, models.Added()))

		assert.Equal(t, []string{"add"}, next.calls)
		require.Len(t, recorder.entries, 1)
		entry := recorder.entries[0]
		assert.Equal(t, models.ActionAdd, entry.Action())
		assert.Equal(t, "Added.", entry.Description())
		assert.Equal(t, "7", entry.SubjectID())
		assert.Equal(t, []any{map[string]any{"added": map[string]any{}}}, entry.Payload()["message"])
	})

	t.Run("add before the object has an id", func(t *testing.T) {
		recorder := &fakeRecorder{}
		h := newJournaled(t, &recordingHandler{}, recorder)

		require.NoError(t, h.Add(ctx, newRequest(), nil, nil))

		require.Len(t, recorder.entries, 1)
		assert.False(t, recorder.entries[0].HasSubjectID())
		assert.Equal(t, "ADD by admin on auth.permission: n/a", recorder.entries[0].String())
	})

	t.Run("change", func(t *testing.T) {
		recorder := &fakeRecorder{}
		h := newJournaled(t, &recordingHandler{}, recorder)

		require.NoError(t, h.Change(ctx, newRequest(), obj, models.ChangedFields("name", "codename")))

		require.Len(t, recorder.entries, 1)
		assert.Equal(t, models.ActionChange, recorder.entries[0].Action())
		assert.Equal(t, "Changed name and codename.", recorder.entries[0].Description())
	})

	t.Run("delete", func(t *testing.T) {
		recorder := &fakeRecorder{}
		h := newJournaled(t, &recordingHandler{}, recorder)

		require.NoError(t, h.Delete(ctx, newRequest(), obj, "Can add user"))

		require.Len(t, recorder.entries, 1)
		assert.Equal(t, "DELETE by admin on auth.permission.7: Deleted \"Can add user\"", recorder.entries[0].String())
	})

	t.Run("view", func(t *testing.T) {
		recorder := &fakeRecorder{}
		h := newJournaled(t, &recordingHandler{}, recorder)

		require.NoError(t, h.View(ctx, newRequest(), obj))

		require.Len(t, recorder.entries, 1)
		assert.Equal(t, models.ActionView, recorder.entries[0].Action())
		assert.Equal(t, "Object viewed.", recorder.entries[0].Description())
	})

	t.Run("underlying error is returned", func(t *testing.T) {
		expectedError := errors.New("validation failed")
		h := newJournaled(t, &recordingHandler{err: expectedError}, &fakeRecorder{})

		assert.ErrorIs(t, h.Change(ctx, newRequest(), obj, nil), expectedError)
	})
}

func TestJournaledHandler_List(t *testing.T) {
	ctx := context.Background()

	t.Run("unfiltered", func(t *testing.T) {
		recorder := &fakeRecorder{}
		h := newJournaled(t, &recordingHandler{changeList: &admin.ChangeList{}}, recorder)

		_, err := h.List(ctx, newRequest())
		require.NoError(t, err)

		require.Len(t, recorder.entries, 1)
		entry := recorder.entries[0]
		assert.Equal(t, "Changelist viewed.", entry.Description())
		assert.False(t, entry.HasSubjectID())
		assert.Equal(t, map[string]any{"filters": map[string]any{}}, entry.Payload())
	})

	t.Run("filtered", func(t *testing.T) {
		recorder := &fakeRecorder{}
		cl := &admin.ChangeList{Filters: map[string]string{"codename__startswith": "add"}}
		h := newJournaled(t, &recordingHandler{changeList: cl}, recorder)

		got, err := h.List(ctx, newRequest())
		require.NoError(t, err)
		assert.Same(t, cl, got)

		require.Len(t, recorder.entries, 1)
		assert.Equal(t, "Changelist viewed, filtered.", recorder.entries[0].Description())
		assert.Equal(t,
			map[string]any{"filters": map[string]any{"codename__startswith": "add"}},
			recorder.entries[0].Payload())
	})

	t.Run("failed list is not journaled", func(t *testing.T) {
		recorder := &fakeRecorder{}
		h := newJournaled(t, &recordingHandler{err: errors.New("forbidden")}, recorder)

		_, err := h.List(ctx, newRequest())
		assert.Error(t, err)
		assert.Empty(t, recorder.entries)
	})
}

func TestJournaledHandler_RunAction(t *testing.T) {
	ctx := context.Background()

	t.Run("selected objects", func(t *testing.T) {
		recorder := &fakeRecorder{}
		next := &recordingHandler{}
		h := newJournaled(t, next, recorder)

		req := newRequest()
		req.Form = url.Values{
			"index":            {"0"},
			"action":           {"delete_selected"},
			"_selected_action": {"7"},
		}
		require.NoError(t, h.RunAction(ctx, req))

		assert.Equal(t, []string{"action"}, next.calls)
		require.Len(t, recorder.entries, 1)
		entry := recorder.entries[0]
		assert.Equal(t, models.ActionView, entry.Action())
		assert.Equal(t, "Action \"Delete selected permissions\" executed on 1 objects.", entry.Description())
		assert.Equal(t, map[string]any{
			"action":       "delete_selected",
			"selected_all": 0,
			"selected_ids": []string{"7"},
		}, entry.Payload())
	})

	t.Run("select across", func(t *testing.T) {
		recorder := &fakeRecorder{}
		h := newJournaled(t, &recordingHandler{}, recorder)

		req := newRequest()
		req.Form = url.Values{
			"index":            {"0"},
			"action":           {"delete_selected"},
			"_selected_action": {"7"},
			"select_across":    {"1"},
		}
		require.NoError(t, h.RunAction(ctx, req))

		require.Len(t, recorder.entries, 1)
		entry := recorder.entries[0]
		assert.Equal(t, "Action \"Delete selected permissions\" executed on all objects.", entry.Description())
		assert.Equal(t, []string{}, entry.Payload()["selected_ids"])
		assert.Equal(t, 1, entry.Payload()["selected_all"])
	})

	t.Run("malformed form is forwarded without entry", func(t *testing.T) {
		forms := []url.Values{
			{"index": {"x"}, "action": {"delete_selected"}},
			{"index": {""}, "action": {"delete_selected"}},
			{"index": {"2"}, "action": {"delete_selected"}},
			{"index": {"0"}},
			{"action": {"delete_selected"}, "select_across": {"yes"}},
			nil,
		}
		for _, form := range forms {
			recorder := &fakeRecorder{}
			next := &recordingHandler{}
			h := newJournaled(t, next, recorder)

			req := newRequest()
			req.Form = form
			require.NoError(t, h.RunAction(ctx, req))

			assert.Equal(t, []string{"action"}, next.calls, "form %v", form)
			assert.Empty(t, recorder.entries, "form %v", form)
		}
	})
}

func TestJournaledHandler_FailureIsolation(t *testing.T) {
	ctx := context.Background()

	t.Run("persistence failure is logged and counted", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		recorder := &fakeRecorder{err: &persistence.PersistenceError{Backend: "db", Err: errors.New("database is locked")}}
		next := &recordingHandler{}
		h := NewJournaledHandler(next, permissionType, recorder, zap.New(core))
		before := testutil.ToFloat64(metrics.JournalSkipped.WithLabelValues("persistence"))

		err := h.Delete(ctx, newRequest(), &testPermission{ID: 7}, "Can add user")

		assert.NoError(t, err)
		assert.Equal(t, []string{"delete"}, next.calls)
		assert.Equal(t, 1, logs.FilterMessage("Failed to write journal entry").Len())
		assert.Equal(t, before+1, testutil.ToFloat64(metrics.JournalSkipped.WithLabelValues("persistence")))
	})

	t.Run("resolution failure does not block", func(t *testing.T) {
		recorder := &fakeRecorder{err: &persistence.BackendLoadError{Ref: "kafka", Err: errors.New("no writer")}}
		next := &recordingHandler{}
		h := newJournaled(t, next, recorder)
		before := testutil.ToFloat64(metrics.JournalSkipped.WithLabelValues("resolution"))

		assert.NoError(t, h.View(ctx, newRequest(), &testPermission{ID: 7}))
		assert.Equal(t, []string{"view"}, next.calls)
		assert.Equal(t, before+1, testutil.ToFloat64(metrics.JournalSkipped.WithLabelValues("resolution")))
	})

	t.Run("anonymous request still runs", func(t *testing.T) {
		recorder := &fakeRecorder{}
		next := &recordingHandler{}
		h := newJournaled(t, next, recorder)

		assert.NoError(t, h.Add(ctx, &admin.Request{}, &testPermission{ID: 7}, nil))
		assert.NoError(t, h.Add(ctx, nil, &testPermission{ID: 7}, nil))
		assert.Equal(t, []string{"add", "add"}, next.calls)
		assert.Empty(t, recorder.entries)
	})

	t.Run("subject of another type", func(t *testing.T) {
		recorder := &fakeRecorder{}
		next := &recordingHandler{}
		h := NewJournaledHandler(next, userType, recorder, zaptest.NewLogger(t))

		assert.NoError(t, h.View(ctx, newRequest(), &testPermission{ID: 7}))
		assert.Equal(t, []string{"view"}, next.calls)
		assert.Empty(t, recorder.entries)
	})
}

func TestNewJournaledHandler_Idempotent(t *testing.T) {
	recorder := &fakeRecorder{}
	once := newJournaled(t, &recordingHandler{}, recorder)
	twice := newJournaled(t, once, recorder)

	assert.Same(t, once, twice)

	require.NoError(t, twice.View(context.Background(), newRequest(), &testPermission{ID: 7}))
	assert.Len(t, recorder.entries, 1)
}

func TestInstallJournal(t *testing.T) {
	recorder := &fakeRecorder{}
	logger := zaptest.NewLogger(t)

	t.Run("wraps allow-listed registrations", func(t *testing.T) {
		site := admin.NewSite()
		require.NoError(t, site.Register(permissionType, &recordingHandler{}))

		settings := config.Static{PatchAdminSite: true, ModelAllowList: []string{"auth.Permission"}}
		assert.True(t, InstallJournal(site, settings, recorder, logger))
		require.NoError(t, site.Register(userType, &recordingHandler{}))

		h, _ := site.Handler(permissionType)
		assert.Implements(t, (*Journaled)(nil), h)
		h, _ = site.Handler(userType)
		assert.IsType(t, &recordingHandler{}, h)
	})

	t.Run("all models", func(t *testing.T) {
		site := admin.NewSite()
		settings := config.Static{PatchAdminSite: true, ModelAllowList: []string{config.AllModels}}
		require.True(t, InstallJournal(site, settings, recorder, logger))
		require.NoError(t, site.Register(userType, &recordingHandler{}))

		h, _ := site.Handler(userType)
		assert.IsType(t, &JournaledHandler{}, h)
	})

	t.Run("second install is a no-op", func(t *testing.T) {
		site := admin.NewSite()
		settings := config.Static{PatchAdminSite: true, ModelAllowList: []string{config.AllModels}}
		require.True(t, InstallJournal(site, settings, recorder, logger))
		assert.False(t, InstallJournal(site, settings, recorder, logger))

		require.NoError(t, site.Register(userType, &recordingHandler{}))
		h, _ := site.Handler(userType)
		inner := h.(*JournaledHandler).Unwrap()
		assert.IsType(t, &recordingHandler{}, inner)
	})

	t.Run("disabled", func(t *testing.T) {
		site := admin.NewSite()
		settings := config.Static{PatchAdminSite: false, ModelAllowList: []string{config.AllModels}}
		assert.False(t, InstallJournal(site, settings, recorder, logger))

		require.NoError(t, site.Register(userType, &recordingHandler{}))
		h, _ := site.Handler(userType)
		assert.IsType(t, &recordingHandler{}, h)
	})

	t.Run("pre-journaled handler is not wrapped again", func(t *testing.T) {
		site := admin.NewSite()
		pre := NewJournaledHandler(&recordingHandler{}, userType, recorder, logger)
		require.NoError(t, site.Register(userType, pre))

		settings := config.Static{PatchAdminSite: true, ModelAllowList: []string{config.AllModels}}
		require.True(t, InstallJournal(site, settings, recorder, logger))

		h, _ := site.Handler(userType)
		assert.Same(t, pre, h)
	})
}
