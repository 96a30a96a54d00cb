package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/felixbrock/ghexplorer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users    []domain.User
	err      error
	searches []string
}

func (f *fakeUserRepo) Search(_ context.Context, query string) ([]domain.User, error) {
	f.searches = append(f.searches, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.users, nil
}

func (f *fakeUserRepo) Get(_ context.Context, login string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].Login == login {
			return &f.users[i], nil
		}
	}
	return nil, fmt.Errorf("get user %q: %w", login, domain.ErrNotFound)
}

type fakeEventRepo struct {
	events  chan domain.SearchEvent
	release chan struct{}
	err     error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(chan domain.SearchEvent, 8)}
}

func (f *fakeEventRepo) Capture(ctx context.Context, event domain.SearchEvent) error {
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	f.events <- event
	return f.err
}

func (f *fakeEventRepo) next(t *testing.T) domain.SearchEvent {
	t.Helper()
	select {
	case event := <-f.events:
		return event
	case <-time.After(time.Second):
		t.Fatal("no search event captured")
	}
	return domain.SearchEvent{}
}

func newTestApp(repo *fakeUserRepo, events *fakeEventRepo) http.Handler {
	return App{
		UserRepo:  repo,
		EventRepo: events,
		Config:    Config{Version: "test", StaticDir: "testdata"},
	}.Routes()
}

func postSearch(t *testing.T, h http.Handler, text string, htmx bool) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"text": {text}}
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIndexRendersHome(t *testing.T) {
	h := newTestApp(&fakeUserRepo{}, newFakeEventRepo())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, htmlContentType, rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get(requestIdHeader))

	body := rec.Body.String()
	assert.Contains(t, body, "welcome to")
	assert.Contains(t, body, "Github Explorer")
	search := strings.Index(body, `id="search"`)
	users := strings.Index(body, `id="users"`)
	require.NotEqual(t, -1, search)
	require.NotEqual(t, -1, users)
	assert.Less(t, search, users)
}

func TestRequestIdIsPropagated(t *testing.T) {
	h := newTestApp(&fakeUserRepo{}, newFakeEventRepo())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIdHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(requestIdHeader))
}

func TestAbout(t *testing.T) {
	h := newTestApp(&fakeUserRepo{}, newFakeEventRepo())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/about", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Version: test")
}

func TestUnknownPathIsNotFound(t *testing.T) {
	h := newTestApp(&fakeUserRepo{}, newFakeEventRepo())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `<p class="error-code">404</p>`)
}

func TestSearchEmptyTextAlertsWithoutCallingGithub(t *testing.T) {
	repo := &fakeUserRepo{}
	events := newFakeEventRepo()
	h := newTestApp(repo, events)

	rec := postSearch(t, h, "   ", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please enter something")
	assert.Empty(t, repo.searches)
	assert.Zero(t, len(events.events))
}

func TestSearchEmptyTextWithoutHTMXIsBadRequestPage(t *testing.T) {
	h := newTestApp(&fakeUserRepo{}, newFakeEventRepo())

	rec := postSearch(t, h, "", false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, "Please enter something")
}

func TestSearchRendersUserCards(t *testing.T) {
	repo := &fakeUserRepo{users: []domain.User{{Login: "octocat"}, {Login: "hubot"}}}
	events := newFakeEventRepo()
	h := newTestApp(repo, events)

	rec := postSearch(t, h, " octo ", true)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, "<!DOCTYPE html>")
	assert.Equal(t, 2, strings.Count(body, `class="card text-center"`))
	assert.Contains(t, body, `hx-post="/search/clear"`)
	assert.Equal(t, []string{"octo"}, repo.searches)

	event := events.next(t)
	assert.Equal(t, "octo", event.Query)
	assert.Equal(t, 2, event.Results)
	assert.NotEmpty(t, event.RequestId)
}

func TestSearchWithoutHTMXRendersFullPage(t *testing.T) {
	repo := &fakeUserRepo{users: []domain.User{{Login: "octocat"}}}
	h := newTestApp(repo, newFakeEventRepo())

	rec := postSearch(t, h, "octo", false)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, "<title>Search | Github Explorer</title>")
	assert.Contains(t, body, "octocat")
}

func TestSearchCaptureFailureIsNotFatal(t *testing.T) {
	repo := &fakeUserRepo{users: []domain.User{{Login: "octocat"}}}
	events := newFakeEventRepo()
	events.err = errors.New("posthog down")
	h := newTestApp(repo, events)

	rec := postSearch(t, h, "octo", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "octocat")
}

func TestSearchUpstreamErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		msg  string
	}{
		{"rate limited", domain.ErrRateLimited, get429().Msg},
		{"unreachable", errors.New("dial tcp: connection refused"), get502().Msg},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestApp(&fakeUserRepo{err: tc.err}, newFakeEventRepo())

			rec := postSearch(t, h, "octo", true)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), "alert-danger")
			assert.Contains(t, rec.Body.String(), strings.ReplaceAll(tc.msg, "'", "&#39;"))
		})
	}
}

func TestClear(t *testing.T) {
	h := newTestApp(&fakeUserRepo{}, newFakeEventRepo())

	req := httptest.NewRequest(http.MethodPost, "/search/clear", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestUserPage(t *testing.T) {
	repo := &fakeUserRepo{users: []domain.User{{Login: "octocat", Name: "The Octocat"}}}
	h := newTestApp(repo, newFakeEventRepo())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user/octocat", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1>The Octocat</h1>")
	assert.Contains(t, rec.Body.String(), "<title>octocat | Github Explorer</title>")
}

func TestUserPageUnknownLogin(t *testing.T) {
	h := newTestApp(&fakeUserRepo{}, newFakeEventRepo())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user/ghost", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserPageRateLimited(t *testing.T) {
	h := newTestApp(&fakeUserRepo{err: domain.ErrRateLimited}, newFakeEventRepo())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user/octocat", nil))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.css"), []byte("body{}"), 0o644))

	h := App{UserRepo: &fakeUserRepo{}, Config: Config{StaticDir: dir}}.Routes()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.css", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{}", rec.Body.String())
}

func TestSearchDoesNotWaitForCapture(t *testing.T) {
	repo := &fakeUserRepo{users: []domain.User{{Login: "octocat"}}}
	events := newFakeEventRepo()
	events.release = make(chan struct{})
	h := newTestApp(repo, events)

	rec := postSearch(t, h, "octo", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "octocat")
	assert.Zero(t, len(events.events))

	close(events.release)
	assert.Equal(t, "octo", events.next(t).Query)
}

func TestWrongMethodOnKnownPathIsNotFound(t *testing.T) {
	h := newTestApp(&fakeUserRepo{}, newFakeEventRepo())

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/search", nil),
		httptest.NewRequest(http.MethodGet, "/search/clear", nil),
		httptest.NewRequest(http.MethodPost, "/about", nil),
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", req.Method, req.URL.Path)
		assert.Contains(t, rec.Body.String(), `<p class="error-code">404</p>`)
	}
}

func TestUserPageUpstreamFailureIsBadGateway(t *testing.T) {
	h := newTestApp(&fakeUserRepo{err: errors.New("dial tcp: connection refused")}, newFakeEventRepo())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user/octocat", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, `<p class="error-code">502</p>`)
	assert.Contains(t, body, get502().Msg)
}

func TestSearchWithoutHTMXUpstreamFailureIsBadGateway(t *testing.T) {
	events := newFakeEventRepo()
	h := newTestApp(&fakeUserRepo{err: errors.New("dial tcp: connection refused")}, events)

	rec := postSearch(t, h, "octo", false)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, "alert-danger")
	assert.Contains(t, body, get502().Msg)
	assert.Zero(t, len(events.events))
}
