package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/felixbrock/ghexplorer/internal/components"
	"github.com/felixbrock/ghexplorer/internal/domain"
)

const captureTimeout = 3 * time.Second

func page(title string, body templ.Component, code int, err error) *ComponentResponse {
	return &ComponentResponse{
		Component:   components.Layout(title, body),
		Code:        code,
		ContentType: htmlContentType,
		Error:       err,
	}
}

func errorPage(e errCtx, err error) *ComponentResponse {
	return page(e.Title, components.Error(e.Code, e.Title, e.Msg), e.Code, err)
}

// fragment answers htmx requests with the bare component and everything
// else with a full page around it.
func fragment(r *http.Request, title string, c templ.Component, code int, err error) *ComponentResponse {
	if !isHTMX(r) {
		return page(title, components.SearchPage(c), code, err)
	}
	return &ComponentResponse{
		Component:   c,
		Code:        code,
		ContentType: htmlContentType,
		Error:       err,
	}
}

// upstreamErr maps a repository error onto the error table.
func upstreamErr(err error) errCtx {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return get404()
	case errors.Is(err, domain.ErrRateLimited):
		return get429()
	}
	return get502()
}

func (a App) index(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	return page("", components.Home(), http.StatusOK, nil)
}

func (a App) about(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	return page("About", components.About(a.Config.Version), http.StatusOK, nil)
}

func (a App) notFound(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	return errorPage(get404(), nil)
}

func (a App) user(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	login := r.PathValue("login")

	user, err := a.UserRepo.Get(r.Context(), login)
	if err != nil {
		e := upstreamErr(err)
		if e.Code == http.StatusNotFound {
			return errorPage(e, nil)
		}
		return errorPage(e, err)
	}

	return page(user.Login, components.UserDetail(*user), http.StatusOK, nil)
}

func (a App) search(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	if err := r.ParseForm(); err != nil {
		e := get400()
		return fragment(r, "Search", components.Alert(components.AlertDanger, e.Msg), e.Code, err)
	}

	text := strings.TrimSpace(r.PostFormValue("text"))
	if text == "" {
		return fragment(r, "Search", components.Alert(components.AlertLight, "Please enter something"), http.StatusBadRequest, nil)
	}

	users, err := a.UserRepo.Search(r.Context(), text)
	if err != nil {
		e := upstreamErr(err)
		return fragment(r, "Search", components.Alert(components.AlertDanger, e.Msg), e.Code, err)
	}

	a.capture(r.Context(), domain.SearchEvent{Query: text, Results: len(users), RequestId: RequestId(r.Context())})

	return fragment(r, "Search", components.UserList(users), http.StatusOK, nil)
}

// capture reports the event in the background so analytics never hold up
// the search response.
func (a App) capture(ctx context.Context, event domain.SearchEvent) {
	if a.EventRepo == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), captureTimeout)
	go func() {
		defer cancel()
		if err := a.EventRepo.Capture(ctx, event); err != nil {
			slog.Error(fmt.Sprintf("Error occured: %s", err.Error()), "request_id", event.RequestId)
		}
	}()
}

func (a App) clear(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	return fragment(r, "", components.UserList(nil), http.StatusOK, nil)
}
