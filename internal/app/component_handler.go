package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/felixbrock/ghexplorer/internal/components"
)

const htmlContentType = "text/html; charset=utf-8"

type component interface {
	Render(ctx context.Context, w io.Writer) error
}

type ComponentResponse struct {
	Error       error
	Code        int
	ContentType string
	Component   component
}

type ComponentHandler func(http.ResponseWriter, *http.Request) *ComponentResponse

func isHTMX(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("HX-Request"), "true")
}

// renderFailure replaces a component that failed to render: an alert for
// htmx swaps, the error page otherwise.
func renderFailure(r *http.Request, e errCtx) component {
	if isHTMX(r) {
		return components.Alert(components.AlertDanger, e.Msg)
	}
	return components.Layout(e.Title, components.Error(e.Code, e.Title, e.Msg))
}

func (ch ComponentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := ch(w, r)
	requestId := RequestId(r.Context())

	if resp.Error != nil {
		slog.Error(fmt.Sprintf(`Error occured: %s`, resp.Error.Error()), "request_id", requestId, "path", r.URL.Path)
	}

	code := resp.Code
	contentType := resp.ContentType

	var buf bytes.Buffer
	if resp.Component != nil {
		if err := resp.Component.Render(r.Context(), &buf); err != nil {
			slog.Error(fmt.Sprintf(`Error occured: %s`, err.Error()), "request_id", requestId, "path", r.URL.Path)

			buf.Reset()
			e := get500()
			if err = renderFailure(r, e).Render(r.Context(), &buf); err != nil {
				slog.Error(fmt.Sprintf(`Error occured: %s`, err.Error()), "request_id", requestId, "path", r.URL.Path)
				http.Error(w, "templ: failed to render template", e.Code)
				return
			}
			code = e.Code
			contentType = htmlContentType
		}
	}

	if code == 0 {
		code = http.StatusOK
	}

	// htmx only swaps 2xx responses, so fragments carrying an alert go out as 200.
	if isHTMX(r) && code >= http.StatusBadRequest {
		code = http.StatusOK
	}

	if contentType == "" {
		contentType = htmlContentType
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(code)

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(fmt.Sprintf(`Error occured: %s`, err.Error()), "request_id", requestId, "path", r.URL.Path)
	}
}
