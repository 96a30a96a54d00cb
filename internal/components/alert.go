package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

type AlertKind string

const (
	AlertLight  AlertKind = "light"
	AlertDanger AlertKind = "danger"
)

func Alert(kind AlertKind, msg string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w,
			`<div class="alert alert-`, esc(string(kind)), `" role="alert">`,
			`<i class="fas fa-info-circle"></i> `, esc(msg),
			`</div>`)
	})
}
