// Package components renders the Github Explorer pages as templ components.
package components

import (
	"context"
	"io"
	"net/url"

	"github.com/a-h/templ"
)

const appName = "Github Explorer"

func write(w io.Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	return nil
}

// fragment renders components one after the other without a wrapping element.
func fragment(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range children {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func static(markup string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w, markup)
	})
}

func esc(s string) string {
	return templ.EscapeString(s)
}

func safeURL(s string) string {
	return esc(string(templ.URL(s)))
}

func userPath(login string) string {
	return "/user/" + url.PathEscape(login)
}
