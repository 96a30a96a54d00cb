package components

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const (
	fontAwesomeHref = "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css"
	htmxSrc         = "https://unpkg.com/htmx.org@1.9.10"
)

func PageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" || title == appName {
		return appName
	}
	return title + " | " + appName
}

// Layout wraps body in the full HTML document with the navbar.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		err := write(w,
			`<!DOCTYPE html><html lang="en"><head>`,
			`<meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`, esc(PageTitle(title)), `</title>`,
			`<link rel="stylesheet" href="`, fontAwesomeHref, `">`,
			`<link rel="stylesheet" href="/static/app.css">`,
			`<script src="`, htmxSrc, `"></script>`,
			`</head><body>`,
			`<nav class="navbar bg-primary">`,
			`<a href="/" class="nav-brand"><i class="fab fa-github"></i> `, appName, `</a>`,
			`<ul><li><a href="/">Home</a></li><li><a href="/about">About</a></li></ul>`,
			`</nav>`,
			`<main class="container">`)
		if err != nil {
			return err
		}

		if body != nil {
			if err = body.Render(ctx, w); err != nil {
				return err
			}
		}

		return write(w, `</main></body></html>`)
	})
}
