package components

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

func Error(code int, title string, msg string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w,
			`<section class="error">`,
			`<p class="error-code">`, strconv.Itoa(code), `</p>`,
			`<h1>`, esc(title), `</h1>`,
			`<p>`, esc(msg), `</p>`,
			`<a href="/" class="btn btn-dark">Go back home</a>`,
			`</section>`)
	})
}
