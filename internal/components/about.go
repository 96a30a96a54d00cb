package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func About(version string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w,
			`<h1>About This App</h1>`,
			`<p>App to search Github users</p>`,
			`<p>Version: `, esc(version), `</p>`)
	})
}
