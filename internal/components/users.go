package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/felixbrock/ghexplorer/internal/domain"
)

// Users is the result container the search control swaps into. It starts
// out empty.
func Users() templ.Component {
	return usersContainer(nil)
}

func usersContainer(content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<div id="`+UsersId+`" class="grid-3">`); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		return write(w, `</div>`)
	})
}

// UserList is the content of the Users container for a completed search.
func UserList(users []domain.User) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for i := range users {
			if err := UserItem(users[i]).Render(ctx, w); err != nil {
				return err
			}
		}
		if len(users) == 0 {
			return nil
		}
		return clearButton().Render(ctx, w)
	})
}

func UserItem(u domain.User) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w,
			`<div class="card text-center">`,
			`<img src="`, safeURL(u.AvatarUrl), `" alt="" class="round-img" style="width:60px">`,
			`<h3>`, esc(u.Login), `</h3>`,
			`<div><a href="`, safeURL(userPath(u.Login)), `" class="btn btn-dark btn-sm my-1">More</a></div>`,
			`</div>`)
	})
}
