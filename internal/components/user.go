package components

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/felixbrock/ghexplorer/internal/domain"
)

func UserDetail(u domain.User) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hireable := `<i class="fas fa-times-circle text-danger"></i>`
		if u.Hireable {
			hireable = `<i class="fas fa-check text-success"></i>`
		}

		err := write(w,
			`<a href="/" class="btn btn-light">Back to search</a>`,
			` Hireable: `, hireable,
			`<div class="card grid-2"><div class="all-center">`,
			`<img src="`, safeURL(u.AvatarUrl), `" alt="" class="round-img" style="width:150px">`,
			`<h1>`, esc(displayName(u)), `</h1>`)
		if err != nil {
			return err
		}

		if u.Location != "" {
			if err = write(w, `<p>Location: `, esc(u.Location), `</p>`); err != nil {
				return err
			}
		}

		if err = write(w, `</div><div>`); err != nil {
			return err
		}

		if u.Bio != "" {
			if err = write(w, `<h3>Bio</h3><p>`, esc(u.Bio), `</p>`); err != nil {
				return err
			}
		}

		if err = write(w, `<a href="`, safeURL(u.HtmlUrl), `" class="btn btn-dark my-1">Show Github Profile</a><ul>`,
			`<li><strong>Username: </strong>`, esc(u.Login), `</li>`); err != nil {
			return err
		}

		if u.Company != "" {
			if err = write(w, `<li><strong>Company: </strong>`, esc(u.Company), `</li>`); err != nil {
				return err
			}
		}

		if u.Blog != "" {
			if err = write(w, `<li><strong>Website: </strong><a href="`, safeURL(blogURL(u.Blog)), `">`, esc(u.Blog), `</a></li>`); err != nil {
				return err
			}
		}

		return write(w, `</ul></div></div>`,
			`<div class="card text-center">`,
			badge("primary", "Followers", u.Followers),
			badge("success", "Following", u.Following),
			badge("light", "Public Repos", u.PublicRepos),
			badge("dark", "Public Gists", u.PublicGists),
			`</div>`)
	})
}

func displayName(u domain.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Login
}

// GitHub stores blogs as entered, often without a scheme.
func blogURL(blog string) string {
	if strings.HasPrefix(blog, "http://") || strings.HasPrefix(blog, "https://") {
		return blog
	}
	return "https://" + blog
}

func badge(kind string, label string, n int) string {
	return `<div class="badge badge-` + kind + `">` + label + `: ` + strconv.Itoa(n) + `</div>`
}
