package components

import "github.com/a-h/templ"

const (
	SearchId   = "search"
	UsersId    = "users"
	SpinnerId  = "search-spinner"
	searchPath = "/search"
	clearPath  = "/search/clear"
)

// Search posts the query with htmx and swaps the result into the user list.
// Without JavaScript the form falls back to a regular POST.
func Search() templ.Component {
	return static(`<form id="` + SearchId + `" class="form" action="` + searchPath + `" method="post"` +
		` hx-post="` + searchPath + `" hx-target="#` + UsersId + `" hx-swap="innerHTML" hx-indicator="#` + SpinnerId + `">` +
		`<input type="text" name="text" placeholder="Search Users..." aria-label="Search users" autocomplete="off">` +
		`<input type="submit" value="Search" class="btn btn-dark btn-block">` +
		`<i id="` + SpinnerId + `" class="fas fa-spinner fa-spin htmx-indicator"></i>` +
		`</form>`)
}

func clearButton() templ.Component {
	return static(`<button class="btn btn-light btn-block" hx-post="` + clearPath + `" hx-target="#` + UsersId + `" hx-swap="innerHTML">Clear</button>`)
}
