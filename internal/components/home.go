package components

import "github.com/a-h/templ"

func intro() templ.Component {
	return fragment(
		static(`<h1>Hi, welcome to <span class="brand">`+appName+` <i class="fas fa-search"></i></span></h1>`),
		static(`<p>Search github developers by name.</p>`),
	)
}

// Home is the landing view: heading, description, then the search control
// above the user list.
func Home() templ.Component {
	return fragment(intro(), Search(), Users())
}

// SearchPage is Home with results already in the user list, served when
// the search form was posted without htmx.
func SearchPage(results templ.Component) templ.Component {
	return fragment(intro(), Search(), usersContainer(results))
}
