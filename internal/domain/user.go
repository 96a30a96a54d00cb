package domain

type User struct {
	Login       string `json:"login"`
	Id          int64  `json:"id"`
	AvatarUrl   string `json:"avatar_url"`
	HtmlUrl     string `json:"html_url"`
	Name        string `json:"name"`
	Company     string `json:"company"`
	Blog        string `json:"blog"`
	Location    string `json:"location"`
	Bio         string `json:"bio"`
	Hireable    bool   `json:"hireable"`
	PublicRepos int    `json:"public_repos"`
	PublicGists int    `json:"public_gists"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}

type SearchResult struct {
	TotalCount int    `json:"total_count"`
	Items      []User `json:"items"`
}

type SearchEvent struct {
	Query     string
	Results   int
	RequestId string
}
