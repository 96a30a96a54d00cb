package persistence

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/felixbrock/ghexplorer/internal/domain"
	"golang.org/x/time/rate"
)

const searchPageSize = "30"

type UserRepo struct {
	BaseHeaders []string
	BaseUrl     string
	Limiter     *rate.Limiter
	Client      *http.Client
}

func (r UserRepo) Search(ctx context.Context, query string) ([]domain.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrEmptyQuery
	}

	result, err := request[domain.SearchResult](ctx, reqConfig{
		Method:    http.MethodGet,
		Url:       fmt.Sprintf("%s/search/users", r.BaseUrl),
		UrlParams: url.Values{"q": {query}, "per_page": {searchPageSize}},
		Headers:   r.BaseHeaders,
		Limiter:   r.Limiter,
		Client:    r.Client},
		http.StatusOK)

	if err != nil {
		return nil, fmt.Errorf("search users %q: %w", query, err)
	}

	return result.Items, nil
}

func (r UserRepo) Get(ctx context.Context, login string) (*domain.User, error) {
	if strings.TrimSpace(login) == "" {
		return nil, domain.ErrNotFound
	}

	user, err := request[domain.User](ctx, reqConfig{
		Method:  http.MethodGet,
		Url:     fmt.Sprintf("%s/users/%s", r.BaseUrl, url.PathEscape(login)),
		Headers: r.BaseHeaders,
		Limiter: r.Limiter,
		Client:  r.Client},
		http.StatusOK)

	if err != nil {
		return nil, fmt.Errorf("get user %q: %w", login, err)
	}

	return user, nil
}
