package persistence

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/felixbrock/ghexplorer/internal/domain"
)

const defaultCaptureUrl = "https://eu.posthog.com/capture/"

// EventRepo forwards product events to PostHog. Without an ApiKey it
// does nothing.
type EventRepo struct {
	Url    string
	ApiKey string
	Client *http.Client
}

type captureReq struct {
	ApiKey     string         `json:"api_key"`
	Event      string         `json:"event"`
	Properties map[string]any `json:"properties"`
}

func (r EventRepo) Capture(ctx context.Context, event domain.SearchEvent) error {
	if r.ApiKey == "" {
		return nil
	}

	captureUrl := r.Url
	if captureUrl == "" {
		captureUrl = defaultCaptureUrl
	}

	body, err := json.Marshal(captureReq{
		ApiKey: r.ApiKey,
		Event:  "search",
		Properties: map[string]any{
			"distinct_id": event.RequestId,
			"query":       event.Query,
			"results":     event.Results,
		},
	})
	if err != nil {
		return err
	}

	_, err = request[struct{}](ctx, reqConfig{
		Method:  http.MethodPost,
		Url:     captureUrl,
		Headers: []string{"Content-Type: application/json"},
		Body:    body,
		Client:  r.Client},
		http.StatusOK)

	return err
}
