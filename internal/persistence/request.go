package persistence

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/felixbrock/ghexplorer/internal/app"
	"github.com/felixbrock/ghexplorer/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/time/rate"
)

var tracer = otel.Tracer("github.com/felixbrock/ghexplorer/internal/persistence")

type reqConfig struct {
	Method    string
	Url       string
	UrlParams url.Values
	Headers   []string
	Body      []byte
	Limiter   *rate.Limiter
	Client    *http.Client
}

// StatusError is returned when the upstream answers with a status code
// other than the expected one.
type StatusError struct {
	Method string
	Url    string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected response status code %d", e.Method, e.Url, e.Code)
}

// Unwrap maps well known GitHub status codes onto domain errors.
func (e *StatusError) Unwrap() error {
	switch {
	case e.Code == http.StatusNotFound:
		return domain.ErrNotFound
	case e.Code == http.StatusTooManyRequests:
		return domain.ErrRateLimited
	case e.Code == http.StatusForbidden && strings.Contains(strings.ToLower(e.Body), "rate limit"):
		return domain.ErrRateLimited
	}
	return nil
}

func request[T any](ctx context.Context, config reqConfig, expectedResCode int) (t *T, err error) {
	ctx, span := tracer.Start(ctx, "persistence.request")
	span.SetAttributes(
		attribute.String("http.request.method", config.Method),
		attribute.String("url.full", config.Url))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if config.Limiter != nil {
		if err = config.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("wait for rate limiter: %w", err)
		}
	}

	target := config.Url
	if len(config.UrlParams) > 0 {
		target = fmt.Sprintf("%s?%s", config.Url, config.UrlParams.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, config.Method, target, bytes.NewBuffer(config.Body))
	if err != nil {
		return nil, err
	}

	for i := 0; i < len(config.Headers); i++ {
		key, value, ok := strings.Cut(config.Headers[i], ":")
		if !ok {
			return nil, fmt.Errorf("malformed header %q", config.Headers[i])
		}
		req.Header.Add(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	client := config.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	body, err := app.Read(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != expectedResCode {
		return nil, &StatusError{Method: config.Method, Url: config.Url, Code: resp.StatusCode, Body: string(body)}
	}

	if len(body) == 0 {
		return new(T), nil
	}

	t, err = app.ReadJSON[T](body)
	if err != nil {
		return nil, err
	}

	return t, nil
}
