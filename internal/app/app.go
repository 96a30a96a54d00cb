package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/felixbrock/ghexplorer/internal/domain"
)

type UserRepo interface {
	Search(ctx context.Context, query string) ([]domain.User, error)
	Get(ctx context.Context, login string) (*domain.User, error)
}

type EventRepo interface {
	Capture(ctx context.Context, event domain.SearchEvent) error
}

type App struct {
	UserRepo  UserRepo
	EventRepo EventRepo
	Config    Config
}

func (a App) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /static/",
		http.StripPrefix("/static/", http.FileServer(http.Dir(a.Config.StaticDir))))
	mux.Handle("GET /{$}", ComponentHandler(a.index))
	mux.Handle("GET /about", ComponentHandler(a.about))
	mux.Handle("GET /user/{login}", ComponentHandler(a.user))
	mux.Handle("POST /search", ComponentHandler(a.search))
	mux.Handle("POST /search/clear", ComponentHandler(a.clear))
	mux.Handle("/", ComponentHandler(a.notFound))

	return withRequestId(withAccessLog(mux))
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (a App) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", a.Config.Port),
		Handler:      a.Routes(),
		ReadTimeout:  a.Config.ReadTimeout,
		WriteTimeout: a.Config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info(fmt.Sprintf("App running on %s...", a.Config.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.WriteTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
