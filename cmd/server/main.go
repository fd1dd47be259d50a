package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"

	"go.uber.org/fx"

	"github.com/u4905139763-creator/aplikacja-magazynowa/app/categories"
	"github.com/u4905139763-creator/aplikacja-magazynowa/app/middleware"
	"github.com/u4905139763-creator/aplikacja-magazynowa/app/products"
	"github.com/u4905139763-creator/aplikacja-magazynowa/app/shell"
	"github.com/u4905139763-creator/aplikacja-magazynowa/backend"
	"github.com/u4905139763-creator/aplikacja-magazynowa/config"
)

func main() {
	app := fx.New(
		fx.Provide(
			config.Load,
			ProvideBackend,
			ProvideCategoryManager,
			ProvideProductManager,
			categories.NewCategoryHandler,
			products.NewProductHandler,
			ProvideShell,
			ProvideRouter,
		),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideBackend(lc fx.Lifecycle, cfg config.Config) (*backend.Backend, error) {
	b, err := backend.Open(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Println("Closing database connection")
			return b.Close()
		},
	})
	return b, nil
}

func ProvideCategoryManager(b *backend.Backend, cfg config.Config) *categories.Manager {
	return categories.NewManager(b.Categories, cfg.Validation)
}

func ProvideProductManager(b *backend.Backend, cfg config.Config) *products.Manager {
	return products.NewManager(b.Products, b.Categories, cfg.Validation)
}

func ProvideShell(c *categories.Manager, p *products.Manager, cfg config.Config) (*shell.Shell, error) {
	return shell.New(c, p, cfg.DisplayLocale)
}

func ProvideRouter(s *shell.Shell, ch *categories.CategoryHandler, ph *products.ProductHandler) http.Handler {
	mux := http.NewServeMux()
	RegisterRoutes(mux, s, ch, ph)
	return middleware.RequestLogger(mux)
}

func StartServer(lc fx.Lifecycle, cfg config.Config, handler http.Handler) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", cfg.HTTPAddr)
			if err != nil {
				return err
			}
			log.Printf("Starting server on %s (backend: %s, validation: %s)", cfg.HTTPAddr, cfg.Backend, cfg.Validation)
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("server start error: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
