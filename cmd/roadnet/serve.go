package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/lintang-b-s/roadnet/docs"
	"github.com/lintang-b-s/roadnet/pkg/roadmap"
	"github.com/lintang-b-s/roadnet/pkg/server/rest"
	"github.com/lintang-b-s/roadnet/pkg/server/rest/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve the road network over http",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		reg := prometheus.NewRegistry()
		m := rest.NewMetrics(reg)

		r := chi.NewRouter()

		r.Use(middleware.Logger)
		r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.Server.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           cfg.Server.MaxAge,
		}))

		r.Mount("/debug", middleware.Profiler())

		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"), //The url pointing to API definition
		))

		roadNetworkSvc := service.NewRoadNetworkService(roadmap.NewRoadMap(), reg)
		rest.RoadNetworkRouter(r, roadNetworkSvc)

		srv := &http.Server{Addr: cfg.Server.ListenAddr, Handler: r}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		g, gCtx := errgroup.WithContext(ctx)
		g.Go(func() error {
			log.Printf("server started at %s", cfg.Server.ListenAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listen %s: %w", cfg.Server.ListenAddr, err)
			}
			return nil
		})
		g.Go(func() error {
			<-gCtx.Done()
			log.Printf("shutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

		return g.Wait()
	},
}

func init() {
	serveCmd.Flags().String("listenaddr", ":5000", "server listen address, overrides config")
}
