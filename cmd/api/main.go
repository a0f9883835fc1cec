package main

import (
	"context"
	"errors"
	"loanproposal/cmd/internal/config"
	"loanproposal/cmd/internal/http/handler"
	"loanproposal/cmd/internal/http/view"
	"loanproposal/cmd/internal/i18n"
	"loanproposal/cmd/internal/infrastructure/proposalapi"
	"loanproposal/cmd/internal/metrics"
	"loanproposal/cmd/internal/service"
	"loanproposal/cmd/internal/service/jobs"
	"loanproposal/cmd/internal/validators"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	ctx := context.Background()

	// .env locally, SSM Parameter Store in production
	if err := config.LoadEnv(ctx); err != nil {
		log.Fatalf("unable to load environment: %v", err)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if cfg.Environment != "production" {
		log.SetLevel(log.DEBUG)
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("unable to parse templates: %v", err)
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	apiClient := proposalapi.NewClient(cfg.ProposalAPIURL, cfg.ProposalAPITimeout)
	proposalValidator := validators.NewProposalValidator(validator.New())

	proposalService := service.NewProposalService(apiClient, proposalValidator, m)
	proposalRoutes := handler.NewProposalRoute(proposalService, i18n.NewNegotiator(cfg.DefaultLanguage))

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.BodyLimit("64K"))

	// Form
	e.GET("/", proposalRoutes.ShowForm)
	e.POST("/", proposalRoutes.SubmitForm)

	// JSON variant of the form
	e.POST("/api/proposals", proposalRoutes.CreateProposal)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", healthCheckRoute)

	probeCtx, stopProbe := context.WithCancel(ctx)
	defer stopProbe()
	go jobs.NewUpstreamProbe(apiClient.BaseURL(), cfg.ProposalAPITimeout, m.APIUp).Start(probeCtx)

	go func() {
		log.Infof("forwarding proposals to %s", apiClient.BaseURL())
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	stopProbe()

	// Give in-flight submissions time to resolve
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ProposalAPITimeout+time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("forced shutdown: %v", err)
	}
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
