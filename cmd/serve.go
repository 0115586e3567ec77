package cmd

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/gym-console/app/auth"
	"github.com/vibast-solutions/gym-console/app/controller"
	grpcserver "github.com/vibast-solutions/gym-console/app/grpc"
	"github.com/vibast-solutions/gym-console/config"
	"google.golang.org/grpc"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard HTTP backend and the gRPC health server",
	Long:  "Start the Echo dashboard backend in front of the gym API together with a gRPC server exposing grpc.health.v1.",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) {
	c := mustCreateConsole()
	defer c.Close()
	cfg := c.cfg

	dashboardController := controller.NewDashboardController(c.dashboard, c.overview, c.contracts, c.plans, c.checkins)
	verifier := auth.NewVerifier(cfg.Auth.JWTSecret)

	healthMonitor := grpcserver.NewHealthMonitor(func(ctx context.Context) error {
		_, err := c.plans.List(ctx)
		return err
	}, cfg.Dashboard.RefreshInterval, cfg.API.Timeout)

	e := setupHTTPServer(dashboardController, verifier)
	grpcSrv, lis := setupGRPCServer(cfg, healthMonitor)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	healthMonitor.Start(monitorCtx)

	go func() {
		httpAddr := net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port)
		logrus.WithField("addr", httpAddr).WithField("api", c.api.BaseURL()).Info("Starting HTTP server")
		if err := e.Start(httpAddr); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("HTTP server error")
		}
	}()

	go func() {
		logrus.WithField("addr", lis.Addr().String()).Info("Starting gRPC server")
		if err := grpcSrv.Serve(lis); err != nil {
			logrus.WithError(err).Fatal("gRPC server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down...")

	healthMonitor.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("HTTP shutdown error")
	}
	grpcSrv.GracefulStop()

	logrus.Info("Server stopped")
}

func setupHTTPServer(dashboardController *controller.DashboardController, verifier *auth.Verifier) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRemoteIP:  true,
		LogLatency:   true,
		LogUserAgent: true,
		LogError:     true,
		HandleError:  true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := logrus.Fields{
				"remote_ip":  v.RemoteIP,
				"host":       v.Host,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"latency_ns": v.Latency.Nanoseconds(),
				"user_agent": v.UserAgent,
				"request_id": v.RequestID,
			}
			entry := logrus.WithFields(fields)
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}
			entry.Info("http_request")
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: func() string {
			return fmt.Sprintf("rest-%s", uuid.New().String())
		},
	}))

	e.GET("/health", dashboardController.Health)

	api := e.Group("", controller.RequireSession(verifier))
	api.GET("/session", dashboardController.Session)
	api.GET("/dashboard", dashboardController.Dashboard)

	students := api.Group("/students")
	students.GET("/:id", dashboardController.StudentOverview)
	students.GET("/:id/contracts", dashboardController.StudentContracts)
	students.GET("/:id/active-contract", dashboardController.StudentActiveContract)

	contracts := api.Group("/contracts")
	contracts.POST("", dashboardController.CreateContract)
	contracts.GET("/active/count", dashboardController.ActiveContractCount)

	plans := api.Group("/plans")
	plans.GET("", dashboardController.ListPlans)
	plans.POST("", dashboardController.CreatePlan)

	checkins := api.Group("/checkins")
	checkins.GET("/pending", dashboardController.PendingCheckins)
	checkins.POST("/:id/authorize", dashboardController.AuthorizeCheckin)

	return e
}

func setupGRPCServer(cfg *config.Config, healthMonitor *grpcserver.HealthMonitor) (*grpc.Server, net.Listener) {
	grpcAddr := net.JoinHostPort(cfg.GRPC.Host, cfg.GRPC.Port)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to listen on gRPC port")
	}

	grpcSrv := grpc.NewServer(grpc.ChainUnaryInterceptor(grpcserver.UnaryInterceptors()...))
	healthMonitor.Register(grpcSrv)

	return grpcSrv, lis
}
