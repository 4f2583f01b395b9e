package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/CoffeeLedger/configs"
	"droscher.com/CoffeeLedger/pkg/ledger"
	"droscher.com/CoffeeLedger/pkg/repository"
	"droscher.com/CoffeeLedger/pkg/server"
	"droscher.com/CoffeeLedger/pkg/server/grpc/api/v1/apiv1connect"
	"droscher.com/CoffeeLedger/pkg/stats"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".CoffeeLedger.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(ctx *Context) error {
	logConfig := zap.NewProductionConfig()
	if ctx.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	location, err := conf.Ledger.Location()
	if err != nil {
		logger.Error("error loading time zone", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	coffeeLedger := ledger.New(repo, repo, repo, logger, ledger.WithDefaultListLimit(conf.Ledger.DefaultListLimit))
	engine := stats.NewEngine(repo, location)

	var metrics *server.Metrics

	interceptorList := []connect.Interceptor{server.LoggingInterceptor(logger)}

	if !conf.Metrics.Disabled {
		metrics = server.NewMetrics()
		interceptorList = append(interceptorList, metrics.Interceptor())
	}

	interceptors := connect.WithInterceptors(interceptorList...)

	mux := http.NewServeMux()
	mux.Handle(apiv1connect.NewPersonServiceHandler(server.NewPersonServer(coffeeLedger, logger), interceptors))
	mux.Handle(apiv1connect.NewBeanServiceHandler(server.NewBeanServer(coffeeLedger, conf.Integrations, logger), interceptors))
	mux.Handle(apiv1connect.NewConsumptionServiceHandler(server.NewConsumptionServer(coffeeLedger, metrics, logger), interceptors))
	mux.Handle(apiv1connect.NewStatsServiceHandler(server.NewStatsServer(engine, conf.Ledger.DefaultDays, logger), interceptors))

	checker := grpchealth.NewStaticChecker(apiv1connect.ServiceNames...)
	mux.Handle(grpchealth.NewHandler(checker))

	if metrics != nil {
		mux.Handle(conf.Metrics.Path, metrics.Handler())
	}

	address := fmt.Sprintf(":%d", conf.Server.Port)

	corsHandler := configureCORS(mux)
	serverHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	return listenUntilSignalled(svr, logger)
}

func listenUntilSignalled(svr *http.Server, logger *zap.Logger) error {
	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)

	go func() {
		logger.Info("server listening", zap.String("address", svr.Addr))
		serveErr <- svr.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		logger.Error("failed to start server", zap.Error(err))

		return err
	case <-signalCtx.Done():
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		return svr.Shutdown(shutdownCtx)
	}
}

func configureCORS(mux *http.ServeMux) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"cache-control",
			"connect-accept-encoding",
			"connect-content-encoding",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-encoding",
			"content-length",
			"content-type",
			"grpc-accept-encoding",
			"grpc-timeout",
			"origin",
			"referer",
			"user-agent",
			"x-grpc-web",
			"x-request-id",
			"x-user-agent",
		},
		ExposedHeaders: []string{
			"connect-protocol-version",
			"grpc-message",
			"grpc-status",
			"grpc-status-details-bin",
			"x-request-id",
		},
		MaxAge: 86400, // 24 hours
	})

	return corsOpts.Handler(mux)
}
