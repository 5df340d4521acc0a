package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/BottleButler/configs"
	"droscher.com/BottleButler/pkg/auth"
	"droscher.com/BottleButler/pkg/integrations"
	"droscher.com/BottleButler/pkg/repository"
	"droscher.com/BottleButler/pkg/server"
	"droscher.com/BottleButler/pkg/server/grpc/api/v1/apiv1connect"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".BottleButler.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(cliCtx *Context) error {
	logConfig := zap.NewProductionConfig()
	if cliCtx != nil && cliCtx.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	catalog, err := integrations.GetCatalog(&conf.Integrations, logger)
	if err != nil {
		logger.Error("error configuring catalog", zap.Error(err))

		return err
	}

	var options []connect.HandlerOption
	if len(conf.Auth.SecretKey) > 0 {
		authManager := auth.NewAuthManager(&conf.Auth, repo, logger)
		options = append(options, connect.WithInterceptors(authManager.GrpcAuthInterceptor()))
	} else {
		logger.Warn("no auth secret configured, serving without authentication")
	}

	recommender := newRecommender(&conf.Reasoning, &conf.Recommendations, logger)
	recommendationServer := server.NewRecommendationServer(repo, catalog, recommender, &conf.Recommendations, logger)

	mux := http.NewServeMux()

	path, handler := apiv1connect.NewRecommendationServiceHandler(recommendationServer, options...)
	mux.Handle(path, handler)

	checker := grpchealth.NewStaticChecker(apiv1connect.RecommendationServiceName)
	mux.Handle(grpchealth.NewHandler(checker))
	mux.Handle("/metrics", promhttp.Handler())

	address := fmt.Sprintf(":%d", conf.Server.Port)

	corsHandler := configureCORS(mux)
	serverHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	logger.Info("serving recommendations",
		zap.String("address", address),
		zap.String("strategy", string(recommender.Strategy())))

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

func configureCORS(mux http.Handler) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions, http.MethodHead},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"connect-accept-encoding",
			"connect-content-encoding",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-encoding",
			"content-length",
			"content-type",
			"date",
			"grpc-accept-encoding",
			"grpc-encoding",
			"grpc-message",
			"grpc-status",
			"grpc-status-details-bin",
			"grpc-timeout",
			"keep-alive",
			"origin",
			"referer",
			"user-agent",
			"x-accept-content-transfer-encoding",
			"x-accept-response-streaming",
			"x-grpc-web",
			"x-user-agent",
		},
		ExposedHeaders: []string{
			"connect-protocol-version",
			"grpc-message",
			"grpc-status",
			"grpc-status-details-bin",
		},
		MaxAge: 86400, // 24 hours
	})

	return corsOpts.Handler(mux)
}
