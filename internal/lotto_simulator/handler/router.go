package handler

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"lotto_simulator/docs"
	"lotto_simulator/internal/lotto_simulator/config"
	"lotto_simulator/internal/lotto_simulator/metrics"
	"lotto_simulator/pkg/healthcheck"
	"lotto_simulator/pkg/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// RouterParams 路由依賴
type RouterParams struct {
	fx.In

	Config   *config.AppConfig
	Logger   *zap.Logger
	Sessions *SessionHandler
	Lotto    *LottoHandler
	Recorder *metrics.Recorder    `optional:"true"`
	Health   *healthcheck.Manager `optional:"true"`
}

// NewRouter 建立 gin 路由
func NewRouter(p RouterParams) *gin.Engine {
	if p.Config.Server.Mode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(p.Logger), middleware.Logger(p.Logger), middleware.Cors())

	metricsEnabled := p.Config.Metrics.Enabled && p.Recorder != nil
	if metricsEnabled {
		r.Use(p.Recorder.GinMiddleware())
		r.GET(p.Config.Metrics.Path, gin.WrapH(p.Recorder.Handler()))
	}

	r.GET("/health", p.Lotto.Health)
	if p.Health != nil {
		r.GET("/livez", gin.WrapF(p.Health.Handler(healthcheck.LivenessCheck)))
		r.GET("/readyz", gin.WrapF(p.Health.Handler(healthcheck.ReadinessCheck)))
	}

	if p.Config.Server.Swagger {
		docs.SwaggerInfo.Version = config.GetVersion().Version
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
			ginSwagger.DefaultModelsExpandDepth(-1)))
	}

	if p.Config.HasBackend(config.BackendWebsocket) {
		r.GET("/ws/sessions/:id", p.Sessions.Subscribe)
	}

	api := r.Group("/api/v1")
	{
		configureLottoRoutes(api, p.Lotto)
		configureSessionRoutes(api, p.Sessions)
	}

	return r
}

func configureLottoRoutes(api *gin.RouterGroup, h *LottoHandler) {
	api.POST("/score", h.Score)
	api.GET("/prizes", h.Prizes)
	api.GET("/time-played", h.TimePlayed)
}

func configureSessionRoutes(api *gin.RouterGroup, h *SessionHandler) {
	sessions := api.Group("/sessions")

	sessions.POST("", h.CreateSession)
	sessions.GET("", h.ListSessions)
	sessions.GET("/:id", h.GetSession)
	sessions.DELETE("/:id", h.DeleteSession)
	sessions.PUT("/:id/numbers", h.UpdateNumbers)
	sessions.POST("/:id/rounds", h.PlayRounds)
	sessions.POST("/:id/reset", h.ResetSession)

	draws := sessions.Group("/:id/draws")
	draws.GET("/predict", h.Predict)
	draws.GET("/overdue", h.OverdueNumbers)
	draws.GET("/frequent", h.FrequentNumbers)
	draws.POST("/popular", h.IsPopular)
}

// ProvideHTTPServer 建立 HTTP 服務並掛上生命週期
func ProvideHTTPServer(lc fx.Lifecycle, cfg *config.AppConfig, router *gin.Engine, logger *zap.Logger) *http.Server {
	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			listener, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return fmt.Errorf("監聽 %s 失敗: %w", server.Addr, err)
			}
			logger.Info("API 服務器已啟動", zap.String("addr", server.Addr))

			// 避免阻塞 fx 生命週期
			go func() {
				if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("API 服務器異常停止", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("正在關閉 API 服務器")
			return server.Shutdown(ctx)
		},
	})

	return server
}

var Module = fx.Module("handler",
	fx.Provide(
		NewSessionHandler,
		NewLottoHandler,
		NewRouter,
		ProvideHTTPServer,
	),
	fx.Invoke(func(*http.Server) {}),
)
