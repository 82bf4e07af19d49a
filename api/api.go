package api

import (
	"database/sql"
	"fmt"
	"rebalancer/internal/logger"
	l1_service "rebalancer/internal/service/l1"
	l3_service "rebalancer/internal/service/l3"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db               *sql.DB
	RebalanceService l3_service.RebalanceService
	PriceService     l1_service.PriceService
	// DefaultAllocationMarginPercent is used when a request omits the margin.
	DefaultAllocationMarginPercent float64
	Logger                         *zap.SugaredLogger
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to rebalancer"})
	})
	router.POST("/rebalance", m.rebalance)
	router.GET("/prices", m.getPrices)
	router.GET("/runs", m.listRuns)
	router.GET("/runs/:id", m.getRun)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Warnf("request failed with %d: %s", code, err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// logRequestMiddlware attaches a request-scoped logger to the request
// context and logs the outcome once the handler returns.
func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	log := m.Logger
	if log == nil {
		log = zap.S()
	}
	log = log.With("requestId", uuid.NewString())
	ctx.Request = ctx.Request.WithContext(logger.WithContext(ctx.Request.Context(), log))

	start := time.Now().UTC()
	ctx.Next()

	log.Infow("handled request",
		"method", ctx.Request.Method,
		"route", ctx.FullPath(),
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
		"ip", ctx.ClientIP(),
	)
}
