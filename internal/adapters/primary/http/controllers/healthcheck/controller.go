package healthcheckController

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/Kiranxer/k-Anony/internal/adapters/secondary/storage/file"
)

type HealthCheckController struct {
	store *file.Store
	log   *slog.Logger
}

func New(store *file.Store, log *slog.Logger) *HealthCheckController {
	return &HealthCheckController{
		store: store,
		log:   log,
	}
}

func (c *HealthCheckController) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", c.health)
	r.GET("/ready", c.ready)
}

// health базовая проверка (всегда возвращает 200)
func (c *HealthCheckController) health(ctx *gin.Context) {
	ctx.JSON(200, gin.H{
		"status":   "ok",
		"usecases": "anon-chat",
	})
}

// ready проверка готовности (проверяет доступность каталога данных)
func (c *HealthCheckController) ready(ctx *gin.Context) {
	if err := c.store.Ping(); err != nil {
		c.log.Error("data directory not ready", "error", err)
		ctx.JSON(503, gin.H{
			"status": "not ready",
			"error":  "storage unavailable",
		})
		return
	}

	ctx.JSON(200, gin.H{
		"status": "ready",
	})
}
