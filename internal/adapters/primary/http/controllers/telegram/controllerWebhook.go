package telegram

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kiranxer/k-Anony/internal/domain"
	telegramService "github.com/Kiranxer/k-Anony/internal/services/telegram"
)

type Controller struct {
	TgService   *telegramService.Service
	SecretToken string
	Log         *slog.Logger
}

func New(tgService *telegramService.Service, secretToken string, log *slog.Logger) *Controller {
	return &Controller{
		TgService:   tgService,
		SecretToken: secretToken,
		Log:         log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.POST("/webhook/", c.handleWebhook)
}

func (c *Controller) handleWebhook(ctx *gin.Context) {
	secretToken := ctx.GetHeader("X-Telegram-Bot-Api-Secret-Token")
	if secretToken == "" {
		c.Log.Error("secret token is required")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "secret token required"})
		return
	}

	if subtle.ConstantTimeCompare([]byte(secretToken), []byte(c.SecretToken)) != 1 {
		c.Log.Warn("webhook secret token mismatch")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid secret token"})
		return
	}

	var update domain.Update

	if err := ctx.ShouldBindJSON(&update); err != nil {
		c.Log.Error("failed to bind webhook request", "error", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	c.Log.Debug("received webhook update", "update_id", update.UpdateID)

	if err := c.TgService.HandleUpdate(ctx.Request.Context(), &update); err != nil {
		// бизнес-ошибки уже обработаны в usecase, Telegram важно получить 200
		if domain.IsBusinessError(err) {
			ctx.JSON(http.StatusOK, gin.H{"ok": true})
			return
		}

		c.Log.Error("failed to handle update",
			"error", err,
			"update_id", update.UpdateID,
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process update"})
		return
	}

	// Telegram ожидает 200 OK в ответ
	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
