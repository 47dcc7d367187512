package telegram

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/admin/tg-bots/info-bot/internal/domain"
	telegramService "github.com/admin/tg-bots/info-bot/internal/services/telegram"
)

const serviceVersion = "1.0.0"

type Controller struct {
	TgService   *telegramService.Service
	SecretToken string // пустой - проверка заголовка отключена
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
	router.POST("/webhook", c.handleWebhook)
	router.GET("/webhook", c.handleLiveness)
}

func (c *Controller) handleWebhook(ctx *gin.Context) {
	if c.SecretToken != "" {
		secretToken := ctx.GetHeader("X-Telegram-Bot-Api-Secret-Token")
		if secretToken != c.SecretToken {
			c.Log.Warn("webhook request with invalid secret token",
				"client_ip", ctx.ClientIP(),
			)
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid secret token"})
			return
		}
	}

	var update domain.Update

	// Кривой JSON молча дропаем с 200: Telegram иначе будет
	// бесконечно ретраить это же обновление
	if err := ctx.ShouldBindJSON(&update); err != nil {
		c.Log.Error("failed to bind webhook request", "error", err)
		ctx.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	c.Log.Debug("received webhook update", "update_id", update.UpdateID)

	if err := c.TgService.HandleUpdate(ctx.Request.Context(), &update); err != nil {
		// BusinessError уже залогирован на своём слое
		if domain.IsBusinessError(err) {
			c.Log.Debug("update finished with business error",
				"error", err,
				"update_id", update.UpdateID,
			)
		} else {
			c.Log.Error("failed to handle update",
				"error", err,
				"update_id", update.UpdateID,
			)
		}
	}

	// Telegram ожидает 200 OK в ответ
	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

// handleLiveness простая проверка живости для GET-запросов на endpoint вебхука
func (c *Controller) handleLiveness(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "info-bot",
		"version": serviceVersion,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}
