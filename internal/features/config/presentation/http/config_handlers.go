package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"appstarter/internal/features/config/application"
	"appstarter/internal/features/config/domain"
)

// RulesListener is notified after a rule set has been saved.
type RulesListener func(rules *domain.AppConfig)

// AppConfigHandler holds the rule configuration service.
type AppConfigHandler struct {
	configService application.ConfigService
	onSaved       RulesListener
}

// NewAppConfigHandler creates a new AppConfigHandler. onSaved may be nil.
func NewAppConfigHandler(configService application.ConfigService, onSaved RulesListener) *AppConfigHandler {
	return &AppConfigHandler{
		configService: configService,
		onSaved:       onSaved,
	}
}

// GetAppConfigHandler handles fetching the analyzer rule tables.
func (h *AppConfigHandler) GetAppConfigHandler(c *gin.Context) {
	rules, err := h.configService.LoadRules()
	if err != nil {
		log.Println("[ERROR] Failed to load app config:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load app config: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, rules)
}

// SaveAppConfigHandler handles replacing the analyzer rule tables.
func (h *AppConfigHandler) SaveAppConfigHandler(c *gin.Context) {
	var rules domain.AppConfig
	if err := c.ShouldBindJSON(&rules); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.configService.SaveRules(&rules); err != nil {
		if errors.Is(err, application.ErrInvalidRules) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save app config: " + err.Error()})
		return
	}

	if h.onSaved != nil {
		h.onSaved(&rules)
	}
	c.JSON(http.StatusOK, gin.H{"message": "App config saved successfully"})
}
