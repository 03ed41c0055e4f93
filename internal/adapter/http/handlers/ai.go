package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/adapter/http/dto"
	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/adapter/http/middleware"
	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/core/ports"
	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/pkg/apierrors"
)

type AIHandler struct {
	descriptionService ports.DescriptionService
}

func NewAIHandler(descriptionService ports.DescriptionService) *AIHandler {
	return &AIHandler{descriptionService: descriptionService}
}

func (h *AIHandler) GenerateDescription(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.GenerateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgMissingTitle, lang),
		)
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgMissingTitle, lang),
		)
		return
	}

	description, err := h.descriptionService.GenerateDescription(c.Request.Context(), title)
	if err != nil {
		// The upstream failure detail never reaches the client.
		zap.L().Error("failed to generate description", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGenerateDescription, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.GenerateDescriptionResponse{Description: description})
}
