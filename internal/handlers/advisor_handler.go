package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "kwarta/internal/errors"
	"kwarta/internal/services"
)

// AdvisorHandler handles AI advisor requests
type AdvisorHandler struct {
	advisorService services.AdvisorServicer
}

// NewAdvisorHandler creates a new AdvisorHandler
func NewAdvisorHandler(advisorService services.AdvisorServicer) *AdvisorHandler {
	return &AdvisorHandler{advisorService: advisorService}
}

// ChatRequest represents an advisor question
type ChatRequest struct {
	Question string `json:"question" binding:"required,min=1,max=2000"`
}

// ChatResponse represents an advisor reply. Source is "model" when the
// reply came from the language model and "fallback" when it was
// generated locally from the user's snapshot.
type ChatResponse struct {
	Reply  string `json:"reply"`
	Source string `json:"source"`
}

// Chat answers a financial question
// @Summary     Ask the advisor
// @Description Ask a free-form financial question. The answer is grounded in the user's own ledger; when the language model is unreachable a deterministic summary is returned instead.
// @Tags        advisor
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ChatRequest true "Question"
// @Success     200 {object} ChatResponse "Advisor reply"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /advisor/chat [post]
func (h *AdvisorHandler) Chat(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	reply, fromModel, err := h.advisorService.Chat(c.Request.Context(), userID, req.Question)
	if err != nil {
		respondWithError(c, err)
		return
	}

	source := "fallback"
	if fromModel {
		source = "model"
	}

	c.JSON(http.StatusOK, ChatResponse{Reply: reply, Source: source})
}
