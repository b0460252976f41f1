package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "kwarta/internal/errors"
	"kwarta/internal/services"
)

// InsightHandler serves derived reports over the user's ledger
type InsightHandler struct {
	insightService services.InsightServicer
}

// NewInsightHandler creates a new InsightHandler
func NewInsightHandler(insightService services.InsightServicer) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// asOfParam parses the optional as_of query parameter. A zero time
// means "now" and is resolved by the service.
func asOfParam(c *gin.Context) (time.Time, error) {
	raw := c.Query("as_of")
	if raw == "" {
		return time.Time{}, nil
	}
	asOf, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid as_of date")
	}
	return asOf, nil
}

// GetReport returns the full financial report
// @Summary     Get financial report
// @Description Get the full derived report: monthly and lifetime aggregates, category totals, salary profile, spending trend, budget statuses, goal progress, health score, and generated insights
// @Tags        insights
// @Produce     json
// @Security    BearerAuth
// @Param       as_of query string false "Report reference time (RFC 3339, defaults to now)"
// @Success     200 {object} services.Report "Report"
// @Router      /insights/report [get]
func (h *InsightHandler) GetReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	asOf, err := asOfParam(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.insightService.GetReport(userID, asOf)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetSuggestions returns actionable saving suggestions
// @Summary     Get suggestions
// @Description Get prioritized, actionable suggestions derived from spending patterns, budgets, and goals
// @Tags        insights
// @Produce     json
// @Security    BearerAuth
// @Param       as_of query string false "Reference time (RFC 3339, defaults to now)"
// @Success     200 {object} map[string]interface{} "Suggestions"
// @Router      /insights/suggestions [get]
func (h *InsightHandler) GetSuggestions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	asOf, err := asOfParam(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	suggestions, err := h.insightService.GetSuggestions(userID, asOf)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// GetHealth returns the financial health score
// @Summary     Get health score
// @Description Get the 0-100 financial health score derived from savings rate, budget adherence, and goal pace
// @Tags        insights
// @Produce     json
// @Security    BearerAuth
// @Param       as_of query string false "Reference time (RFC 3339, defaults to now)"
// @Success     200 {object} map[string]interface{} "Health score"
// @Router      /insights/health [get]
func (h *InsightHandler) GetHealth(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	asOf, err := asOfParam(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	score, err := h.insightService.GetHealthScore(userID, asOf)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"health_score": score})
}
