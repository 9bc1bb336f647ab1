package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/zmz-dd/kids-vocab-learning/internal/entity"
	"github.com/zmz-dd/kids-vocab-learning/internal/usecase"
)

// PlanHandler serves the plan lifecycle endpoints.
type PlanHandler struct {
	log  *logrus.Logger
	plan usecase.PlanUsecase
}

func NewPlanHandler(log *logrus.Logger, plan usecase.PlanUsecase) *PlanHandler {
	return &PlanHandler{log: log, plan: plan}
}

// GET /api/plan
func (h *PlanHandler) GetPlan(c *gin.Context) {
	plan, err := h.plan.GetActivePlan(c.Request.Context(), UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if plan == nil {
		c.Status(http.StatusNoContent)
		return
	}
	respondOK(c, plan)
}

// PUT /api/plan
func (h *PlanHandler) PutPlan(c *gin.Context) {
	var settings entity.PlanSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		respondError(c, entity.ErrInvalidPlanSettings)
		return
	}
	applied, err := h.plan.CreateOrUpdatePlan(c.Request.Context(), UserID(c), &settings)
	if err != nil {
		respondError(c, err)
		return
	}
	h.log.WithFields(logrus.Fields{"user": UserID(c), "books": settings.SelectedBooks}).Info("plan updated")
	respondOK(c, applied)
}

// GET /api/plan/stats
func (h *PlanHandler) GetStats(c *gin.Context) {
	stats, err := h.plan.Stats(c.Request.Context(), UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stats)
}

// GET /api/plan/preview?books=a,b
// Reports whether applying the selection would destructively reset progress,
// so the client can confirm before the PUT.
func (h *PlanHandler) PreviewPlan(c *gin.Context) {
	var books []string
	if raw := c.Query("books"); raw != "" {
		books = strings.Split(raw, ",")
	}
	reset, err := h.plan.WouldReset(c.Request.Context(), UserID(c), books)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"would_reset": reset})
}

// POST /api/words/bonus
func (h *PlanHandler) PostBonus(c *gin.Context) {
	var req struct {
		Count int `json:"count"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Count <= 0 {
		respondError(c, entity.ErrInvalidArgument)
		return
	}
	if err := h.plan.AddBonusWords(c.Request.Context(), UserID(c), req.Count); err != nil {
		respondError(c, err)
		return
	}
	day, err := h.plan.DayState(c.Request.Context(), UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, day)
}
