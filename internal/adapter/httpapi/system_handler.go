package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/zmz-dd/kids-vocab-learning/internal/entity"
	"github.com/zmz-dd/kids-vocab-learning/internal/repository"
	"github.com/zmz-dd/kids-vocab-learning/internal/usecase"
)

// SystemHandler serves the catalog listing, the leaderboard, the logical
// clock controls and the health probe.
type SystemHandler struct {
	log         *logrus.Logger
	catalog     repository.CatalogRepository
	leaderboard usecase.LeaderboardUsecase
	clock       usecase.TimeUsecase
}

func NewSystemHandler(
	log *logrus.Logger,
	catalog repository.CatalogRepository,
	leaderboard usecase.LeaderboardUsecase,
	clock usecase.TimeUsecase,
) *SystemHandler {
	return &SystemHandler{log: log, catalog: catalog, leaderboard: leaderboard, clock: clock}
}

// GET /healthcheck
func (h *SystemHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /api/books
func (h *SystemHandler) GetBooks(c *gin.Context) {
	books, err := h.catalog.ListBooks(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	type bookSummary struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description,omitempty"`
		WordCount   int    `json:"word_count"`
		BuiltIn     bool   `json:"built_in,omitempty"`
	}
	out := make([]bookSummary, 0, len(books))
	for _, b := range books {
		out = append(out, bookSummary{
			ID:          b.ID,
			Title:       b.Title,
			Description: b.Description,
			WordCount:   b.WordCount(),
			BuiltIn:     b.BuiltIn,
		})
	}
	respondOK(c, gin.H{"books": out})
}

// GET /api/leaderboard
func (h *SystemHandler) GetLeaderboard(c *gin.Context) {
	entries, err := h.leaderboard.Leaderboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"entries": entries})
}

// GET /api/time
func (h *SystemHandler) GetTime(c *gin.Context) {
	status, err := h.clock.Status(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, status)
}

// PUT /api/time
// Accepts either an absolute instant or a relative offset. Persisted, so the
// simulated date survives restarts.
func (h *SystemHandler) PutTime(c *gin.Context) {
	var req struct {
		Instant string `json:"instant,omitempty"`
		Offset  string `json:"offset,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, entity.ErrInvalidArgument)
		return
	}
	ctx := c.Request.Context()
	switch {
	case req.Instant != "":
		target, err := time.Parse(time.RFC3339, req.Instant)
		if err != nil {
			respondError(c, entity.ErrInvalidArgument)
			return
		}
		status, err := h.clock.Travel(ctx, target)
		if err != nil {
			respondError(c, err)
			return
		}
		h.log.WithField("target", target).Warn("clock travel")
		respondOK(c, status)
	case req.Offset != "":
		offset, err := time.ParseDuration(req.Offset)
		if err != nil {
			respondError(c, entity.ErrInvalidArgument)
			return
		}
		status, err := h.clock.SetOffset(ctx, offset)
		if err != nil {
			respondError(c, err)
			return
		}
		h.log.WithField("offset", offset).Warn("clock offset")
		respondOK(c, status)
	default:
		respondError(c, entity.ErrInvalidArgument)
	}
}

// DELETE /api/time
func (h *SystemHandler) DeleteTime(c *gin.Context) {
	status, err := h.clock.Reset(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, status)
}
