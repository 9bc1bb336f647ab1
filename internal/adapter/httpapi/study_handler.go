package httpapi

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/zmz-dd/kids-vocab-learning/internal/entity"
	"github.com/zmz-dd/kids-vocab-learning/internal/schedule"
	"github.com/zmz-dd/kids-vocab-learning/internal/usecase"
)

// StudyHandler serves the queue and outcome endpoints.
type StudyHandler struct {
	log   *logrus.Logger
	study usecase.StudyUsecase
}

func NewStudyHandler(log *logrus.Logger, study usecase.StudyUsecase) *StudyHandler {
	return &StudyHandler{log: log, study: study}
}

// GET /api/words/new?count=&raw=true
// Without raw, the batch is capped by the remaining daily quota and count is
// ignored; with raw=true, count unseen words are returned without touching
// any counter.
func (h *StudyHandler) GetNewWords(c *gin.Context) {
	ctx := c.Request.Context()
	if c.Query("raw") == "true" {
		count, err := strconv.Atoi(c.DefaultQuery("count", "10"))
		if err != nil || count < 0 {
			respondError(c, entity.ErrInvalidArgument)
			return
		}
		words, err := h.study.RawNewWords(ctx, UserID(c), count)
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, gin.H{"words": words})
		return
	}
	words, err := h.study.NewWordBatch(ctx, UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"words": words})
}

// GET /api/review?mode=scientific|same-day
func (h *StudyHandler) GetReviewQueue(c *gin.Context) {
	mode, err := usecase.ParseReviewMode(c.Query("mode"))
	if err != nil {
		respondError(c, err)
		return
	}
	words, err := h.study.ReviewQueue(c.Request.Context(), UserID(c), mode)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"words": words})
}

// GET /api/mistakes?filter=all|today|high-freq
func (h *StudyHandler) GetMistakes(c *gin.Context) {
	filter, err := schedule.ParseMistakeFilter(c.Query("filter"))
	if err != nil {
		respondError(c, err)
		return
	}
	words, err := h.study.MistakeList(c.Request.Context(), UserID(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"words": words})
}

// GET /api/quiz/pool?range=...&book=
func (h *StudyHandler) GetQuizPool(c *gin.Context) {
	rng, err := schedule.ParseQuizRange(c.Query("range"))
	if err != nil {
		respondError(c, err)
		return
	}
	words, err := h.study.QuizPool(c.Request.Context(), UserID(c), rng, c.Query("book"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"words": words})
}

type outcomeRequest struct {
	Word    string `json:"word"`
	Outcome string `json:"outcome"`
	Mode    string `json:"mode,omitempty"`
}

// POST /api/outcomes/learn
func (h *StudyHandler) PostLearnOutcome(c *gin.Context) {
	var req outcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, entity.ErrInvalidArgument)
		return
	}
	outcome, err := entity.ParseOutcome(req.Outcome)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.study.RecordLearnOutcome(c.Request.Context(), UserID(c), req.Word, outcome); err != nil {
		respondError(c, err)
		return
	}
	h.log.WithFields(logrus.Fields{"user": UserID(c), "word": req.Word, "outcome": outcome}).Debug("learn outcome")
	respondOK(c, gin.H{"ok": true})
}

// POST /api/outcomes/review
func (h *StudyHandler) PostReviewOutcome(c *gin.Context) {
	var req outcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, entity.ErrInvalidArgument)
		return
	}
	outcome, err := entity.ParseOutcome(req.Outcome)
	if err != nil {
		respondError(c, err)
		return
	}
	mode, err := usecase.ParseReviewMode(req.Mode)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.study.RecordReviewOutcome(c.Request.Context(), UserID(c), req.Word, outcome, mode); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"ok": true})
}

// POST /api/outcomes/test
func (h *StudyHandler) PostTestOutcome(c *gin.Context) {
	var req struct {
		Word    string `json:"word"`
		Correct bool   `json:"correct"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, entity.ErrInvalidArgument)
		return
	}
	if err := h.study.RecordTestOutcome(c.Request.Context(), UserID(c), req.Word, req.Correct); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"ok": true})
}

// POST /api/tests
func (h *StudyHandler) PostTestRecord(c *gin.Context) {
	var req struct {
		Scope     string   `json:"scope"`
		WordCount int      `json:"word_count"`
		Score     int      `json:"score"`
		Missed    []string `json:"missed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, entity.ErrInvalidArgument)
		return
	}
	record, err := h.study.LogTestRecord(c.Request.Context(), UserID(c), req.Scope, req.WordCount, req.Score, req.Missed)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, record)
}

// GET /api/tests
func (h *StudyHandler) GetTestHistory(c *gin.Context) {
	records, err := h.study.TestHistory(c.Request.Context(), UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"records": records})
}
