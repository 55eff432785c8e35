package http

import (
	"net/http"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-ledger/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-ledger/internal/core/domain"
	"github.com/comitanigiacomo/kanso-ledger/internal/core/services"
)

type LedgerHandler struct {
	svc *services.LedgerService
}

func NewLedgerHandler(svc *services.LedgerService) *LedgerHandler {
	return &LedgerHandler{
		svc: svc,
	}
}

type activityRequest struct {
	Date              string `json:"date" binding:"omitempty,isodate" example:"2025-05-20"`
	Speaking          int    `json:"speaking" binding:"min=0,max=100"`
	Pronunciation     int    `json:"pronunciation" binding:"min=0,max=100"`
	Vocabulary        int    `json:"vocabulary" binding:"min=0,max=100"`
	Grammar           int    `json:"grammar" binding:"min=0,max=100"`
	Story             int    `json:"story" binding:"min=0,max=100"`
	Reflex            int    `json:"reflex" binding:"min=0,max=100"`
	TotalTime         int    `json:"totalTime" binding:"min=0"`
	SessionsCompleted int    `json:"sessionsCompleted" binding:"min=0"`
}

type exerciseRequest struct {
	ExerciseType string `json:"exercise_type" binding:"required,oneof=speaking pronunciation vocabulary grammar story reflex puzzle"`
	Score        int    `json:"score"`
	Minutes      int    `json:"minutes"`
}

type recordResponse struct {
	Ledger    domain.Ledger `json:"ledger"`
	Persisted bool          `json:"persisted"`
}

func (h *LedgerHandler) RegisterRoutes(router *gin.RouterGroup) {
	ledger := router.Group("/ledger")
	{
		ledger.GET("", h.Get)
		ledger.POST("/activity", h.RecordActivity)
		ledger.POST("/exercises", h.RecordExercise)
		ledger.GET("/weekly", h.Weekly)
		ledger.GET("/radar", h.Radar)
		ledger.GET("/trends", h.Trends)
		ledger.GET("/feedback", h.Feedback)
		ledger.GET("/streak", h.Streak)
	}
}

func identityOrAbort(c *gin.Context) (string, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return "", false
	}
	return identity, true
}

// Get godoc
// @Summary   Full ledger, newest first
// @Tags      ledger
// @Produce   json
// @Security  BearerAuth
// @Success   200  {array}   domain.DailyRecord
// @Router    /ledger [get]
func (h *LedgerHandler) Get(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	ledger, err := h.svc.Ledger(c.Request.Context(), identity)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ledger)
}

// RecordActivity godoc
// @Summary   Fold today's activity into the ledger
// @Tags      ledger
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     tz    query     string           false  "IANA time zone"
// @Param     body  body      activityRequest  true   "day record"
// @Success   200   {object}  recordResponse
// @Failure   400   {object}  errorResponse
// @Router    /ledger/activity [post]
func (h *LedgerHandler) RecordActivity(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	loc, ok := callerLocation(c)
	if !ok {
		return
	}

	var req activityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	var date civil.Date
	if req.Date != "" {
		date, _ = civil.ParseDate(req.Date)
	}

	result, err := h.svc.RecordActivity(c.Request.Context(), services.ActivityInput{
		Identity: identity,
		Date:     date,
		Location: loc,
		Scores: map[domain.Skill]int{
			domain.SkillSpeaking:      req.Speaking,
			domain.SkillPronunciation: req.Pronunciation,
			domain.SkillVocabulary:    req.Vocabulary,
			domain.SkillGrammar:       req.Grammar,
			domain.SkillStory:         req.Story,
			domain.SkillReflex:        req.Reflex,
		},
		TotalTime:         req.TotalTime,
		SessionsCompleted: req.SessionsCompleted,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, recordResponse{Ledger: result.Ledger, Persisted: result.Persisted})
}

// RecordExercise godoc
// @Summary   Record one completed exercise
// @Tags      ledger
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     tz    query     string           false  "IANA time zone"
// @Param     body  body      exerciseRequest  true   "exercise result"
// @Success   200   {object}  recordResponse
// @Failure   400   {object}  errorResponse
// @Router    /ledger/exercises [post]
func (h *LedgerHandler) RecordExercise(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	loc, ok := callerLocation(c)
	if !ok {
		return
	}

	var req exerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	result, err := h.svc.RecordExercise(c.Request.Context(), services.ExerciseInput{
		Identity:     identity,
		ExerciseType: req.ExerciseType,
		Score:        req.Score,
		Minutes:      req.Minutes,
		Location:     loc,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, recordResponse{Ledger: result.Ledger, Persisted: result.Persisted})
}

// Weekly godoc
// @Summary   Last seven records, oldest first
// @Tags      analytics
// @Produce   json
// @Security  BearerAuth
// @Success   200  {array}  domain.DailyRecord
// @Router    /ledger/weekly [get]
func (h *LedgerHandler) Weekly(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	week, err := h.svc.Weekly(c.Request.Context(), identity)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}

// Radar godoc
// @Summary   Per-skill averages over the whole ledger
// @Tags      analytics
// @Produce   json
// @Security  BearerAuth
// @Success   200  {array}  analytics.RadarPoint
// @Router    /ledger/radar [get]
func (h *LedgerHandler) Radar(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	radar, err := h.svc.Radar(c.Request.Context(), identity)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, radar)
}

// Trends godoc
// @Summary   This week against last week, per skill
// @Tags      analytics
// @Produce   json
// @Security  BearerAuth
// @Success   200  {array}  analytics.SkillTrend
// @Router    /ledger/trends [get]
func (h *LedgerHandler) Trends(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	trends, err := h.svc.Trends(c.Request.Context(), identity)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, trends)
}

// Feedback godoc
// @Summary   Feedback report
// @Tags      analytics
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  analytics.Report
// @Router    /ledger/feedback [get]
func (h *LedgerHandler) Feedback(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	report, err := h.svc.Feedback(c.Request.Context(), identity)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Streak godoc
// @Summary   Current and longest run of active days
// @Tags      analytics
// @Produce   json
// @Security  BearerAuth
// @Param     tz   query     string  false  "IANA time zone"
// @Success   200  {object}  analytics.StreakSummary
// @Router    /ledger/streak [get]
func (h *LedgerHandler) Streak(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	loc, ok := callerLocation(c)
	if !ok {
		return
	}

	streak, err := h.svc.Streak(c.Request.Context(), identity, loc)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, streak)
}
