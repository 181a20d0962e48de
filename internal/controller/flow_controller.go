package controller

import (
	"errors"
	"fire_planner_backend/internal/service"
	"fire_planner_backend/internal/util"
	"fire_planner_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FlowController struct {
	Service *service.FlowService
}

func NewFlowController(svc *service.FlowService) *FlowController {
	return &FlowController{Service: svc}
}

type recordAnswerRequest struct {
	QuestionID string `json:"questionId" binding:"required"`
	Value      string `json:"value"`
}

// @Summary Start (or restart) the questionnaire flow
// @Tags questionnaire
// @Produce json
// @Success 200 {object} service.SectionView
// @Failure 409 {object} util.ErrorResponse
// @Router /flow/start [post]
func (c *FlowController) Start(ctx *gin.Context) {
	session := util.GetSessionFromContext(ctx)
	if session == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.Service.Start(session.UserID)
	if err != nil {
		c.writeFlowError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary Current section with its effective question set
// @Tags questionnaire
// @Produce json
// @Success 200 {object} service.SectionView
// @Router /flow [get]
func (c *FlowController) Current(ctx *gin.Context) {
	session := util.GetSessionFromContext(ctx)
	if session == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.Service.View(session.UserID)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, view)
}

// @Summary Record one answer
// @Tags questionnaire
// @Accept json
// @Produce json
// @Param body body recordAnswerRequest true "answer"
// @Success 200 {object} service.SectionView
// @Router /flow/answers [put]
func (c *FlowController) RecordAnswer(ctx *gin.Context) {
	session := util.GetSessionFromContext(ctx)
	if session == nil {
		util.Unauthorized(ctx)
		return
	}

	var req recordAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.Service.RecordAnswer(session.UserID, req.QuestionID, req.Value)
	if err != nil {
		c.writeFlowError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

type advanceResponse struct {
	Submitted bool                    `json:"submitted"`
	Section   *service.SectionView    `json:"section,omitempty"`
	Results   *service.AnalysisResult `json:"results,omitempty"`
}

// @Summary Advance to the next section, or submit on the last one
// @Description On the final section this resolves the payload, calls the
// @Description analysis service and returns the generated reports.
// @Tags questionnaire
// @Produce json
// @Success 200 {object} advanceResponse
// @Failure 409 {object} util.ErrorResponse
// @Failure 502 {object} util.ErrorResponse
// @Router /flow/advance [post]
func (c *FlowController) Advance(ctx *gin.Context) {
	session := util.GetSessionFromContext(ctx)
	if session == nil {
		util.Unauthorized(ctx)
		return
	}

	view, results, err := c.Service.Advance(ctx.Request.Context(), session.UserID)
	if err != nil {
		c.writeFlowError(ctx, err)
		return
	}

	util.Success(ctx, advanceResponse{
		Submitted: results != nil,
		Section:   view,
		Results:   results,
	})
}

// @Summary Go back one section
// @Tags questionnaire
// @Produce json
// @Success 200 {object} service.SectionView
// @Router /flow/retreat [post]
func (c *FlowController) Retreat(ctx *gin.Context) {
	session := util.GetSessionFromContext(ctx)
	if session == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.Service.Retreat(session.UserID)
	if err != nil {
		c.writeFlowError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary Discard the flow and all recorded answers
// @Tags questionnaire
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 409 {object} util.ErrorResponse
// @Router /flow [delete]
func (c *FlowController) Discard(ctx *gin.Context) {
	session := util.GetSessionFromContext(ctx)
	if session == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.Service.Discard(session.UserID); err != nil {
		c.writeFlowError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"success": true})
}

// writeFlowError maps flow errors onto the taxonomy: incompleteness and
// in-flight submissions are local conflicts, an analysis failure is a
// retryable upstream error, anything else is internal.
func (c *FlowController) writeFlowError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrFlowNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrUnknownQuestion):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrSectionIncomplete), errors.Is(err, util.ErrSubmissionInFlight):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrAnalysisFailed):
		// The flow is back in its interactive state and the answers are
		// intact, so the client can simply retry.
		logger.Log.Error("analysis submission failed", zap.Error(err))
		util.Error(ctx, http.StatusBadGateway, "Analysis generation failed. Please try again.")
	default:
		util.LogInternalError(ctx, err)
	}
}
