package controller

import (
	"fire_planner_backend/internal/model"
	"fire_planner_backend/internal/service"
	"fire_planner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalysisController struct {
	Service *service.ResultService
}

func NewAnalysisController(svc *service.ResultService) *AnalysisController {
	return &AnalysisController{Service: svc}
}

type saveAnalysisRequest struct {
	ProfileData      map[string]string `json:"profileData" binding:"required"`
	Career           string            `json:"career" binding:"required"`
	ROI              string            `json:"roi" binding:"required"`
	Fire             string            `json:"fire" binding:"required"`
	SideHustle       string            `json:"side_hustle" binding:"required"`
	InterestsRoadmap string            `json:"interests_roadmap" binding:"required"`
}

// @Summary Save a completed analysis
// @Tags analyses
// @Accept json
// @Produce json
// @Param body body saveAnalysisRequest true "analysis"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Router /analyses [post]
func (c *AnalysisController) Save(ctx *gin.Context) {
	session := util.GetSessionFromContext(ctx)
	if session == nil {
		util.Unauthorized(ctx)
		return
	}

	var req saveAnalysisRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Missing required analysis data")
		return
	}

	a, err := c.Service.Save(session.UserID, req.ProfileData, &service.AnalysisResult{
		Career:           req.Career,
		ROI:              req.ROI,
		Fire:             req.Fire,
		SideHustle:       req.SideHustle,
		InterestsRoadmap: req.InterestsRoadmap,
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"success": true, "analysisId": a.ID})
}

type listAnalysesResponse struct {
	Analyses []model.Analysis `json:"analyses"`
}

// @Summary List the user's analyses, newest first
// @Tags analyses
// @Produce json
// @Success 200 {object} listAnalysesResponse
// @Failure 401 {object} util.ErrorResponse
// @Router /analyses [get]
func (c *AnalysisController) List(ctx *gin.Context) {
	session := util.GetSessionFromContext(ctx)
	if session == nil {
		util.Unauthorized(ctx)
		return
	}

	as, err := c.Service.ListForUser(session.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if as == nil {
		as = []model.Analysis{}
	}

	util.Success(ctx, listAnalysesResponse{Analyses: as})
}
