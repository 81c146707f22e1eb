package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/twillhq/talentboard/internal/app"
	"github.com/twillhq/talentboard/internal/domain"
)

func (s *Server) listStages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stages": toStages(domain.Stages())})
}

func (s *Server) dashboardAlerts(c *gin.Context) {
	now, err := s.now(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	resp, err := s.Alerts.DashboardAlerts(c.Request.Context(), app.DashboardAlertsRequest{Now: &now, AdvisorID: s.advisor(c)})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDashboard(resp))
}

func (s *Server) metricsSummary(c *gin.Context) {
	m, err := s.Metrics.Summary(c.Request.Context(), s.advisor(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMetrics(m))
}

func (s *Server) listRoles(c *gin.Context) {
	items, err := s.Roles.List(c.Request.Context(), s.advisor(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	out := make([]roleListItemJSON, 0, len(items))
	for _, it := range items {
		out = append(out, roleListItemJSON{
			roleJSON:    toRole(it.Role, it.ClientName),
			ActiveCount: it.ActiveCount,
			TotalCount:  it.TotalCount,
			Probability: it.Probability,
		})
	}
	c.JSON(http.StatusOK, gin.H{"roles": out})
}

func (s *Server) roleOverview(c *gin.Context) {
	now, err := s.now(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	ov, err := s.Roles.Overview(c.Request.Context(), c.Param("id"), now)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRoleOverview(ov))
}

func (s *Server) roleAlerts(c *gin.Context) {
	now, err := s.now(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	summary, err := s.Alerts.RoleAlerts(c.Request.Context(), c.Param("id"), now)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRoleAlertSummary(*summary))
}

type priorityRequest struct {
	Priority string `json:"priority" binding:"required"`
}

func (s *Server) updatePriority(c *gin.Context) {
	var req priorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, badRequest("%v", err))
		return
	}
	priority, err := domain.ParsePriority(req.Priority)
	if err != nil {
		abortWithError(c, err)
		return
	}
	role, err := s.Roles.UpdatePriority(c.Request.Context(), c.Param("id"), priority)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRole(*role, ""))
}

func (s *Server) candidateView(c *gin.Context) {
	now, err := s.now(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	view, err := s.Candidates.View(c.Request.Context(), c.Param("id"), now)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCandidateView(*view))
}

func (s *Server) candidateOptions(c *gin.Context) {
	now, err := s.now(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	view, err := s.Candidates.View(c.Request.Context(), c.Param("id"), now)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"candidate_id":  view.Candidate.ID,
		"current_stage": toStage(view.Candidate.CurrentStage),
		"days_in_stage": view.DaysInStage,
		"wait_level":    string(view.WaitLevel),
		"urgent":        view.Urgent,
		"options":       toStages(view.Options),
	})
}

func (s *Server) candidateHistory(c *gin.Context) {
	changes, err := s.Candidates.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	out := make([]stageChangeJSON, 0, len(changes))
	for _, sc := range changes {
		out = append(out, toStageChange(sc))
	}
	c.JSON(http.StatusOK, gin.H{"history": out})
}

type stageRequest struct {
	Stage string `json:"stage" binding:"required"`
}

func (s *Server) stageTransition(c *gin.Context) {
	var req stageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, badRequest("%v", err))
		return
	}
	stage, err := domain.ParseStage(req.Stage)
	if err != nil {
		abortWithError(c, err)
		return
	}
	now, err := s.now(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	res, err := s.Candidates.StageTransition(c.Request.Context(), c.Param("id"), stage, now)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"candidate": toCandidate(res.Candidate),
		"change":    toStageChange(res.Change),
	})
}

func (s *Server) clearAlert(c *gin.Context) {
	now, err := s.now(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	cand, err := s.Candidates.ClearAlert(c.Request.Context(), c.Param("id"), now)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCandidate(*cand))
}

func (s *Server) touch(c *gin.Context) {
	now, err := s.now(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	cand, err := s.Candidates.Touch(c.Request.Context(), c.Param("id"), now)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCandidate(*cand))
}
