package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	appUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, appUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{appUC: appUC}

	protected.POST("/jobs/:id/apply", handler.Apply)
	protected.GET("/jobseeker/applications", handler.ListMine)
	protected.GET("/jobs/:id/applications", handler.ListForJob)
	protected.PATCH("/applications/:id/status", handler.UpdateStatus)
}

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Submits an application on behalf of the caller's job seeker profile. A second application to the same job is rejected with a conflict.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id           path      int           true   "Job ID"
// @Param        application  body      ApplyRequest  false  "Cover letter"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	app, err := h.appUC.Apply(c.Request.Context(), userID, jobID, req.CoverLetter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// ListMine godoc
// @Summary      List the caller's applications
// @Tags         applications
// @Produce      json
// @Param        page  query  int  false  "Page number"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobseeker/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	apps, total, err := h.appUC.ListMine(c.Request.Context(), userID, page)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", gin.H{"applications": apps, "total": total})
}

// ListForJob godoc
// @Summary      List applications for a job
// @Description  Owner-only: returns every application submitted to one of the caller's jobs.
// @Tags         applications
// @Produce      json
// @Param        id  path  int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	apps, err := h.appUC.ListForJob(c.Request.Context(), userID, jobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", apps)
}

// UpdateStatus godoc
// @Summary      Update an application's status
// @Description  Moves the application to reviewed, interview, accepted, or rejected. Only the employer who owns the job may do this.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id      path      int                  true  "Application ID"
// @Param        status  body      UpdateStatusRequest  true  "New status"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	appID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.appUC.UpdateStatus(c.Request.Context(), userID, appID, req.Status); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application status updated", nil)
}
