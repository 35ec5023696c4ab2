package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SavedJobHandler struct {
	savedUC domain.SavedJobUsecase
}

func NewSavedJobHandler(protected *gin.RouterGroup, savedUC domain.SavedJobUsecase) {
	handler := &SavedJobHandler{savedUC: savedUC}

	protected.POST("/jobs/:id/save", handler.Save)
	protected.DELETE("/jobs/:id/save", handler.Unsave)
	protected.GET("/jobseeker/saved-jobs", handler.ListMine)
}

// Save godoc
// @Summary      Save a job
// @Description  Bookmarks the job for the caller's job seeker profile. Saving an already-saved job is a no-op that still succeeds.
// @Tags         saved-jobs
// @Produce      json
// @Param        id  path  int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Success      201  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/save [post]
// @Security     BearerAuth
func (h *SavedJobHandler) Save(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	alreadySaved, err := h.savedUC.Save(c.Request.Context(), userID, jobID)
	if err != nil {
		c.Error(err)
		return
	}
	if alreadySaved {
		response.Success(c, http.StatusOK, "Job already saved", nil)
		return
	}
	response.Success(c, http.StatusCreated, "Job saved", nil)
}

// Unsave godoc
// @Summary      Remove a saved job
// @Tags         saved-jobs
// @Produce      json
// @Param        id  path  int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/save [delete]
// @Security     BearerAuth
func (h *SavedJobHandler) Unsave(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.savedUC.Unsave(c.Request.Context(), userID, jobID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job removed from saved jobs", nil)
}

// ListMine godoc
// @Summary      List the caller's saved jobs
// @Tags         saved-jobs
// @Produce      json
// @Param        page  query  int  false  "Page number"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobseeker/saved-jobs [get]
// @Security     BearerAuth
func (h *SavedJobHandler) ListMine(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	saved, total, err := h.savedUC.ListMine(c.Request.Context(), userID, page)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", gin.H{"saved_jobs": saved, "total": total})
}
