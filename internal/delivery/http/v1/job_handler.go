package v1

import (
	"net/http"
	"strconv"
	"time"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, optional *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// Public routes: search and categories never need a session, the job
	// detail personalizes when one is present.
	public.GET("/jobs", handler.Search)
	public.GET("/categories", handler.ListCategories)
	optional.GET("/jobs/:id", handler.GetDetail)

	// Employer job management
	jobs := protected.Group("/jobs")
	{
		jobs.POST("", handler.Create)
		jobs.PUT("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
		jobs.POST("/:id/toggle", handler.ToggleActive)
	}

	protected.GET("/employer/jobs", handler.ListByEmployer)
}

type JobRequest struct {
	Title               string   `json:"title" binding:"required"`
	Description         string   `json:"description" binding:"required"`
	Requirements        string   `json:"requirements"`
	CategoryID          *int64   `json:"category_id"`
	JobType             string   `json:"job_type" binding:"required"`
	ExperienceLevel     string   `json:"experience_level" binding:"required"`
	SalaryMin           *float64 `json:"salary_min"`
	SalaryMax           *float64 `json:"salary_max"`
	Location            string   `json:"location"`
	RemoteWork          bool     `json:"remote_work"`
	SkillsRequired      string   `json:"skills_required"`
	ApplicationDeadline string   `json:"application_deadline"` // RFC 3339 date
}

func (r *JobRequest) toDomain() (*domain.Job, error) {
	job := &domain.Job{
		Title:           r.Title,
		Description:     r.Description,
		Requirements:    r.Requirements,
		CategoryID:      r.CategoryID,
		JobType:         r.JobType,
		ExperienceLevel: r.ExperienceLevel,
		SalaryMin:       r.SalaryMin,
		SalaryMax:       r.SalaryMax,
		Location:        r.Location,
		RemoteWork:      r.RemoteWork,
		SkillsRequired:  r.SkillsRequired,
	}
	if r.ApplicationDeadline != "" {
		deadline, err := time.Parse(time.RFC3339, r.ApplicationDeadline)
		if err != nil {
			deadline, err = time.Parse("2006-01-02", r.ApplicationDeadline)
			if err != nil {
				return nil, err
			}
		}
		job.ApplicationDeadline = &deadline
	}
	return job, nil
}

// Search godoc
// @Summary      Search jobs
// @Description  Filtered listing over active jobs, newest first, ten per page. All filters combine; an out-of-range page clamps to the nearest valid one.
// @Tags         jobs
// @Produce      json
// @Param        q                 query  string  false  "Matches title, description, company, or skills"
// @Param        category_id       query  int     false  "Category ID"
// @Param        job_type          query  string  false  "full_time, part_time, contract, internship, freelance"
// @Param        experience_level  query  string  false  "entry, mid, senior, executive"
// @Param        location          query  string  false  "Location substring"
// @Param        remote            query  bool    false  "Remote jobs only"
// @Param        salary_min        query  number  false  "Minimum salary floor"
// @Param        page              query  int     false  "Page number"
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) Search(c *gin.Context) {
	filter := &domain.JobSearchFilter{
		Query:           c.Query("q"),
		JobType:         c.Query("job_type"),
		ExperienceLevel: c.Query("experience_level"),
		Location:        c.Query("location"),
		RemoteOnly:      c.Query("remote") == "true",
	}
	if v := c.Query("category_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid category ID"))
			return
		}
		filter.CategoryID = &id
	}
	if v := c.Query("salary_min"); v != "" {
		salary, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid minimum salary"))
			return
		}
		filter.SalaryMin = &salary
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := h.jobUC.Search(c.Request.Context(), filter, page)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", result)
}

// GetDetail godoc
// @Summary      Get job detail
// @Description  Returns the job with company and category info. For a signed-in job seeker the response also reports whether they can apply, have applied, or have saved it.
// @Tags         jobs
// @Produce      json
// @Param        id  path  int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	viewerID := c.GetString(string(domain.KeyUserID))

	detail, err := h.jobUC.GetDetail(c.Request.Context(), id, viewerID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", detail)
}

// Create godoc
// @Summary      Post a new job
// @Description  Creates an active job owned by the caller's employer profile.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      JobRequest  true  "Job form"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	job, err := req.toDomain()
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application deadline"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.jobUC.Create(c.Request.Context(), userID, job); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job created", job)
}

// Update godoc
// @Summary      Update a job
// @Description  Rewrites the posting. Only the owning employer may do this.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      int         true  "Job ID"
// @Param        job  body      JobRequest  true  "Job form"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	job, err := req.toDomain()
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application deadline"))
		return
	}
	job.ID = id

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.jobUC.Update(c.Request.Context(), userID, job); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated", job)
}

// Delete godoc
// @Summary      Delete a job
// @Description  Removes the posting and its applications. Only the owning employer may do this.
// @Tags         jobs
// @Produce      json
// @Param        id  path  int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.jobUC.Delete(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted", nil)
}

// ToggleActive godoc
// @Summary      Toggle a job's active flag
// @Description  Flips whether the posting accepts applications and shows up in search.
// @Tags         jobs
// @Produce      json
// @Param        id  path  int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/toggle [post]
// @Security     BearerAuth
func (h *JobHandler) ToggleActive(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	active, err := h.jobUC.ToggleActive(c.Request.Context(), userID, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated", gin.H{"is_active": active})
}

// ListByEmployer godoc
// @Summary      List the caller's job postings
// @Tags         jobs
// @Produce      json
// @Param        page  query  int  false  "Page number"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /employer/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListByEmployer(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	jobs, total, err := h.jobUC.ListByEmployer(c.Request.Context(), userID, page)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", gin.H{"jobs": jobs, "total": total})
}

// ListCategories godoc
// @Summary      List job categories
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /categories [get]
func (h *JobHandler) ListCategories(c *gin.Context) {
	categories, err := h.jobUC.ListCategories(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", categories)
}
