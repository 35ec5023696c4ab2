package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profile := protected.Group("/profile")
	{
		profile.GET("", handler.Get)
		profile.PUT("", handler.Update)
		profile.POST("/employer", handler.CompleteEmployer)
		profile.POST("/jobseeker", handler.CompleteJobSeeker)
	}
}

// Get godoc
// @Summary      Get the caller's profile
// @Description  Returns the user, profile, and role-specific half. Incomplete profiles get a 403 whose next field points at the completion endpoint.
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /profile [get]
// @Security     BearerAuth
func (h *ProfileHandler) Get(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	view, err := h.profileUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", view)
}

// Update godoc
// @Summary      Edit the caller's profile
// @Description  Updates identity, contact, and role-specific fields as one atomic change; nothing commits unless every section validates.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.ProfileEditInput  true  "Profile edit form"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) Update(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var input domain.ProfileEditInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	view, err := h.profileUC.UpdateProfile(c.Request.Context(), userID, &input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", view)
}

// CompleteEmployer godoc
// @Summary      Complete the employer profile
// @Description  Creates the employer half of the profile. Safe to call twice; a repeat returns the existing profile unchanged.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.EmployerProfileInput  true  "Employer profile form"
// @Success      200  {object}  response.Response
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /profile/employer [post]
// @Security     BearerAuth
func (h *ProfileHandler) CompleteEmployer(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var input domain.EmployerProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, created, err := h.profileUC.CompleteEmployer(c.Request.Context(), userID, &input)
	if err != nil {
		c.Error(err)
		return
	}
	if created {
		response.Success(c, http.StatusCreated, "Employer profile created", profile)
		return
	}
	response.Success(c, http.StatusOK, "Employer profile already completed", profile)
}

// CompleteJobSeeker godoc
// @Summary      Complete the job seeker profile
// @Description  Creates the job seeker half of the profile. Safe to call twice; a repeat returns the existing profile unchanged.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.JobSeekerProfileInput  true  "Job seeker profile form"
// @Success      200  {object}  response.Response
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /profile/jobseeker [post]
// @Security     BearerAuth
func (h *ProfileHandler) CompleteJobSeeker(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var input domain.JobSeekerProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, created, err := h.profileUC.CompleteJobSeeker(c.Request.Context(), userID, &input)
	if err != nil {
		c.Error(err)
		return
	}
	if created {
		response.Success(c, http.StatusCreated, "Job seeker profile created", profile)
		return
	}
	response.Success(c, http.StatusOK, "Job seeker profile already completed", profile)
}
