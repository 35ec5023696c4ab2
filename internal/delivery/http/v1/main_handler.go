package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

// MainHandler serves the informational pages: home stats, about, health.
type MainHandler struct {
	jobUC    domain.JobUsecase
	healthUC usecase.HealthUsecase
}

func NewMainHandler(public *gin.RouterGroup, jobUC domain.JobUsecase, healthUC usecase.HealthUsecase) {
	handler := &MainHandler{jobUC: jobUC, healthUC: healthUC}

	public.GET("", handler.Home)
	public.GET("/about", handler.About)
	public.GET("/health", handler.Health)
}

// Home godoc
// @Summary      Home page data
// @Description  Platform counters plus the latest active job postings.
// @Tags         main
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       / [get]
func (h *MainHandler) Home(c *gin.Context) {
	stats, err := h.jobUC.PlatformStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	latest, err := h.jobUC.Search(c.Request.Context(), &domain.JobSearchFilter{}, 1)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", gin.H{
		"stats":       stats,
		"latest_jobs": latest.Jobs,
	})
}

// About godoc
// @Summary      About page data
// @Tags         main
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /about [get]
func (h *MainHandler) About(c *gin.Context) {
	stats, err := h.jobUC.PlatformStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", gin.H{"stats": stats})
}

// Health godoc
// @Summary      Health check
// @Tags         main
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /health [get]
func (h *MainHandler) Health(c *gin.Context) {
	status := h.healthUC.Check(c.Request.Context())
	if status["status"] != "ok" {
		response.Error(c, http.StatusServiceUnavailable, "System degraded", status)
		return
	}
	response.Success(c, http.StatusOK, "System operational", status)
}
