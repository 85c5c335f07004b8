// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-tracker/backend/internal/application/usecase/dashboard"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	statsUseCase *dashboard.GetCurrentMonthStatsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(statsUseCase *dashboard.GetCurrentMonthStatsUseCase) *DashboardController {
	return &DashboardController{
		statsUseCase: statsUseCase,
	}
}

// Stats handles GET /dashboard/stats requests.
func (c *DashboardController) Stats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.statsUseCase.Execute(ctx.Request.Context(), dashboard.GetCurrentMonthStatsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute dashboard stats",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardStatsResponse(output))
}
