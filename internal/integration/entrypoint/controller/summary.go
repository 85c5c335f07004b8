// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-tracker/backend/internal/application/usecase/summary"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/middleware"
)

// SummaryController handles monthly summary endpoints.
type SummaryController struct {
	listUseCase *summary.ListSummariesUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(listUseCase *summary.ListSummariesUseCase) *SummaryController {
	return &SummaryController{
		listUseCase: listUseCase,
	}
}

// List handles GET /summaries requests.
func (c *SummaryController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), summary.ListSummariesInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve summaries",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryListResponse(output))
}
