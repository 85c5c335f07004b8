// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-tracker/backend/internal/application/usecase/export"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/middleware"
)

// ExportController handles the CSV export endpoint.
type ExportController struct {
	exportUseCase *export.ExportTransactionsUseCase
}

// NewExportController creates a new export controller instance.
func NewExportController(exportUseCase *export.ExportTransactionsUseCase) *ExportController {
	return &ExportController{
		exportUseCase: exportUseCase,
	}
}

// Export handles GET /transactions/export requests. The CSV is buffered
// before writing so a mid-export failure yields a clean error response
// instead of a truncated file.
func (c *ExportController) Export(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := export.ExportTransactionsInput{
		UserID:    userID,
		StartDate: ctx.Query("start_date"),
		EndDate:   ctx.Query("end_date"),
		Category:  ctx.Query("category"),
	}

	var buf bytes.Buffer
	if err := c.exportUseCase.Execute(ctx.Request.Context(), input, &buf); err != nil {
		var txnErr *domainerror.TransactionError
		if errors.As(err, &txnErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: txnErr.Message,
				Code:  string(txnErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export transactions",
		})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="transactions.csv"`)
	ctx.Data(http.StatusOK, "text/csv", buf.Bytes())
}
