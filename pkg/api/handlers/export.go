package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	apierrors "github.com/vivwell/api/pkg/api/errors"
	"github.com/vivwell/api/pkg/export"
	"github.com/vivwell/api/pkg/models"
)

// ExportHandler streams lead exports to the sales team.
type ExportHandler struct {
	export *export.Service
}

// NewExportHandler creates a new export handler.
func NewExportHandler(exportService *export.Service) *ExportHandler {
	return &ExportHandler{export: exportService}
}

// Download godoc
// @Summary Export leads
// @Description Download the filtered lead list as CSV or Excel
// @Tags Leads
// @Produce text/csv
// @Param format query string false "Format" Enums(csv, excel) default(csv)
// @Param status query string false "Status filter"
// @Param source query string false "UTM source filter"
// @Param min_score query int false "Minimum lead score"
// @Success 200 {file} file
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/leads/export [get]
func (h *ExportHandler) Download(c echo.Context) error {
	format := c.QueryParam("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "excel" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_format",
			Message: "Format must be csv or excel",
		})
	}

	minScore, _ := strconv.Atoi(c.QueryParam("min_score"))
	filters := export.Filters{
		Status:   c.QueryParam("status"),
		Source:   c.QueryParam("source"),
		MinScore: minScore,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	filename := export.Filename(format, time.Now().Format("20060102-150405"))
	c.Response().Header().Set(echo.HeaderContentType, export.ContentType(format))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Response().WriteHeader(http.StatusOK)

	var err error
	if format == "excel" {
		err = h.export.WriteExcel(ctx, c.Response(), filters)
	} else {
		err = h.export.WriteCSV(ctx, c.Response(), filters)
	}
	if err != nil {
		// Headers are already written; log and drop the connection
		return apierrors.InternalError(c, err)
	}

	return nil
}
