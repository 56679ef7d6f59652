package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skill-swap/api-go/services"
	"github.com/skill-swap/api-go/utils"
)

type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{Reports: reports}
}

func (rc *ReportController) UsersReport(c *gin.Context) {
	report, err := rc.Reports.Users(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: report})
}

func (rc *ReportController) SwapsReport(c *gin.Context) {
	report, err := rc.Reports.Swaps(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: report})
}

func (rc *ReportController) FeedbackReport(c *gin.Context) {
	report, err := rc.Reports.Feedback(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: report})
}

// Download streams a report as a CSV attachment.
func (rc *ReportController) Download(c *gin.Context) {
	reportType := c.Param("type")
	if !services.ValidReportType(reportType) {
		utils.RespondError(c, utils.Validation("invalid report type"))
		return
	}

	// Fully rendered before any header is written.
	var buf bytes.Buffer
	if err := rc.Reports.WriteCSV(c.Request.Context(), reportType, &buf); err != nil {
		utils.RespondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s-report.csv", reportType))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
