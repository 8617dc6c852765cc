package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"labrecords/internal/services"
	"labrecords/internal/validation"
)

type LabController struct {
	reports *services.LabReportService
}

func NewLabController(reports *services.LabReportService) *LabController {
	return &LabController{reports: reports}
}

// CreateReport accepts the full nested report payload, validates it and
// returns the stored record with generated id and timestamps.
func (ctl *LabController) CreateReport(c *gin.Context) {
	var input validation.LabReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := ctl.reports.CreateReport(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// ListReports returns every report, newest first, with patient and performer
// expanded to their restricted projections.
func (ctl *LabController) ListReports(c *gin.Context) {
	reports, err := ctl.reports.ListReports()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// GetReport fetches a single report. A missing or unparseable id yields an
// empty result, not an error; the client decides what empty means.
func (ctl *LabController) GetReport(c *gin.Context) {
	reportID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	report, err := ctl.reports.GetReportByID(uint(reportID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
