package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mntax-dev/mntax/internal/logger"
	"github.com/mntax-dev/mntax/internal/model"
	"github.com/mntax-dev/mntax/internal/schedule"
)

// TaxHandler serves tax computations and schedule lookups.
type TaxHandler struct {
	svc *schedule.Service
}

func NewTaxHandler(svc *schedule.Service) *TaxHandler {
	return &TaxHandler{svc: svc}
}

type basicTaxResponse struct {
	FilingStatus string `json:"filing_status"`
	Income       string `json:"income"`
	BasicTax     string `json:"basic_tax"`
}

type bracketResponse struct {
	LowerBound string `json:"lower_bound"`
	UpperBound string `json:"upper_bound"`
	BaseTax    string `json:"base_tax"`
	Rate       string `json:"rate"`
}

type statusBracketsResponse struct {
	FilingStatus string            `json:"filing_status"`
	Brackets     []bracketResponse `json:"brackets"`
}

type scheduleResponse struct {
	Statuses []statusBracketsResponse `json:"statuses"`
}

// Health reports liveness.
func (h *TaxHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// BasicTax computes the tax for the status and income query parameters.
func (h *TaxHandler) BasicTax(c *gin.Context) {
	statusText := c.Query("status")
	incomeText := c.Query("income")

	if statusText == "" || incomeText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status and income query parameters are required"})
		return
	}

	income, err := decimal.NewFromString(incomeText)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid income %q", incomeText)})
		return
	}

	status, err := model.ParseFilingStatus(statusText)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tax := decimal.Zero
	if bracket, ok := h.svc.Match(status, income); ok {
		tax = bracket.Tax(income)
	} else {
		logger.Warn("no bracket matched income",
			zap.String("filing_status", string(status)),
			zap.String("income", income.String()),
		)
	}

	c.JSON(http.StatusOK, basicTaxResponse{
		FilingStatus: string(status),
		Income:       income.StringFixed(2),
		BasicTax:     tax.StringFixed(2),
	})
}

// Schedule returns every bracket, grouped per filing status.
func (h *TaxHandler) Schedule(c *gin.Context) {
	grouped := lo.GroupBy(h.svc.All(), func(b model.Bracket) model.FilingStatus {
		return b.Status
	})
	statuses := lo.Map(h.svc.Statuses(), func(status model.FilingStatus, _ int) statusBracketsResponse {
		return statusBracketsResponse{
			FilingStatus: string(status),
			Brackets:     lo.Map(grouped[status], toBracketResponse),
		}
	})

	c.JSON(http.StatusOK, scheduleResponse{Statuses: statuses})
}

// ScheduleForStatus returns the brackets for one filing status.
func (h *TaxHandler) ScheduleForStatus(c *gin.Context) {
	status, err := model.ParseFilingStatus(c.Param("status"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, statusBracketsResponse{
		FilingStatus: string(status),
		Brackets:     lo.Map(h.svc.Brackets(status), toBracketResponse),
	})
}

func toBracketResponse(b model.Bracket, _ int) bracketResponse {
	return bracketResponse{
		LowerBound: b.Lower.String(),
		UpperBound: b.Upper.String(),
		BaseTax:    b.Base.StringFixed(2),
		Rate:       b.Rate.String(),
	}
}
