package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Veraticus/sevos/internal/common"
	"github.com/Veraticus/sevos/internal/model"
)

func (h *handler) listLeads(c *gin.Context) {
	leads, err := h.store.ListLeads(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, "Listing leads", err)
		return
	}
	c.JSON(http.StatusOK, leads)
}

func (h *handler) getLead(c *gin.Context) {
	lead, err := h.store.GetLead(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, "Loading lead", err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (h *handler) createLead(c *gin.Context) {
	var lead model.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		writeError(c, h.logger, "Creating lead", &common.InputError{Violations: []common.Violation{bindViolation(err)}})
		return
	}

	created, err := h.store.CreateLead(c.Request.Context(), lead)
	if err != nil {
		writeError(c, h.logger, "Creating lead", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *handler) leadSummary(c *gin.Context) {
	leads, err := h.store.ListLeads(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, "Summarizing leads", err)
		return
	}
	c.JSON(http.StatusOK, model.SummarizeLeads(leads))
}

func (h *handler) listInvoices(c *gin.Context) {
	invoices, err := h.store.ListInvoices(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, "Listing invoices", err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *handler) getInvoice(c *gin.Context) {
	invoice, err := h.store.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, "Loading invoice", err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *handler) createInvoice(c *gin.Context) {
	var invoice model.Invoice
	if err := c.ShouldBindJSON(&invoice); err != nil {
		writeError(c, h.logger, "Creating invoice", &common.InputError{Violations: []common.Violation{bindViolation(err)}})
		return
	}

	created, err := h.store.CreateInvoice(c.Request.Context(), invoice)
	if err != nil {
		writeError(c, h.logger, "Creating invoice", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *handler) invoiceSummary(c *gin.Context) {
	invoices, err := h.store.ListInvoices(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, "Summarizing invoices", err)
		return
	}
	c.JSON(http.StatusOK, model.SummarizeInvoices(invoices))
}
