package handler

import (
	"errors"
	"net/http"

	"logistics_api/internal/mailer"
	"logistics_api/internal/model"
	"logistics_api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EnquiryHandler handles the public contact-form relay
type EnquiryHandler struct {
	service service.EnquiryService
	log     *zap.SugaredLogger
}

// NewEnquiryHandler creates a new EnquiryHandler
func NewEnquiryHandler(s service.EnquiryService, log *zap.SugaredLogger) *EnquiryHandler {
	return &EnquiryHandler{service: s, log: log}
}

// SubmitEnquiry validates and relays an enquiry. Validation fails before any
// outbound call is made.
func (h *EnquiryHandler) SubmitEnquiry(c *gin.Context) {
	var req model.Enquiry
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and Phone are required"})
		return
	}

	if err := h.service.SubmitEnquiry(c.Request.Context(), req); err != nil {
		var upstream *mailer.UpstreamError
		if errors.As(err, &upstream) {
			h.log.Errorf("Mail provider rejected enquiry: status %d", upstream.StatusCode)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to send email via provider",
				"details": upstream.Body,
			})
			return
		}
		h.log.Errorf("Error relaying enquiry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send enquiry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RegisterEnquiryRoutes registers the public enquiry routes. Both the root
// path and /send accept submissions, matching the deployed form endpoints.
func (h *EnquiryHandler) RegisterEnquiryRoutes(r *gin.Engine) {
	r.POST("/", h.SubmitEnquiry)
	r.POST("/send", h.SubmitEnquiry)
}
