package controller

import (
	"net/http"

	csrfService "support-desk/internal/service/csrf"
	"support-desk/pkg/logger"
	"support-desk/pkg/model"

	"github.com/gin-gonic/gin"
)

// user-facing messages; relay and store internals are never exposed
const (
	msgInvalidToken   = "Invalid or missing security token. Please refresh the page and try again."
	msgInvalidPayload = "Invalid request payload"
	msgValidation     = "Validation failed"
	msgRelayFailure   = "Failed to submit complaint. Please try again later."
)

// SendComplaint handles one complaint form submission: CSRF check, field
// validation, sanitization, relay to the support mailbox and one-time token
// consumption.
func (ctrl *controller) SendComplaint(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID := ""
	if ctrl.csrfEnabled {
		var err error
		sessionID, err = ctrl.validateCSRF(c)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": msgInvalidToken,
			})
			return
		}
	}

	var req model.ComplaintRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		logger.Error(err, "failed to bind complaint request")
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": msgInvalidPayload,
		})
		return
	}

	ref, fieldErrs, err := ctrl.complaintService.Submit(ctx, &req)
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": msgValidation,
			"errors":  fieldErrs,
		})
		return
	}
	if err != nil {
		logger.Error(err, "failed to relay complaint to support mailbox")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": msgRelayFailure,
		})
		return
	}

	if ctrl.csrfEnabled {
		// one-time use: the token must not survive a successful submission
		err = ctrl.csrfService.Consume(ctx, sessionID)
		if err != nil {
			logger.Error(err, "failed to consume csrf token")
		}
	}

	logger.Infof("complaint relayed with reference %s", ref)
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"referenceNumber": ref,
	})
}

// validateCSRF reads the session and token cookies and checks them against
// the store, failing closed when either is absent.
func (ctrl *controller) validateCSRF(c *gin.Context) (string, error) {
	sessionID, err := c.Cookie(CookieSessionID)
	if err != nil {
		return "", csrfService.ErrInvalidToken
	}
	tok, err := c.Cookie(CookieCSRFToken)
	if err != nil {
		return "", csrfService.ErrInvalidToken
	}

	err = ctrl.csrfService.Validate(c.Request.Context(), sessionID, tok)
	if err != nil {
		return "", err
	}
	return sessionID, nil
}
