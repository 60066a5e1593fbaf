package controller

import (
	"net/http"

	"support-desk/pkg/logger"

	"github.com/gin-gonic/gin"
)

// GetCSRFToken issues a fresh anti-forgery token for the caller's session
// and sets the session and token cookies.
func (ctrl *controller) GetCSRFToken(c *gin.Context) {
	// reuse the session identifier when the browser already has one
	sessionID, err := c.Cookie(CookieSessionID)
	if err != nil {
		sessionID = ""
	}

	sessionID, tok, err := ctrl.csrfService.Issue(c.Request.Context(), sessionID)
	if err != nil {
		logger.Error(err, "failed to issue csrf token")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to issue security token",
		})
		return
	}

	maxAge := int(ctrl.csrfService.TTL().Seconds())
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieSessionID, sessionID, maxAge, "/", "", ctrl.secureCookies, true)
	c.SetCookie(CookieCSRFToken, tok, maxAge, "/", "", ctrl.secureCookies, true)

	c.JSON(http.StatusOK, gin.H{"success": true})
}
