package controller

import (
	complaintService "support-desk/internal/service/complaint"
	csrfService "support-desk/internal/service/csrf"

	"github.com/gin-gonic/gin"
)

// cookie names shared with the frontend
const (
	CookieSessionID = "sessionId"
	CookieCSRFToken = "csrfToken"
)

// ControllerProvider defines the controller interface
type ControllerProvider interface {
	GetCSRFToken(c *gin.Context)
	SendComplaint(c *gin.Context)
}

// controller implements the controller interface
type controller struct {
	csrfService      *csrfService.Service
	complaintService *complaintService.Service
	csrfEnabled      bool
	secureCookies    bool
}

// NewController creates a new controller instance
func NewController(csrfSvc *csrfService.Service, complaintSvc *complaintService.Service, csrfEnabled, secureCookies bool) ControllerProvider {
	return &controller{
		csrfService:      csrfSvc,
		complaintService: complaintSvc,
		csrfEnabled:      csrfEnabled,
		secureCookies:    secureCookies,
	}
}
