package overview

import (
	"net/http"

	"travelapp/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Overview)
}

// Overview returns a static map of the available route paths.
func (h *Handler) Overview(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"Register":        "/api/v1/auth/register",
		"Login":           "/api/v1/auth/login",
		"List Listings":   "/api/v1/listings",
		"Listing Detail":  "/api/v1/listings/:id",
		"Create Listing":  "/api/v1/listings",
		"Update Listing":  "/api/v1/listings/:id",
		"Delete Listing":  "/api/v1/listings/:id",
		"My Bookings":     "/api/v1/bookings",
		"Create Booking":  "/api/v1/bookings",
		"Booking Status":  "/api/v1/bookings/:id/status",
		"Listing Reviews": "/api/v1/listings/:id/reviews",
		"Create Review":   "/api/v1/reviews",
	})
}
