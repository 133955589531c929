package handler

import (
	"net/http"
	"strconv"

	"lightbnb/internal/model"
	"lightbnb/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// UserHandler handles user and reservation HTTP requests
type UserHandler struct {
	rentalService *service.RentalService
	bcryptCost    int
}

// NewUserHandler creates a new user handler
func NewUserHandler(rentalService *service.RentalService) *UserHandler {
	return &UserHandler{
		rentalService: rentalService,
		bcryptCost:    bcrypt.DefaultCost,
	}
}

// Get handles GET /api/v1/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.rentalService.GetUserWithID(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to get user", err)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Lookup handles GET /api/v1/users?email=
func (h *UserHandler) Lookup(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}

	user, err := h.rentalService.GetUserWithEmail(c.Request.Context(), email)
	if err != nil {
		respondError(c, "Failed to get user", err)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Create handles POST /api/v1/users
func (h *UserHandler) Create(c *gin.Context) {
	var req model.NewUser
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.bcryptCost)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid password: " + err.Error()})
		return
	}
	req.Password = string(hash)

	user, err := h.rentalService.AddUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Failed to add user", err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Reservations handles GET /api/v1/users/:id/reservations
func (h *UserHandler) Reservations(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	reservations, err := h.rentalService.GetAllReservations(c.Request.Context(), id, limit)
	if err != nil {
		respondError(c, "Failed to get reservations", err)
		return
	}

	c.JSON(http.StatusOK, model.ReservationListResponse{
		Reservations: reservations,
		Count:        len(reservations),
	})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return 0, false
	}
	return id, true
}
