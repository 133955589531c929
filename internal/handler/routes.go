package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the API handlers on an /api/v1 group
func RegisterRoutes(apiV1 *gin.RouterGroup, properties *PropertyHandler, users *UserHandler) {
	// Property endpoints
	apiV1.GET("/properties", properties.Search)
	apiV1.POST("/properties", properties.Create)

	// User endpoints
	apiV1.GET("/users", users.Lookup)
	apiV1.POST("/users", users.Create)
	apiV1.GET("/users/:id", users.Get)
	apiV1.GET("/users/:id/reservations", users.Reservations)
}
