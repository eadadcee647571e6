package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luggagebill/internal/domain/models"
)

// GET /api/admin/buses?q=
func ListBuses(c *gin.Context) {
	f, ok := listFilter(c, "", "")
	if !ok {
		return
	}
	out, err := busService(c).List(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/admin/buses/:id includes the bus's trips.
func GetBus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := busService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/admin/buses
func CreateBus(c *gin.Context) {
	var in models.Bus
	if !BindJSONOrError(c, &in) {
		return
	}
	out, err := busService(c).Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// PUT /api/admin/buses/:id
func UpdateBus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in models.Bus
	if !BindJSONOrError(c, &in) {
		return
	}
	out, err := busService(c).Update(c.Request.Context(), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// DELETE /api/admin/buses/:id
func DeleteBus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := busService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
