package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luggagebill/internal/domain/models"
)

// GET /api/admin/trips?q=&date_from=&date_to=
func ListTrips(c *gin.Context) {
	f, ok := listFilter(c, "date_from", "date_to")
	if !ok {
		return
	}
	out, err := tripService(c).List(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/admin/trips/:id
func GetTrip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := tripService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/admin/trips. The name is always derived, never taken from the body.
func CreateTrip(c *gin.Context) {
	var in models.Trip
	if !BindJSONOrError(c, &in) {
		return
	}
	out, err := tripService(c).Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// PUT /api/admin/trips/:id
func UpdateTrip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in models.Trip
	if !BindJSONOrError(c, &in) {
		return
	}
	out, err := tripService(c).Update(c.Request.Context(), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// DELETE /api/admin/trips/:id
func DeleteTrip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := tripService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
