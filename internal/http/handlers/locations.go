package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luggagebill/internal/domain/models"
)

// =======================
// states
// =======================

// GET /api/admin/states
func ListStates(c *gin.Context) {
	f, ok := listFilter(c, "", "")
	if !ok {
		return
	}
	out, err := locationService(c).ListStates(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/admin/states/:id includes the state's park locations.
func GetState(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := locationService(c).GetState(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/admin/states
func CreateState(c *gin.Context) {
	var in models.State
	if !BindJSONOrError(c, &in) {
		return
	}
	out, err := locationService(c).CreateState(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// PUT /api/admin/states/:id
func UpdateState(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in models.State
	if !BindJSONOrError(c, &in) {
		return
	}
	out, err := locationService(c).UpdateState(c.Request.Context(), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// DELETE /api/admin/states/:id
func DeleteState(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := locationService(c).DeleteState(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// =======================
// park locations
// =======================

// GET /api/admin/park-locations?q=&state_id=
func ListParkLocations(c *gin.Context) {
	f, ok := listFilter(c, "", "")
	if !ok {
		return
	}
	out, err := locationService(c).ListParkLocations(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/admin/park-locations/:id includes trips departing from it.
func GetParkLocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := locationService(c).GetParkLocation(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/admin/park-locations
func CreateParkLocation(c *gin.Context) {
	var in models.ParkLocation
	if !BindJSONOrError(c, &in) {
		return
	}
	out, err := locationService(c).CreateParkLocation(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// PUT /api/admin/park-locations/:id
func UpdateParkLocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in models.ParkLocation
	if !BindJSONOrError(c, &in) {
		return
	}
	out, err := locationService(c).UpdateParkLocation(c.Request.Context(), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// DELETE /api/admin/park-locations/:id
func DeleteParkLocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := locationService(c).DeleteParkLocation(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
