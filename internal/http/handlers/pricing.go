package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luggagebill/internal/domain/models"
)

// GET /api/admin/weights
func ListWeights(c *gin.Context) {
	f, ok := listFilter(c, "", "")
	if !ok {
		return
	}
	out, err := pricingService(c).ListWeights(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/admin/weights/:id
func GetWeight(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := pricingService(c).GetWeight(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/admin/weights
func CreateWeight(c *gin.Context) {
	var in models.Weight
	if !BindJSONOrError(c, &in) {
		return
	}
	out, err := pricingService(c).CreateWeight(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// PUT /api/admin/weights/:id
func UpdateWeight(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in models.Weight
	if !BindJSONOrError(c, &in) {
		return
	}
	out, err := pricingService(c).UpdateWeight(c.Request.Context(), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// DELETE /api/admin/weights/:id
func DeleteWeight(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := pricingService(c).DeleteWeight(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/admin/bag-types?q=
func ListBagTypes(c *gin.Context) {
	f, ok := listFilter(c, "", "")
	if !ok {
		return
	}
	out, err := pricingService(c).ListBagTypes(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/admin/bag-types/:id
func GetBagType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := pricingService(c).GetBagType(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/admin/bag-types
func CreateBagType(c *gin.Context) {
	var in models.BagType
	if !BindJSONOrError(c, &in) {
		return
	}
	out, err := pricingService(c).CreateBagType(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// PUT /api/admin/bag-types/:id
func UpdateBagType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in models.BagType
	if !BindJSONOrError(c, &in) {
		return
	}
	out, err := pricingService(c).UpdateBagType(c.Request.Context(), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// DELETE /api/admin/bag-types/:id
func DeleteBagType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := pricingService(c).DeleteBagType(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
