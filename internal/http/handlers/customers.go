package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luggagebill/internal/domain/models"
)

// GET /api/admin/customers?q=
func ListCustomers(c *gin.Context) {
	f, ok := listFilter(c, "", "")
	if !ok {
		return
	}
	out, err := customerService(c).List(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/admin/customers/:id
func GetCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := customerService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/admin/customers
func CreateCustomer(c *gin.Context) {
	var in models.Customer
	if !BindJSONOrError(c, &in) {
		return
	}
	out, err := customerService(c).Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// PUT /api/admin/customers/:id
func UpdateCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in models.Customer
	if !BindJSONOrError(c, &in) {
		return
	}
	out, err := customerService(c).Update(c.Request.Context(), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// DELETE /api/admin/customers/:id
func DeleteCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := customerService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
