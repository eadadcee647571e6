package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luggagebill/internal/domain/models"
)

type homeWeight struct {
	Name      string       `json:"name"`
	MinWeight int          `json:"min_weight"`
	Price     models.Money `json:"price"`
}

// GET / lists the weight tiers for the public home page.
func Home(c *gin.Context) {
	weights, err := pricingService(c).AllWeights(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	out := make([]homeWeight, 0, len(weights))
	for _, w := range weights {
		out = append(out, homeWeight{Name: w.Name, MinWeight: w.MinWeight, Price: w.Price})
	}
	c.JSON(http.StatusOK, gin.H{"weights": out})
}

// GET /admin/luggages/luggagebill/:id
func BillDetail(c *gin.Context) {
	GetBill(c)
}

// GET /admin/luggages/customer/:id
func CustomerDetail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := customerService(c).Detail(c.Request.Context(), actorOf(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /admin/luggages/trip/:id
func TripDetail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := tripService(c).Detail(c.Request.Context(), actorOf(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
