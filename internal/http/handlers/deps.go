package handlers

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"luggagebill/internal/domain"
	"luggagebill/internal/http/middleware"
	"luggagebill/internal/repositories"
	"luggagebill/internal/services"
)

var (
	authMu    sync.RWMutex
	jwtSecret []byte
	jwtTTL    = 24 * time.Hour
)

// ConfigureAuth sets the token secret and lifetime used by login and Authenticate.
func ConfigureAuth(secret string, ttl time.Duration) {
	authMu.Lock()
	defer authMu.Unlock()
	jwtSecret = []byte(secret)
	if ttl > 0 {
		jwtTTL = ttl
	}
}

// Services are built per request on the shared DB handle, carrying the request id.

func authService(c *gin.Context) services.AuthService {
	authMu.RLock()
	defer authMu.RUnlock()
	return services.AuthService{
		Users:     repositories.UserRepository{},
		Secret:    jwtSecret,
		TTL:       jwtTTL,
		RequestID: middleware.GetRequestID(c),
	}
}

// TokenAuthenticator is the middleware.Authenticator backed by AuthService.
type TokenAuthenticator struct{}

func (TokenAuthenticator) Authenticate(ctx context.Context, token string) (domain.Actor, error) {
	return authService(nil).Authenticate(ctx, token)
}

func customerService(c *gin.Context) services.CustomerService {
	return services.CustomerService{
		Customers: repositories.CustomerRepository{},
		Bills:     repositories.LuggageBillRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

func busService(c *gin.Context) services.BusService {
	return services.BusService{
		Buses:     repositories.BusRepository{},
		Trips:     repositories.TripRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

func locationService(c *gin.Context) services.LocationService {
	return services.LocationService{
		States:        repositories.StateRepository{},
		ParkLocations: repositories.ParkLocationRepository{},
		Trips:         repositories.TripRepository{},
		RequestID:     middleware.GetRequestID(c),
	}
}

func pricingService(c *gin.Context) services.PricingService {
	return services.PricingService{
		Weights:   repositories.WeightRepository{},
		BagTypes:  repositories.BagTypeRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

func tripService(c *gin.Context) services.TripService {
	return services.TripService{
		Trips:         repositories.TripRepository{},
		Buses:         repositories.BusRepository{},
		ParkLocations: repositories.ParkLocationRepository{},
		Bills:         repositories.LuggageBillRepository{},
		RequestID:     middleware.GetRequestID(c),
	}
}

func billService(c *gin.Context) services.BillService {
	return services.BillService{
		Bills:     repositories.LuggageBillRepository{},
		Customers: repositories.CustomerRepository{},
		Trips:     repositories.TripRepository{},
		Weights:   repositories.WeightRepository{},
		BagTypes:  repositories.BagTypeRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

func exportService(c *gin.Context) services.ExportService {
	return services.ExportService{
		Bills:     repositories.LuggageBillRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

func receiptService(c *gin.Context) services.ReceiptService {
	return services.ReceiptService{
		Bills:     billService(c),
		RequestID: middleware.GetRequestID(c),
	}
}

func userService(c *gin.Context) services.UserService {
	return services.UserService{
		Users:     repositories.UserRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}
