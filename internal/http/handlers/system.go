package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	intconfig "luggagebill/internal/config"
	"luggagebill/internal/db"
	"luggagebill/internal/http/middleware"
	"luggagebill/internal/utils"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for later inspection (e.g., /api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

// GET /api/health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "luggage billing backend running"})
}

// GET /api/db-check
func DBCheck(c *gin.Context) {
	if intconfig.DB == nil {
		respondError(c, http.StatusInternalServerError, "db_unavailable", "database not connected", "")
		return
	}
	var count int
	err := intconfig.DB.QueryRowContext(c.Request.Context(), "SELECT COUNT(*) FROM users").Scan(&count)
	if err != nil {
		utils.LogError(middleware.GetRequestID(c), "system", "db_check", err)
		respondError(c, http.StatusInternalServerError, "db_query_failed", "database query failed", "")
		return
	}

	missing := []string{}
	for _, table := range db.Tables() {
		if !db.HasTable(c.Request.Context(), intconfig.DB, table) {
			missing = append(missing, table)
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "users_in_db": count, "missing_tables": missing})
}

// GET /api/routes
func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		respondError(c, http.StatusServiceUnavailable, "router_not_ready", "router not ready", "")
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
