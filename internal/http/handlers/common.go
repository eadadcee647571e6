package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"luggagebill/internal/domain"
	"luggagebill/internal/http/middleware"
	"luggagebill/internal/repositories"
	"luggagebill/internal/utils"
)

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "empty body", "")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid payload: "+err.Error(), "")
		return false
	}
	return true
}

// pathID parses :id; invalid ids answer 404 like unknown ones.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusNotFound, "not_found", "not found", "")
		return 0, false
	}
	return id, true
}

// actorOf returns the actor set by middleware.Authenticate.
func actorOf(c *gin.Context) domain.Actor {
	actor, _ := middleware.GetActor(c)
	return actor
}

// listFilter reads ?q=&page=&limit= plus the optional filters.
// dateFrom/dateTo name the inclusive date range parameters, if any.
func listFilter(c *gin.Context, dateFrom, dateTo string) (repositories.ListFilter, bool) {
	f := repositories.ListFilter{Query: strings.TrimSpace(c.Query("q"))}
	f.Page.Page, _ = strconv.Atoi(c.Query("page"))
	f.Page.PageSize, _ = strconv.Atoi(c.Query("limit"))
	f.Page = f.Page.Normalize()

	if raw := strings.TrimSpace(c.Query("state_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			respondError(c, http.StatusBadRequest, "validation_error", "state_id must be a positive integer", "state_id")
			return f, false
		}
		f.StateID = id
	}
	if dateFrom != "" {
		t, ok := queryDate(c, dateFrom)
		if !ok {
			return f, false
		}
		f.From = t
	}
	if dateTo != "" {
		t, ok := queryDate(c, dateTo)
		if !ok {
			return f, false
		}
		if t != nil {
			end := t.AddDate(0, 0, 1)
			f.To = &end
		}
	}
	return f, true
}

func queryDate(c *gin.Context, key string) (*time.Time, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, true
	}
	t, err := utils.ParseDate(raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", key+" must be YYYY-MM-DD", key)
		return nil, false
	}
	return &t, true
}

// sendFile writes an attachment download.
func sendFile(c *gin.Context, contentType, filename string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}
