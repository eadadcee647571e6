package services

import (
	"context"
	"strconv"

	"luggagebill/internal/domain"
	"luggagebill/internal/utils"
)

func idStr(id int64) string {
	return strconv.FormatInt(id, 10)
}

// requireID rejects non-positive path ids before touching storage.
func requireID(resource string, id int64) error {
	if id <= 0 {
		return domain.NotFoundError{Resource: resource}
	}
	return nil
}

func requireActor(actor domain.Actor) error {
	if !actor.Authenticated() {
		return domain.UnauthorizedError{Msg: "authentication required"}
	}
	return nil
}

// logWrite logs a successful mutation.
func logWrite(requestID, module, action string, id int64) {
	utils.LogEvent(requestID, module, action, module+" "+action+" id="+idStr(id))
}

// refExists turns a missing referenced row into a validation error on field.
func refExists(ctx context.Context, field string, id int64, get func(context.Context, int64) error) error {
	if id <= 0 {
		return domain.ValidationError{Field: field, Msg: "required"}
	}
	if err := get(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			return domain.ValidationError{Field: field, Msg: "does not exist", Err: err}
		}
		return err
	}
	return nil
}
