package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dfryer1193/masterblog/api"
	"github.com/dfryer1193/masterblog/blog/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError translates domain errors into the wire responses clients see.
// Storage failures are logged with their cause but reported generically.
func respondError(c *gin.Context, err error) {
	var missing *domain.MissingFieldError
	var storageErr *domain.StorageError

	switch {
	case errors.As(err, &missing):
		c.JSON(http.StatusBadRequest, api.Error{Error: fmt.Sprintf("Valid %s is required", missing.Field)})
	case errors.Is(err, domain.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, api.Error{Error: "Date must be YYYY-MM-DD"})
	case errors.Is(err, domain.ErrInvalidSortField):
		c.JSON(http.StatusBadRequest, api.Error{Error: "Invalid sort request."})
	case errors.Is(err, domain.ErrInvalidDirection):
		c.JSON(http.StatusBadRequest, api.Error{Error: "Invalid direction."})
	case errors.Is(err, domain.ErrPostNotFound):
		c.JSON(http.StatusNotFound, api.Error{Error: "Post Not Found"})
	case errors.As(err, &storageErr):
		log.Error().Err(storageErr.Err).Str("op", storageErr.Op).Msg("storage failure")
		c.JSON(http.StatusInternalServerError, api.Error{Error: fmt.Sprintf("Failed to %s post data.", storageErr.Op)})
	default:
		log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, api.Error{Error: "Internal server error"})
	}
}

// respondBindError reports a request body that could not be decoded at all.
// A field of the wrong JSON type is called out by name, everything else is a
// missing body.
func respondBindError(c *gin.Context, err error) {
	if respondTypeError(c, err) {
		return
	}
	c.JSON(http.StatusBadRequest, api.Error{Error: "JSON body required"})
}

// respondTypeError handles the wrong-type case shared by create and update,
// e.g. a numeric title. It reports whether it wrote a response.
func respondTypeError(c *gin.Context, err error) bool {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		c.JSON(http.StatusBadRequest, api.Error{Error: fmt.Sprintf("Valid %s is required", typeErr.Field)})
		return true
	}
	return false
}
