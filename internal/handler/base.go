package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Freddy0703/Projet-d-etude-JUNIA/pkg/errors"
)

// IDParam parses a numeric path parameter.
func IDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidation("invalid "+name, err)
	}
	return id, nil
}
