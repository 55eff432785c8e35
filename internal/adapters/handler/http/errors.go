package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-ledger/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error" example:"validation failed on date: is required"`
}

func handleError(c *gin.Context, err error) {
	var vErr *domain.ValidationError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, errorResponse{Error: vErr.Error()})

	case errors.Is(err, domain.ErrUnknownSkill):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "unknown skill or exercise type"})

	case errors.Is(err, domain.ErrInvalidIdentity):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "identity is required"})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, errorResponse{Error: "forbidden"})

	case errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrLedgerNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})

	case errors.Is(err, domain.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, errorResponse{Error: "email already exists"})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid email or password"})

	case errors.Is(err, domain.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid email format"})

	case errors.Is(err, domain.ErrPasswordTooShort):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "password too short"})

	case errors.Is(err, domain.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "role must be student or teacher"})

	case errors.Is(err, domain.ErrCorruptLedger):
		log.Printf("[ERROR] Request %s %s hit a corrupt ledger: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "stored ledger could not be read"})

	default:
		log.Printf("[ERROR] Request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)

		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
