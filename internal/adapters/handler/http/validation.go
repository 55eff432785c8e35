package http

import (
	"fmt"
	"net/http"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const timezoneHeader = "X-Timezone"

// RegisterValidators adds the custom binding rules to gin's validator.
// It is safe to call more than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("http: unexpected validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("isodate", isoDate); err != nil {
		return fmt.Errorf("http: register isodate: %w", err)
	}
	return nil
}

// isoDate accepts a YYYY-MM-DD calendar date. Empty strings pass so the rule
// combines with omitempty or required.
func isoDate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	d, err := civil.ParseDate(s)
	return err == nil && d.IsValid()
}

// callerLocation resolves the caller's calendar from ?tz= or X-Timezone.
// Anything missing means UTC; an unknown zone is a 400.
func callerLocation(c *gin.Context) (*time.Location, bool) {
	name := c.Query("tz")
	if name == "" {
		name = c.GetHeader(timezoneHeader)
	}
	if name == "" {
		return time.UTC, true
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("unknown time zone %q", name)})
		return nil, false
	}
	return loc, true
}

func bindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}
