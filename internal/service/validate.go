package service

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"

	"github.com/supporthub/api/pkg/util"
)

var validate = validator.New()

// requireFields runs the struct's `validate` tags before any store access and
// collapses failures into the endpoint's single required-fields message.
func requireFields(input any, message string) error {
	if err := validate.Struct(input); err != nil {
		return util.NewValidationError(message)
	}
	return nil
}

// scopeError converts a not-found lookup into the caller's 400 message.
// Scope checks report missing and foreign-tenant references identically so a
// caller cannot probe other tenants' ID space.
func scopeError(err error, message string) error {
	var apiErr *util.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return util.NewValidationError(message)
	}
	return err
}

// validURL reports whether raw parses as an absolute URL.
func validURL(raw string) bool {
	parsed, err := url.Parse(raw)
	return err == nil && parsed.Scheme != "" && parsed.Host != ""
}
