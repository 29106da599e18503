package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/pobuilder/backend/internal/domain/shared/valueobject"
	"github.com/pobuilder/backend/internal/interfaces/http/dto"
)

// TagCatalogCurrency validates a string against the currency catalog
const TagCatalogCurrency = "catalog_currency"

// SetupValidator configures the validator with custom tags
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// Use JSON tag names for field names in errors
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})
		_ = v.RegisterValidation(TagCatalogCurrency, validateCatalogCurrency)
	}
}

func validateCatalogCurrency(fl validator.FieldLevel) bool {
	_, err := valueobject.ParseCurrencyCode(fl.Field().String())
	return err == nil
}

// FormatValidationErrors formats validation errors into a standard response
func FormatValidationErrors(err error, requestID string) dto.Response {
	var details []dto.ValidationDetail

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			details = append(details, dto.ValidationDetail{
				Field:   e.Field(),
				Message: getValidationMessage(e),
				Tag:     e.Tag(),
				Value:   fmt.Sprint(e.Value()),
			})
		}
	}

	resp := dto.NewValidationErrorResponse(
		"Request validation failed",
		requestID,
		details,
	)
	if onlyCurrencyErrors(validationErrors) {
		resp.Error.Code = dto.ErrCodeInvalidCurrency
		resp.Error.Message = "Unsupported currency"
	}
	return resp
}

func onlyCurrencyErrors(errs validator.ValidationErrors) bool {
	if len(errs) == 0 {
		return false
	}
	for _, e := range errs {
		if e.Tag() != TagCatalogCurrency {
			return false
		}
	}
	return true
}

// HandleValidationError writes the 400 response for a failed ShouldBind call.
// Struct tag failures carry per-field details; undecodable bodies are
// reported as ERR_INVALID_JSON.
func HandleValidationError(c *gin.Context, err error) {
	requestID := GetRequestID(c)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, FormatValidationErrors(err, requestID))
		return
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		c.JSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponseWithRequestID(
			dto.ErrCodeRequestTooLarge,
			fmt.Sprintf("Request body exceeds %d bytes", maxBytesErr.Limit),
			requestID,
		))
		return
	}

	message := "Request body is not valid JSON"
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		message = "Request body is empty"
	case errors.As(err, &syntaxErr):
		message = fmt.Sprintf("Malformed JSON at offset %d", syntaxErr.Offset)
	case errors.As(err, &typeErr):
		message = fmt.Sprintf("Field %q has the wrong type", typeErr.Field)
	}
	c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithRequestID(dto.ErrCodeInvalidJSON, message, requestID))
}

// getValidationMessage returns a human-readable validation message
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "min":
		if e.Type().Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Type().Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "len":
		return "Must be exactly " + e.Param() + " characters"
	case "oneof":
		return "Must be one of: " + e.Param()
	case "gte":
		return "Must be greater than or equal to " + e.Param()
	case "lte":
		return "Must be less than or equal to " + e.Param()
	case "dive":
		return "Invalid list entry"
	case TagCatalogCurrency:
		return "Must be one of: " + catalogCodes()
	default:
		return "Invalid value"
	}
}

func catalogCodes() string {
	currencies := valueobject.Currencies()
	codes := make([]string, 0, len(currencies))
	for _, c := range currencies {
		codes = append(codes, string(c.Code))
	}
	return strings.Join(codes, " ")
}
