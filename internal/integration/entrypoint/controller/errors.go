// Package controller implements HTTP request handlers for the API
// endpoints.
package controller

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainerror "github.com/property-manager/backend/internal/domain/error"
	"github.com/property-manager/backend/internal/integration/entrypoint/dto"
)

// respondError maps a use case error to an HTTP response. Unknown errors
// become a plain 500 without leaking detail.
func respondError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		status := http.StatusBadRequest
		if reportErr.Code == domainerror.ErrCodeReportAccess {
			status = http.StatusForbidden
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	switch {
	case errors.Is(err, domainerror.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Invalid username or password",
			Code:  string(domainerror.ErrCodeInvalidCredentials),
		})
	case errors.Is(err, domainerror.ErrUserNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "User not found",
			Code:  string(domainerror.ErrCodeUserNotFound),
		})
	case errors.Is(err, domainerror.ErrPropertyAccessDenied),
		errors.Is(err, domainerror.ErrInsufficientRole):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainerror.ErrPropertyNotFound),
		errors.Is(err, domainerror.ErrReadingNotFound),
		errors.Is(err, domainerror.ErrTariffNotFound),
		errors.Is(err, domainerror.ErrExpenseNotFound),
		errors.Is(err, domainerror.ErrRecurringCostNotFound),
		errors.Is(err, domainerror.ErrContactNotFound),
		errors.Is(err, domainerror.ErrAttachmentNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainerror.ErrUsernameTaken):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainerror.ErrInvalidRole),
		errors.Is(err, domainerror.ErrInvalidMeterType),
		errors.Is(err, domainerror.ErrInvalidTariffType),
		errors.Is(err, domainerror.ErrUnsupportedFileType),
		errors.Is(err, domainerror.ErrInvalidBackup):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainerror.ErrScanUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Document scan service is not available",
		})
	case errors.Is(err, domainerror.ErrScanParse):
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error: "Document could not be read",
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Internal server error",
		})
	}
}

// respondBadRequest answers a malformed request.
func respondBadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: message})
}

// respondUnauthenticated answers a request whose auth context is missing.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Authentication required",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dto.DateLayout, value)
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.DateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseOptionalDateQuery reads an optional date query parameter.
func parseOptionalDateQuery(ctx *gin.Context, name string) (*time.Time, error) {
	value := ctx.Query(name)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseDecimal(value string) (decimal.Decimal, error) {
	return decimal.NewFromString(value)
}

// parseOptionalDecimal returns nil for an absent value so the use case can
// apply its default.
func parseOptionalDecimal(value *string) (*decimal.Decimal, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(*value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// readFormFile loads an uploaded multipart file into memory.
func readFormFile(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}
