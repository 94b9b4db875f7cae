package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/usecase/meter"
	"github.com/property-manager/backend/internal/integration/entrypoint/dto"
	"github.com/property-manager/backend/internal/integration/entrypoint/middleware"
)

// MeterController handles meter reading requests.
type MeterController struct {
	createUseCase *meter.CreateReadingUseCase
	updateUseCase *meter.UpdateReadingUseCase
	listUseCase   *meter.ListReadingsUseCase
	deleteUseCase *meter.DeleteReadingUseCase
	scanUseCase   *meter.ScanMeterUseCase
}

// NewMeterController creates a new meter controller instance.
func NewMeterController(
	createUseCase *meter.CreateReadingUseCase,
	updateUseCase *meter.UpdateReadingUseCase,
	listUseCase *meter.ListReadingsUseCase,
	deleteUseCase *meter.DeleteReadingUseCase,
	scanUseCase *meter.ScanMeterUseCase,
) *MeterController {
	return &MeterController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
		scanUseCase:   scanUseCase,
	}
}

// Create handles POST /properties/:id/readings. Plain readings arrive as
// JSON; readings with a meter photo arrive as a multipart form with the
// photo under "photo".
func (c *MeterController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	propertyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid property ID")
		return
	}

	input := meter.CreateReadingInput{
		UserID:     userID,
		PropertyID: propertyID,
		IPAddress:  ctx.ClientIP(),
	}

	if strings.HasPrefix(ctx.ContentType(), "multipart/form-data") {
		input.MeterType = ctx.PostForm("meter_type")
		input.Notes = ctx.PostForm("notes")

		value, err := parseDecimal(ctx.PostForm("reading_value"))
		if err != nil {
			respondBadRequest(ctx, "Invalid reading value")
			return
		}
		input.ReadingValue = value

		date, err := parseDate(ctx.PostForm("reading_date"))
		if err != nil {
			respondBadRequest(ctx, "Invalid reading date, expected YYYY-MM-DD")
			return
		}
		input.ReadingDate = date

		if header, err := ctx.FormFile("photo"); err == nil {
			data, err := readFormFile(header)
			if err != nil {
				respondBadRequest(ctx, "Could not read uploaded photo")
				return
			}
			input.PhotoName = header.Filename
			input.PhotoData = data
		}
	} else {
		var req dto.CreateReadingRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			respondBadRequest(ctx, "Meter type, reading value and reading date are required")
			return
		}

		value, err := parseDecimal(req.ReadingValue)
		if err != nil {
			respondBadRequest(ctx, "Invalid reading value")
			return
		}
		date, err := parseDate(req.ReadingDate)
		if err != nil {
			respondBadRequest(ctx, "Invalid reading date, expected YYYY-MM-DD")
			return
		}

		input.MeterType = req.MeterType
		input.ReadingValue = value
		input.ReadingDate = date
		input.Notes = req.Notes
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToReadingResponse(output.Reading))
}

// Update handles PUT /readings/:id.
func (c *MeterController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	readingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid reading ID")
		return
	}

	var req dto.UpdateReadingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Meter type, reading value and reading date are required")
		return
	}

	value, err := parseDecimal(req.ReadingValue)
	if err != nil {
		respondBadRequest(ctx, "Invalid reading value")
		return
	}
	date, err := parseDate(req.ReadingDate)
	if err != nil {
		respondBadRequest(ctx, "Invalid reading date, expected YYYY-MM-DD")
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), meter.UpdateReadingInput{
		UserID:       userID,
		ReadingID:    readingID,
		MeterType:    req.MeterType,
		ReadingValue: value,
		ReadingDate:  date,
		Notes:        req.Notes,
		IPAddress:    ctx.ClientIP(),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReadingResponse(output.Reading))
}

// List handles GET /properties/:id/readings with optional meter_type,
// start_date and end_date query parameters.
func (c *MeterController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	propertyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid property ID")
		return
	}

	startDate, err := parseOptionalDateQuery(ctx, "start_date")
	if err != nil {
		respondBadRequest(ctx, "Invalid start date, expected YYYY-MM-DD")
		return
	}
	endDate, err := parseOptionalDateQuery(ctx, "end_date")
	if err != nil {
		respondBadRequest(ctx, "Invalid end date, expected YYYY-MM-DD")
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), meter.ListReadingsInput{
		UserID:     userID,
		PropertyID: propertyID,
		MeterType:  ctx.Query("meter_type"),
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReadingListResponse(output.Readings))
}

// Delete handles DELETE /readings/:id.
func (c *MeterController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	readingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid reading ID")
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), meter.DeleteReadingInput{
		UserID:    userID,
		ReadingID: readingID,
		IPAddress: ctx.ClientIP(),
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Scan handles POST /properties/:id/readings/scan. The meter photo arrives
// as a multipart form under "file".
func (c *MeterController) Scan(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	propertyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid property ID")
		return
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		respondBadRequest(ctx, "A file upload is required")
		return
	}
	data, err := readFormFile(header)
	if err != nil {
		respondBadRequest(ctx, "Could not read uploaded file")
		return
	}

	output, err := c.scanUseCase.Execute(ctx.Request.Context(), meter.ScanMeterInput{
		UserID:     userID,
		PropertyID: propertyID,
		Data:       data,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToScanMeterResponse(output))
}
