package error

import "errors"

// Record lookup and validation errors shared by the CRUD use cases.
var (
	ErrPropertyNotFound      = errors.New("property not found")
	ErrReadingNotFound       = errors.New("meter reading not found")
	ErrTariffNotFound        = errors.New("tariff not found")
	ErrExpenseNotFound       = errors.New("expense not found")
	ErrRecurringCostNotFound = errors.New("recurring cost not found")
	ErrContactNotFound       = errors.New("contact not found")
	ErrAttachmentNotFound    = errors.New("attachment not found")

	// ErrInvalidMeterType is returned for a meter type outside
	// water/electricity_day/electricity_night.
	ErrInvalidMeterType = errors.New("invalid meter type")

	// ErrInvalidTariffType is returned for a tariff type outside
	// water/wastewater/electricity_day/electricity_night.
	ErrInvalidTariffType = errors.New("invalid tariff type")

	// ErrUnsupportedFileType is returned when an upload has a file extension
	// the system does not store.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrUsernameTaken is returned when creating a user with an existing username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidRole is returned for an unknown role value.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidBackup is returned when a restore payload is not a readable
	// backup document.
	ErrInvalidBackup = errors.New("invalid backup file")
)
