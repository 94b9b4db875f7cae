package dto

import (
	"github.com/property-manager/backend/internal/application/usecase/backup"
)

// BackupInfoResponse reports what a backup taken now would contain.
type BackupInfoResponse struct {
	Properties     int `json:"properties"`
	MeterReadings  int `json:"meter_readings"`
	Tariffs        int `json:"tariffs"`
	Expenses       int `json:"expenses"`
	RecurringCosts int `json:"recurring_costs"`
	Attachments    int `json:"attachments"`
	Users          int `json:"users"`
}

// RestoreImportedCounts lists how many records a restore created.
type RestoreImportedCounts struct {
	Properties     int `json:"properties"`
	Users          int `json:"users"`
	MeterReadings  int `json:"meter_readings"`
	Expenses       int `json:"expenses"`
	RecurringCosts int `json:"recurring_costs"`
}

// RestoreResponse represents the result of a backup restore.
type RestoreResponse struct {
	Message  string                `json:"message"`
	Imported RestoreImportedCounts `json:"imported"`
}

// ToBackupInfoResponse converts a backup info output to a response DTO.
func ToBackupInfoResponse(out *backup.InfoOutput) *BackupInfoResponse {
	return &BackupInfoResponse{
		Properties:     out.Properties,
		MeterReadings:  out.MeterReadings,
		Tariffs:        out.Tariffs,
		Expenses:       out.Expenses,
		RecurringCosts: out.RecurringCosts,
		Attachments:    out.Attachments,
		Users:          out.Users,
	}
}

// ToRestoreResponse converts a restore output to a response DTO.
func ToRestoreResponse(out *backup.RestoreBackupOutput) *RestoreResponse {
	return &RestoreResponse{
		Message: "Backup restored",
		Imported: RestoreImportedCounts{
			Properties:     out.Properties,
			Users:          out.Users,
			MeterReadings:  out.MeterReadings,
			Expenses:       out.Expenses,
			RecurringCosts: out.RecurringCosts,
		},
	}
}
