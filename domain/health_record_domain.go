package domain

import (
	"time"

	"barnmonitor-backend/entities"
)

var (
	MessageSuccessAddHealthRecord    = "Health record added successfully"
	MessageSuccessUpdateHealthRecord = "Health record updated successfully"
	MessageSuccessDeleteHealthRecord = "Health record deleted successfully"
	MessageSuccessGetHealthRecords   = "health records retrieved successfully"

	MessageFailedAddHealthRecord    = "failed to add health record"
	MessageFailedUpdateHealthRecord = "failed to update health record"
	MessageFailedDeleteHealthRecord = "failed to delete health record"
	MessageFailedGetHealthRecords   = "failed to retrieve health records"

	ErrHealthRecordNotFound = &AppError{Kind: KindNotFound, Message: "Health Record not found"}
)

type (
	// CreateHealthRecordRequest identifies the animal either by id or by its
	// unique name.
	CreateHealthRecordRequest struct {
		AnimalID    *uint   `json:"animal_id" validate:"required_without=Name"`
		Name        *string `json:"name" validate:"required_without=AnimalID"`
		CheckupDate *string `json:"checkup_date" validate:"required"`
		Treatment   *string `json:"treatment" validate:"required"`
		Notes       *string `json:"notes"`
		VetName     *string `json:"vet_name" validate:"required"`
	}

	HealthRecordResponse struct {
		ID          uint    `json:"id"`
		AnimalID    uint    `json:"animal_id"`
		CheckupDate string  `json:"checkup_date"`
		Treatment   string  `json:"treatment"`
		Notes       *string `json:"notes"`
		VetName     string  `json:"vet_name"`
	}
)

func NewHealthRecordResponse(h *entities.HealthRecord) HealthRecordResponse {
	return HealthRecordResponse{
		ID:          h.ID,
		AnimalID:    h.AnimalID,
		CheckupDate: h.CheckupDate.UTC().Format(time.RFC3339),
		Treatment:   h.Treatment,
		Notes:       h.Notes,
		VetName:     h.VetName,
	}
}

// ApplyHealthRecordPatch merges the plain columns. The "name" and
// "checkup_date" keys need a lookup or a format check and are handled by the
// caller.
func ApplyHealthRecordPatch(h *entities.HealthRecord, p Patch) *ValidationError {
	return first(
		p.Uint("animal_id", &h.AnimalID),
		p.String("treatment", &h.Treatment),
		p.OptionalString("notes", &h.Notes),
		p.String("vet_name", &h.VetName),
	)
}
