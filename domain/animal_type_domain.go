package domain

import "barnmonitor-backend/entities"

var (
	MessageSuccessAddAnimalType    = "Animal Type added successfully"
	MessageSuccessUpdateAnimalType = "Animal Type updated successfully"
	MessageSuccessDeleteAnimalType = "Animal Type deleted successfully"
	MessageSuccessGetAnimalTypes   = "animal types retrieved successfully"

	MessageFailedAddAnimalType    = "failed to add animal type"
	MessageFailedUpdateAnimalType = "failed to update animal type"
	MessageFailedDeleteAnimalType = "failed to delete animal type"
	MessageFailedGetAnimalTypes   = "failed to retrieve animal types"

	ErrAnimalTypeNotFound  = &AppError{Kind: KindNotFound, Message: "Animal Type does not exist"}
	ErrAnimalTypeNameTaken = &AppError{Kind: KindDomainValidation, Message: "type_name already exists"}
	ErrUnknownAnimalType   = &AppError{Kind: KindDomainValidation, Message: "animal_type_id does not reference an existing animal type"}
)

type (
	CreateAnimalTypeRequest struct {
		TypeName    *string `json:"type_name" validate:"required"`
		Description *string `json:"description"`
	}

	AnimalTypeResponse struct {
		ID          uint    `json:"id"`
		TypeName    string  `json:"type_name"`
		Description *string `json:"description"`
	}
)

func NewAnimalTypeResponse(t *entities.AnimalType) AnimalTypeResponse {
	return AnimalTypeResponse{
		ID:          t.ID,
		TypeName:    t.TypeName,
		Description: t.Description,
	}
}

func ApplyAnimalTypePatch(t *entities.AnimalType, p Patch) *ValidationError {
	return first(
		p.String("type_name", &t.TypeName),
		p.OptionalString("description", &t.Description),
	)
}
