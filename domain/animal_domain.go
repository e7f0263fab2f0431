package domain

import "barnmonitor-backend/entities"

var (
	MessageSuccessAddAnimal    = "animal added successfully"
	MessageSuccessUpdateAnimal = "animal updated successfully"
	MessageSuccessDeleteAnimal = "animal deleted successfully"
	MessageSuccessGetAnimals   = "animals retrieved successfully"
	MessageSuccessUploadImage  = "animal image uploaded successfully"

	MessageFailedAddAnimal    = "failed to add animal"
	MessageFailedUpdateAnimal = "failed to update animal"
	MessageFailedDeleteAnimal = "failed to delete animal"
	MessageFailedGetAnimals   = "failed to retrieve animals"
	MessageFailedUploadImage  = "failed to upload animal image"

	ErrAnimalNotFound       = &AppError{Kind: KindNotFound, Message: "Animal not found"}
	ErrAnimalNameTaken      = &AppError{Kind: KindDomainValidation, Message: "name already exists"}
	ErrUnknownAnimal        = &AppError{Kind: KindDomainValidation, Message: "animal_id does not reference an existing animal"}
	ErrUnknownAnimalName    = &AppError{Kind: KindDomainValidation, Message: "name does not reference an existing animal"}
	ErrUnknownFarmer        = &AppError{Kind: KindDomainValidation, Message: "farmer_id does not reference an existing farmer"}
	ErrStorageNotConfigured = &AppError{Kind: KindUnavailable, Message: "image storage is not configured"}
	ErrInvalidImageFormat   = &AppError{Kind: KindInvalidFormat, Message: "invalid image format"}
)

type (
	CreateAnimalRequest struct {
		Name         *string `json:"name" validate:"required"`
		Breed        *string `json:"breed"`
		Age          *int    `json:"age"`
		HealthStatus *string `json:"health_status"`
		BirthDate    *string `json:"birth_date" validate:"required"`
		Image        *string `json:"image"`
		FarmerID     *uint   `json:"farmer_id"`
		AnimalTypeID *uint   `json:"animal_type_id"`
	}

	AnimalResponse struct {
		ID           uint    `json:"id"`
		Name         string  `json:"name"`
		Image        *string `json:"image"`
		Breed        *string `json:"breed"`
		Age          *int    `json:"age"`
		HealthStatus *string `json:"health_status"`
		BirthDate    string  `json:"birth_date"`
		FarmerID     *uint   `json:"farmer_id"`
		AnimalTypeID *uint   `json:"animal_type_id"`
	}

	// AnimalDetailResponse embeds the animal's relations one level deep.
	// None of the nested values carry a link back to the animal.
	AnimalDetailResponse struct {
		AnimalResponse
		Farmer        *FarmerResponse        `json:"farmer"`
		AnimalType    *AnimalTypeResponse    `json:"animal_type"`
		HealthRecords []HealthRecordResponse `json:"health_records"`
		Production    []ProductionResponse   `json:"production"`
		FeedRecords   []FeedResponse         `json:"feed_records"`
		Sales         []SaleResponse         `json:"sales"`
	}
)

func NewAnimalResponse(a *entities.Animal) AnimalResponse {
	return AnimalResponse{
		ID:           a.ID,
		Name:         a.Name,
		Image:        a.Image,
		Breed:        a.Breed,
		Age:          a.Age,
		HealthStatus: a.HealthStatus,
		BirthDate:    a.BirthDate,
		FarmerID:     a.FarmerID,
		AnimalTypeID: a.AnimalTypeID,
	}
}

func NewAnimalDetailResponse(a *entities.Animal) AnimalDetailResponse {
	res := AnimalDetailResponse{
		AnimalResponse: NewAnimalResponse(a),
		HealthRecords:  make([]HealthRecordResponse, 0, len(a.HealthRecords)),
		Production:     make([]ProductionResponse, 0, len(a.Production)),
		FeedRecords:    make([]FeedResponse, 0, len(a.FeedRecords)),
		Sales:          make([]SaleResponse, 0, len(a.Sales)),
	}
	if a.Farmer != nil {
		farmer := NewFarmerResponse(a.Farmer)
		res.Farmer = &farmer
	}
	if a.AnimalType != nil {
		animalType := NewAnimalTypeResponse(a.AnimalType)
		res.AnimalType = &animalType
	}
	for _, h := range a.HealthRecords {
		res.HealthRecords = append(res.HealthRecords, NewHealthRecordResponse(h))
	}
	for _, p := range a.Production {
		res.Production = append(res.Production, NewProductionResponse(p))
	}
	for _, f := range a.FeedRecords {
		res.FeedRecords = append(res.FeedRecords, NewFeedResponse(f))
	}
	for _, s := range a.Sales {
		res.Sales = append(res.Sales, NewSaleResponse(s))
	}
	return res
}

func ApplyAnimalPatch(a *entities.Animal, p Patch) *ValidationError {
	return first(
		p.String("name", &a.Name),
		p.OptionalString("breed", &a.Breed),
		p.OptionalInt("age", &a.Age),
		p.OptionalString("health_status", &a.HealthStatus),
		p.String("birth_date", &a.BirthDate),
		p.OptionalString("image", &a.Image),
		p.OptionalUint("farmer_id", &a.FarmerID),
		p.OptionalUint("animal_type_id", &a.AnimalTypeID),
	)
}
