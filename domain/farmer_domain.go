package domain

import "barnmonitor-backend/entities"

var (
	MessageSuccessGetFarmers   = "farmers retrieved successfully"
	MessageSuccessGetFarmer    = "farmer retrieved successfully"
	MessageSuccessDeleteFarmer = "Farmer deleted successfully"

	MessageFailedGetFarmers   = "failed to retrieve farmers"
	MessageFailedGetFarmer    = "failed to retrieve farmer"
	MessageFailedDeleteFarmer = "failed to delete farmer"

	ErrFarmerNotFound = &AppError{Kind: KindNotFound, Message: "Farmer not found"}
)

type (
	// FarmerResponse is the public view of a farmer. The password hash is
	// never part of it.
	FarmerResponse struct {
		ID      uint    `json:"id"`
		Name    string  `json:"name"`
		Email   string  `json:"email"`
		Phone   string  `json:"phone"`
		Address *string `json:"address"`
	}

	FarmerDetailResponse struct {
		FarmerResponse
		Animals []AnimalResponse `json:"animals"`
	}
)

func NewFarmerResponse(f *entities.Farmer) FarmerResponse {
	return FarmerResponse{
		ID:      f.ID,
		Name:    f.Name,
		Email:   f.Email,
		Phone:   f.Phone,
		Address: f.Address,
	}
}

func NewFarmerDetailResponse(f *entities.Farmer) FarmerDetailResponse {
	animals := make([]AnimalResponse, 0, len(f.Animals))
	for _, a := range f.Animals {
		animals = append(animals, NewAnimalResponse(a))
	}
	return FarmerDetailResponse{
		FarmerResponse: NewFarmerResponse(f),
		Animals:        animals,
	}
}
