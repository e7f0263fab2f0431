package domain

import "barnmonitor-backend/entities"

var (
	MessageSuccessAddProduction    = "production record added successfully"
	MessageSuccessUpdateProduction = "production record updated successfully"
	MessageSuccessDeleteProduction = "Production record deleted successfully"
	MessageSuccessGetProductions   = "production records retrieved successfully"

	MessageFailedAddProduction    = "failed to add production record"
	MessageFailedUpdateProduction = "failed to update production record"
	MessageFailedDeleteProduction = "failed to delete production record"
	MessageFailedGetProductions   = "failed to retrieve production records"

	ErrProductionNotFound = &AppError{Kind: KindNotFound, Message: "Production record not found"}
	ErrUnknownProduction  = &AppError{Kind: KindDomainValidation, Message: "production_id does not reference an existing production record"}
)

type (
	CreateProductionRequest struct {
		AnimalID       *uint   `json:"animal_id" validate:"required"`
		ProductType    *string `json:"product_type" validate:"required"`
		Quantity       *int    `json:"quantity" validate:"required"`
		ProductionDate *string `json:"production_date" validate:"required"`
	}

	ProductionResponse struct {
		ID             uint   `json:"id"`
		AnimalID       uint   `json:"animal_id"`
		ProductType    string `json:"product_type"`
		Quantity       int    `json:"quantity"`
		ProductionDate string `json:"production_date"`
	}

	ProductionDetailResponse struct {
		ProductionResponse
		Animal *AnimalResponse `json:"animal"`
		Sales  []SaleResponse  `json:"sales"`
	}
)

func NewProductionResponse(p *entities.Production) ProductionResponse {
	return ProductionResponse{
		ID:             p.ID,
		AnimalID:       p.AnimalID,
		ProductType:    p.ProductType,
		Quantity:       p.Quantity,
		ProductionDate: p.ProductionDate,
	}
}

func NewProductionDetailResponse(p *entities.Production) ProductionDetailResponse {
	res := ProductionDetailResponse{
		ProductionResponse: NewProductionResponse(p),
		Sales:              make([]SaleResponse, 0, len(p.Sales)),
	}
	if p.Animal != nil {
		animal := NewAnimalResponse(p.Animal)
		res.Animal = &animal
	}
	for _, s := range p.Sales {
		res.Sales = append(res.Sales, NewSaleResponse(s))
	}
	return res
}

func ApplyProductionPatch(prod *entities.Production, p Patch) *ValidationError {
	return first(
		p.Uint("animal_id", &prod.AnimalID),
		p.String("product_type", &prod.ProductType),
		p.Int("quantity", &prod.Quantity),
		p.String("production_date", &prod.ProductionDate),
	)
}
