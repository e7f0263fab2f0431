package domain

import "barnmonitor-backend/entities"

var (
	MessageSuccessAddSale    = "sale record added successfully"
	MessageSuccessUpdateSale = "sale record updated successfully"
	MessageSuccessDeleteSale = "Sale record deleted successfully"
	MessageSuccessGetSales   = "sale records retrieved successfully"

	MessageFailedAddSale    = "failed to add sale record"
	MessageFailedUpdateSale = "failed to update sale record"
	MessageFailedDeleteSale = "failed to delete sale record"
	MessageFailedGetSales   = "failed to retrieve sale records"

	ErrSaleNotFound = &AppError{Kind: KindNotFound, Message: "Sale record not found"}
)

type (
	CreateSaleRequest struct {
		AnimalID     *uint    `json:"animal_id" validate:"required"`
		ProductType  *string  `json:"product_type" validate:"required"`
		QuantitySold *int     `json:"quantity_sold" validate:"required"`
		SaleDate     *string  `json:"sale_date" validate:"required"`
		Amount       *float64 `json:"amount" validate:"required"`
		ProductionID *uint    `json:"production_id"`
	}

	SaleResponse struct {
		ID           uint    `json:"id"`
		AnimalID     uint    `json:"animal_id"`
		ProductType  string  `json:"product_type"`
		QuantitySold int     `json:"quantity_sold"`
		SaleDate     string  `json:"sale_date"`
		Amount       float64 `json:"amount"`
		ProductionID *uint   `json:"production_id"`
	}

	SaleDetailResponse struct {
		SaleResponse
		Animal     *AnimalResponse     `json:"animal"`
		Production *ProductionResponse `json:"production"`
	}
)

func NewSaleResponse(s *entities.Sale) SaleResponse {
	return SaleResponse{
		ID:           s.ID,
		AnimalID:     s.AnimalID,
		ProductType:  s.ProductType,
		QuantitySold: s.QuantitySold,
		SaleDate:     s.SaleDate,
		Amount:       s.Amount,
		ProductionID: s.ProductionID,
	}
}

func NewSaleDetailResponse(s *entities.Sale) SaleDetailResponse {
	res := SaleDetailResponse{SaleResponse: NewSaleResponse(s)}
	if s.Animal != nil {
		animal := NewAnimalResponse(s.Animal)
		res.Animal = &animal
	}
	if s.Production != nil {
		production := NewProductionResponse(s.Production)
		res.Production = &production
	}
	return res
}

func ApplySalePatch(s *entities.Sale, p Patch) *ValidationError {
	return first(
		p.Uint("animal_id", &s.AnimalID),
		p.String("product_type", &s.ProductType),
		p.Int("quantity_sold", &s.QuantitySold),
		p.String("sale_date", &s.SaleDate),
		p.Float("amount", &s.Amount),
		p.OptionalUint("production_id", &s.ProductionID),
	)
}
