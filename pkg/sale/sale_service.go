package sale

import (
	"context"
	"errors"

	"barnmonitor-backend/domain"
	"barnmonitor-backend/entities"
	"barnmonitor-backend/internal/utils"
	"barnmonitor-backend/pkg/animal"
	"barnmonitor-backend/pkg/production"

	"gorm.io/gorm"
)

type (
	SaleService interface {
		GetSales(ctx context.Context) ([]domain.SaleResponse, error)
		GetSaleByID(ctx context.Context, id uint) (domain.SaleDetailResponse, error)
		CreateSale(ctx context.Context, req domain.CreateSaleRequest) (domain.SaleResponse, error)
		UpdateSale(ctx context.Context, id uint, patch domain.Patch) (domain.SaleResponse, error)
		DeleteSale(ctx context.Context, id uint) error
	}

	saleService struct {
		saleRepository       SaleRepository
		animalRepository     animal.AnimalRepository
		productionRepository production.ProductionRepository
	}
)

func NewSaleService(
	saleRepository SaleRepository,
	animalRepository animal.AnimalRepository,
	productionRepository production.ProductionRepository,
) SaleService {
	return &saleService{
		saleRepository:       saleRepository,
		animalRepository:     animalRepository,
		productionRepository: productionRepository,
	}
}

func (s *saleService) GetSales(ctx context.Context) ([]domain.SaleResponse, error) {
	sales, err := s.saleRepository.GetSales(ctx)
	if err != nil {
		return nil, domain.NewInternal(err)
	}

	res := make([]domain.SaleResponse, 0, len(sales))
	for _, sale := range sales {
		res = append(res, domain.NewSaleResponse(sale))
	}
	return res, nil
}

func (s *saleService) GetSaleByID(ctx context.Context, id uint) (domain.SaleDetailResponse, error) {
	sale, err := s.saleRepository.GetSaleDetails(ctx, id)
	if err != nil {
		return domain.SaleDetailResponse{}, notFound(err)
	}
	return domain.NewSaleDetailResponse(sale), nil
}

func (s *saleService) CreateSale(ctx context.Context, req domain.CreateSaleRequest) (domain.SaleResponse, error) {
	sale := entities.Sale{
		AnimalID:     *req.AnimalID,
		ProductType:  *req.ProductType,
		QuantitySold: *req.QuantitySold,
		SaleDate:     *req.SaleDate,
		Amount:       *req.Amount,
		ProductionID: req.ProductionID,
	}
	if err := s.save(ctx, &sale, s.saleRepository.CreateSale); err != nil {
		return domain.SaleResponse{}, err
	}
	return domain.NewSaleResponse(&sale), nil
}

func (s *saleService) UpdateSale(ctx context.Context, id uint, patch domain.Patch) (domain.SaleResponse, error) {
	sale, err := s.saleRepository.GetSaleByID(ctx, id)
	if err != nil {
		return domain.SaleResponse{}, notFound(err)
	}

	if err := domain.ApplySalePatch(sale, patch); err != nil {
		return domain.SaleResponse{}, err
	}
	if err := s.save(ctx, sale, s.saleRepository.UpdateSale); err != nil {
		return domain.SaleResponse{}, err
	}
	return domain.NewSaleResponse(sale), nil
}

func (s *saleService) DeleteSale(ctx context.Context, id uint) error {
	err := s.saleRepository.DeleteSale(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrSaleNotFound
	}
	return utils.TranslateStorageError(err)
}

func (s *saleService) save(
	ctx context.Context,
	sale *entities.Sale,
	write func(context.Context, *entities.Sale) error,
) error {
	if err := domain.ValidateSale(sale); err != nil {
		return err
	}

	exists, err := s.animalRepository.AnimalExists(ctx, sale.AnimalID)
	if err != nil {
		return domain.NewInternal(err)
	}
	if !exists {
		return domain.ErrUnknownAnimal
	}

	if sale.ProductionID != nil {
		exists, err := s.productionRepository.ProductionExists(ctx, *sale.ProductionID)
		if err != nil {
			return domain.NewInternal(err)
		}
		if !exists {
			return domain.ErrUnknownProduction
		}
	}

	return utils.TranslateStorageError(write(ctx, sale))
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrSaleNotFound
	}
	return domain.NewInternal(err)
}
