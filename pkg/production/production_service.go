package production

import (
	"context"
	"errors"

	"barnmonitor-backend/domain"
	"barnmonitor-backend/entities"
	"barnmonitor-backend/internal/utils"
	"barnmonitor-backend/pkg/animal"

	"gorm.io/gorm"
)

type (
	ProductionService interface {
		GetProductions(ctx context.Context) ([]domain.ProductionResponse, error)
		GetProductionByID(ctx context.Context, id uint) (domain.ProductionDetailResponse, error)
		CreateProduction(ctx context.Context, req domain.CreateProductionRequest) (domain.ProductionResponse, error)
		UpdateProduction(ctx context.Context, id uint, patch domain.Patch) (domain.ProductionResponse, error)
		DeleteProduction(ctx context.Context, id uint) error
	}

	productionService struct {
		productionRepository ProductionRepository
		animalRepository     animal.AnimalRepository
	}
)

func NewProductionService(productionRepository ProductionRepository, animalRepository animal.AnimalRepository) ProductionService {
	return &productionService{
		productionRepository: productionRepository,
		animalRepository:     animalRepository,
	}
}

func (s *productionService) GetProductions(ctx context.Context) ([]domain.ProductionResponse, error) {
	productions, err := s.productionRepository.GetProductions(ctx)
	if err != nil {
		return nil, domain.NewInternal(err)
	}

	res := make([]domain.ProductionResponse, 0, len(productions))
	for _, p := range productions {
		res = append(res, domain.NewProductionResponse(p))
	}
	return res, nil
}

func (s *productionService) GetProductionByID(ctx context.Context, id uint) (domain.ProductionDetailResponse, error) {
	production, err := s.productionRepository.GetProductionDetails(ctx, id)
	if err != nil {
		return domain.ProductionDetailResponse{}, notFound(err)
	}
	return domain.NewProductionDetailResponse(production), nil
}

func (s *productionService) CreateProduction(ctx context.Context, req domain.CreateProductionRequest) (domain.ProductionResponse, error) {
	production := entities.Production{
		AnimalID:       *req.AnimalID,
		ProductType:    *req.ProductType,
		Quantity:       *req.Quantity,
		ProductionDate: *req.ProductionDate,
	}
	if err := s.save(ctx, &production, s.productionRepository.CreateProduction); err != nil {
		return domain.ProductionResponse{}, err
	}
	return domain.NewProductionResponse(&production), nil
}

func (s *productionService) UpdateProduction(ctx context.Context, id uint, patch domain.Patch) (domain.ProductionResponse, error) {
	production, err := s.productionRepository.GetProductionByID(ctx, id)
	if err != nil {
		return domain.ProductionResponse{}, notFound(err)
	}

	if err := domain.ApplyProductionPatch(production, patch); err != nil {
		return domain.ProductionResponse{}, err
	}
	if err := s.save(ctx, production, s.productionRepository.UpdateProduction); err != nil {
		return domain.ProductionResponse{}, err
	}
	return domain.NewProductionResponse(production), nil
}

func (s *productionService) DeleteProduction(ctx context.Context, id uint) error {
	err := s.productionRepository.DeleteProduction(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrProductionNotFound
	}
	return utils.TranslateStorageError(err)
}

func (s *productionService) save(
	ctx context.Context,
	production *entities.Production,
	write func(context.Context, *entities.Production) error,
) error {
	if err := domain.ValidateProduction(production); err != nil {
		return err
	}

	exists, err := s.animalRepository.AnimalExists(ctx, production.AnimalID)
	if err != nil {
		return domain.NewInternal(err)
	}
	if !exists {
		return domain.ErrUnknownAnimal
	}

	return utils.TranslateStorageError(write(ctx, production))
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrProductionNotFound
	}
	return domain.NewInternal(err)
}
