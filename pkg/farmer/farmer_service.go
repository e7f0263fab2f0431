package farmer

import (
	"context"
	"errors"

	"barnmonitor-backend/domain"
	"barnmonitor-backend/internal/utils"

	"gorm.io/gorm"
)

type (
	FarmerService interface {
		GetFarmers(ctx context.Context) ([]domain.FarmerResponse, error)
		GetFarmerByID(ctx context.Context, id uint) (domain.FarmerDetailResponse, error)
		DeleteFarmer(ctx context.Context, id uint) error
	}

	farmerService struct {
		farmerRepository FarmerRepository
	}
)

func NewFarmerService(farmerRepository FarmerRepository) FarmerService {
	return &farmerService{
		farmerRepository: farmerRepository,
	}
}

func (s *farmerService) GetFarmers(ctx context.Context) ([]domain.FarmerResponse, error) {
	farmers, err := s.farmerRepository.GetFarmers(ctx)
	if err != nil {
		return nil, domain.NewInternal(err)
	}

	res := make([]domain.FarmerResponse, 0, len(farmers))
	for _, f := range farmers {
		res = append(res, domain.NewFarmerResponse(f))
	}
	return res, nil
}

func (s *farmerService) GetFarmerByID(ctx context.Context, id uint) (domain.FarmerDetailResponse, error) {
	farmer, err := s.farmerRepository.GetFarmerByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FarmerDetailResponse{}, domain.ErrFarmerNotFound
		}
		return domain.FarmerDetailResponse{}, domain.NewInternal(err)
	}
	return domain.NewFarmerDetailResponse(farmer), nil
}

func (s *farmerService) DeleteFarmer(ctx context.Context, id uint) error {
	err := s.farmerRepository.DeleteFarmer(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrFarmerNotFound
	}
	return utils.TranslateStorageError(err)
}
