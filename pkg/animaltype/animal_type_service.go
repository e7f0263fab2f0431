package animaltype

import (
	"context"

	"barnmonitor-backend/domain"
	"barnmonitor-backend/entities"
	"barnmonitor-backend/internal/utils"
)

type (
	AnimalTypeService interface {
		GetAnimalTypes(ctx context.Context) ([]domain.AnimalTypeResponse, error)
		GetAnimalTypeByID(ctx context.Context, id uint) (domain.AnimalTypeResponse, error)
		CreateAnimalType(ctx context.Context, req domain.CreateAnimalTypeRequest) (domain.AnimalTypeResponse, error)
		UpdateAnimalType(ctx context.Context, id uint, patch domain.Patch) (domain.AnimalTypeResponse, error)
		DeleteAnimalType(ctx context.Context, id uint) error
	}

	animalTypeService struct {
		animalTypeRepository AnimalTypeRepository
	}
)

func NewAnimalTypeService(animalTypeRepository AnimalTypeRepository) AnimalTypeService {
	return &animalTypeService{
		animalTypeRepository: animalTypeRepository,
	}
}

func (s *animalTypeService) GetAnimalTypes(ctx context.Context) ([]domain.AnimalTypeResponse, error) {
	animalTypes, err := s.animalTypeRepository.GetAnimalTypes(ctx)
	if err != nil {
		return nil, domain.NewInternal(err)
	}

	res := make([]domain.AnimalTypeResponse, 0, len(animalTypes))
	for _, t := range animalTypes {
		res = append(res, domain.NewAnimalTypeResponse(t))
	}
	return res, nil
}

func (s *animalTypeService) GetAnimalTypeByID(ctx context.Context, id uint) (domain.AnimalTypeResponse, error) {
	animalType, err := s.animalTypeRepository.GetAnimalTypeByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return domain.AnimalTypeResponse{}, domain.ErrAnimalTypeNotFound
		}
		return domain.AnimalTypeResponse{}, domain.NewInternal(err)
	}
	return domain.NewAnimalTypeResponse(animalType), nil
}

func (s *animalTypeService) CreateAnimalType(ctx context.Context, req domain.CreateAnimalTypeRequest) (domain.AnimalTypeResponse, error) {
	animalType := entities.AnimalType{
		TypeName:    *req.TypeName,
		Description: req.Description,
	}
	if err := s.save(ctx, &animalType, s.animalTypeRepository.CreateAnimalType); err != nil {
		return domain.AnimalTypeResponse{}, err
	}
	return domain.NewAnimalTypeResponse(&animalType), nil
}

func (s *animalTypeService) UpdateAnimalType(ctx context.Context, id uint, patch domain.Patch) (domain.AnimalTypeResponse, error) {
	animalType, err := s.animalTypeRepository.GetAnimalTypeByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return domain.AnimalTypeResponse{}, domain.ErrAnimalTypeNotFound
		}
		return domain.AnimalTypeResponse{}, domain.NewInternal(err)
	}

	if err := domain.ApplyAnimalTypePatch(animalType, patch); err != nil {
		return domain.AnimalTypeResponse{}, err
	}
	if err := s.save(ctx, animalType, s.animalTypeRepository.UpdateAnimalType); err != nil {
		return domain.AnimalTypeResponse{}, err
	}
	return domain.NewAnimalTypeResponse(animalType), nil
}

func (s *animalTypeService) DeleteAnimalType(ctx context.Context, id uint) error {
	err := s.animalTypeRepository.DeleteAnimalType(ctx, id)
	if isNotFound(err) {
		return domain.ErrAnimalTypeNotFound
	}
	return utils.TranslateStorageError(err)
}

func (s *animalTypeService) save(
	ctx context.Context,
	animalType *entities.AnimalType,
	write func(context.Context, *entities.AnimalType) error,
) error {
	if err := domain.ValidateAnimalType(animalType); err != nil {
		return err
	}

	taken, err := s.animalTypeRepository.TypeNameTaken(ctx, animalType.TypeName, animalType.ID)
	if err != nil {
		return domain.NewInternal(err)
	}
	if taken {
		return domain.ErrAnimalTypeNameTaken
	}

	return utils.TranslateStorageError(write(ctx, animalType))
}
