package animal

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"barnmonitor-backend/domain"
	"barnmonitor-backend/entities"
	"barnmonitor-backend/internal/utils"
	"barnmonitor-backend/internal/utils/storage"
	"barnmonitor-backend/pkg/animaltype"
	"barnmonitor-backend/pkg/farmer"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const imageFolder = "animals"

type (
	AnimalService interface {
		GetAnimals(ctx context.Context) ([]domain.AnimalResponse, error)
		GetAnimalByID(ctx context.Context, id uint) (domain.AnimalDetailResponse, error)
		CreateAnimal(ctx context.Context, req domain.CreateAnimalRequest, ownerID uint) (domain.AnimalResponse, error)
		UpdateAnimal(ctx context.Context, id uint, patch domain.Patch) (domain.AnimalResponse, error)
		DeleteAnimal(ctx context.Context, id uint) error
		UploadAnimalImage(ctx context.Context, id uint, file *multipart.FileHeader) (domain.AnimalResponse, error)
	}

	animalService struct {
		animalRepository     AnimalRepository
		farmerRepository     farmer.FarmerRepository
		animalTypeRepository animaltype.AnimalTypeRepository
		s3                   storage.AwsS3
		logger               *zap.Logger
		now                  func() time.Time
	}
)

// NewAnimalService wires the animal flows. s3 may be nil when image storage
// is not configured.
func NewAnimalService(
	animalRepository AnimalRepository,
	farmerRepository farmer.FarmerRepository,
	animalTypeRepository animaltype.AnimalTypeRepository,
	s3 storage.AwsS3,
	logger *zap.Logger,
) AnimalService {
	return &animalService{
		animalRepository:     animalRepository,
		farmerRepository:     farmerRepository,
		animalTypeRepository: animalTypeRepository,
		s3:                   s3,
		logger:               logger,
		now:                  time.Now,
	}
}

func (s *animalService) GetAnimals(ctx context.Context) ([]domain.AnimalResponse, error) {
	animals, err := s.animalRepository.GetAnimals(ctx)
	if err != nil {
		return nil, domain.NewInternal(err)
	}

	res := make([]domain.AnimalResponse, 0, len(animals))
	for _, a := range animals {
		res = append(res, domain.NewAnimalResponse(a))
	}
	return res, nil
}

func (s *animalService) GetAnimalByID(ctx context.Context, id uint) (domain.AnimalDetailResponse, error) {
	animal, err := s.animalRepository.GetAnimalDetails(ctx, id)
	if err != nil {
		return domain.AnimalDetailResponse{}, notFound(err)
	}
	return domain.NewAnimalDetailResponse(animal), nil
}

// CreateAnimal stores a new animal. Without an explicit farmer_id the animal
// belongs to ownerID, the farmer of the current session.
func (s *animalService) CreateAnimal(ctx context.Context, req domain.CreateAnimalRequest, ownerID uint) (domain.AnimalResponse, error) {
	animal := entities.Animal{
		Name:         *req.Name,
		Image:        req.Image,
		Breed:        req.Breed,
		Age:          req.Age,
		HealthStatus: req.HealthStatus,
		BirthDate:    *req.BirthDate,
		FarmerID:     req.FarmerID,
		AnimalTypeID: req.AnimalTypeID,
	}
	if animal.FarmerID == nil && ownerID != 0 {
		animal.FarmerID = &ownerID
	}

	if err := s.save(ctx, &animal, s.animalRepository.CreateAnimal); err != nil {
		return domain.AnimalResponse{}, err
	}
	return domain.NewAnimalResponse(&animal), nil
}

func (s *animalService) UpdateAnimal(ctx context.Context, id uint, patch domain.Patch) (domain.AnimalResponse, error) {
	animal, err := s.animalRepository.GetAnimalByID(ctx, id)
	if err != nil {
		return domain.AnimalResponse{}, notFound(err)
	}

	if err := domain.ApplyAnimalPatch(animal, patch); err != nil {
		return domain.AnimalResponse{}, err
	}
	if err := s.save(ctx, animal, s.animalRepository.UpdateAnimal); err != nil {
		return domain.AnimalResponse{}, err
	}
	return domain.NewAnimalResponse(animal), nil
}

func (s *animalService) DeleteAnimal(ctx context.Context, id uint) error {
	animal, err := s.animalRepository.DeleteAnimal(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrAnimalNotFound
		}
		return utils.TranslateStorageError(err)
	}

	s.removeImage(ctx, animal.Image)
	return nil
}

func (s *animalService) UploadAnimalImage(ctx context.Context, id uint, file *multipart.FileHeader) (domain.AnimalResponse, error) {
	if s.s3 == nil {
		return domain.AnimalResponse{}, domain.ErrStorageNotConfigured
	}

	animal, err := s.animalRepository.GetAnimalByID(ctx, id)
	if err != nil {
		return domain.AnimalResponse{}, notFound(err)
	}

	link, err := s.s3.UploadFile(ctx, imageFolder, file, storage.AllowImage...)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidImageFormat) {
			return domain.AnimalResponse{}, err
		}
		return domain.AnimalResponse{}, domain.NewInternal(err)
	}

	previous := animal.Image
	animal.Image = &link
	if err := s.animalRepository.UpdateAnimal(ctx, animal); err != nil {
		s.removeImage(ctx, &link)
		return domain.AnimalResponse{}, utils.TranslateStorageError(err)
	}

	s.removeImage(ctx, previous)
	return domain.NewAnimalResponse(animal), nil
}

// save validates the animal, checks its references and uniqueness, then
// hands it to write.
func (s *animalService) save(
	ctx context.Context,
	animal *entities.Animal,
	write func(context.Context, *entities.Animal) error,
) error {
	if _, err := domain.ParseDate(animal.BirthDate); err != nil {
		return domain.NewInvalidFormat("birth_date", err)
	}
	if err := domain.ValidateAnimal(animal, domain.Today(s.now())); err != nil {
		return err
	}

	if animal.FarmerID != nil {
		exists, err := s.farmerRepository.FarmerExists(ctx, *animal.FarmerID)
		if err != nil {
			return domain.NewInternal(err)
		}
		if !exists {
			return domain.ErrUnknownFarmer
		}
	}
	if animal.AnimalTypeID != nil {
		exists, err := s.animalTypeRepository.AnimalTypeExists(ctx, *animal.AnimalTypeID)
		if err != nil {
			return domain.NewInternal(err)
		}
		if !exists {
			return domain.ErrUnknownAnimalType
		}
	}

	taken, err := s.animalRepository.NameTaken(ctx, animal.Name, animal.ID)
	if err != nil {
		return domain.NewInternal(err)
	}
	if taken {
		return domain.ErrAnimalNameTaken
	}

	return utils.TranslateStorageError(write(ctx, animal))
}

func (s *animalService) removeImage(ctx context.Context, link *string) {
	if s.s3 == nil || link == nil {
		return
	}
	key := s.s3.GetObjectKeyFromLink(*link)
	if key == "" {
		return
	}
	if err := s.s3.DeleteFile(ctx, key); err != nil {
		s.logger.Warn("failed to delete animal image", zap.String("key", key), zap.Error(err))
	}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrAnimalNotFound
	}
	return domain.NewInternal(err)
}
