package health

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
	HealthRecordService interface {
		GetHealthRecords(ctx context.Context) ([]domain.HealthRecordResponse, error)
		GetHealthRecordByID(ctx context.Context, id uint) (domain.HealthRecordResponse, error)
		CreateHealthRecord(ctx context.Context, req domain.CreateHealthRecordRequest) (domain.HealthRecordResponse, error)
		UpdateHealthRecord(ctx context.Context, id uint, patch domain.Patch) (domain.HealthRecordResponse, error)
		DeleteHealthRecord(ctx context.Context, id uint) error
	}

	healthRecordService struct {
		healthRecordRepository HealthRecordRepository
		animalRepository       animal.AnimalRepository
	}
)

func NewHealthRecordService(
	healthRecordRepository HealthRecordRepository,
	animalRepository animal.AnimalRepository,
) HealthRecordService {
	return &healthRecordService{
		healthRecordRepository: healthRecordRepository,
		animalRepository:       animalRepository,
	}
}

func (s *healthRecordService) GetHealthRecords(ctx context.Context) ([]domain.HealthRecordResponse, error) {
	records, err := s.healthRecordRepository.GetHealthRecords(ctx)
	if err != nil {
		return nil, domain.NewInternal(err)
	}

	res := make([]domain.HealthRecordResponse, 0, len(records))
	for _, h := range records {
		res = append(res, domain.NewHealthRecordResponse(h))
	}
	return res, nil
}

func (s *healthRecordService) GetHealthRecordByID(ctx context.Context, id uint) (domain.HealthRecordResponse, error) {
	record, err := s.healthRecordRepository.GetHealthRecordByID(ctx, id)
	if err != nil {
		return domain.HealthRecordResponse{}, notFound(err)
	}
	return domain.NewHealthRecordResponse(record), nil
}

// CreateHealthRecord stores a checkup. The animal is named either by
// animal_id or by its unique name; the name wins when both are given.
func (s *healthRecordService) CreateHealthRecord(ctx context.Context, req domain.CreateHealthRecordRequest) (domain.HealthRecordResponse, error) {
	checkupDate, err := domain.ParseCheckupDate(*req.CheckupDate)
	if err != nil {
		return domain.HealthRecordResponse{}, domain.NewInvalidFormat("checkup_date", err)
	}

	record := entities.HealthRecord{
		CheckupDate: checkupDate,
		Treatment:   *req.Treatment,
		Notes:       req.Notes,
		VetName:     *req.VetName,
	}

	if req.Name != nil {
		animalID, err := s.animalIDByName(ctx, *req.Name)
		if err != nil {
			return domain.HealthRecordResponse{}, err
		}
		record.AnimalID = animalID
	} else {
		record.AnimalID = *req.AnimalID
	}

	if err := s.save(ctx, &record, s.healthRecordRepository.CreateHealthRecord); err != nil {
		return domain.HealthRecordResponse{}, err
	}
	return domain.NewHealthRecordResponse(&record), nil
}

func (s *healthRecordService) UpdateHealthRecord(ctx context.Context, id uint, patch domain.Patch) (domain.HealthRecordResponse, error) {
	record, err := s.healthRecordRepository.GetHealthRecordByID(ctx, id)
	if err != nil {
		return domain.HealthRecordResponse{}, notFound(err)
	}

	if err := domain.ApplyHealthRecordPatch(record, patch); err != nil {
		return domain.HealthRecordResponse{}, err
	}

	if patch.Has("checkup_date") {
		var raw string
		if err := patch.String("checkup_date", &raw); err != nil {
			return domain.HealthRecordResponse{}, err
		}
		checkupDate, err := domain.ParseCheckupDate(raw)
		if err != nil {
			return domain.HealthRecordResponse{}, domain.NewInvalidFormat("checkup_date", err)
		}
		record.CheckupDate = checkupDate
	}

	if patch.Has("name") {
		var name string
		if err := patch.String("name", &name); err != nil {
			return domain.HealthRecordResponse{}, err
		}
		animalID, err := s.animalIDByName(ctx, name)
		if err != nil {
			return domain.HealthRecordResponse{}, err
		}
		record.AnimalID = animalID
	}

	if err := s.save(ctx, record, s.healthRecordRepository.UpdateHealthRecord); err != nil {
		return domain.HealthRecordResponse{}, err
	}
	return domain.NewHealthRecordResponse(record), nil
}

func (s *healthRecordService) DeleteHealthRecord(ctx context.Context, id uint) error {
	err := s.healthRecordRepository.DeleteHealthRecord(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrHealthRecordNotFound
	}
	return utils.TranslateStorageError(err)
}

func (s *healthRecordService) animalIDByName(ctx context.Context, name string) (uint, error) {
	a, err := s.animalRepository.GetAnimalByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrUnknownAnimalName
		}
		return 0, domain.NewInternal(err)
	}
	return a.ID, nil
}

func (s *healthRecordService) save(
	ctx context.Context,
	record *entities.HealthRecord,
	write func(context.Context, *entities.HealthRecord) error,
) error {
	if err := domain.ValidateHealthRecord(record); err != nil {
		return err
	}

	exists, err := s.animalRepository.AnimalExists(ctx, record.AnimalID)
	if err != nil {
		return domain.NewInternal(err)
	}
	if !exists {
		return domain.ErrUnknownAnimal
	}

	return utils.TranslateStorageError(write(ctx, record))
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrHealthRecordNotFound
	}
	return domain.NewInternal(err)
}
