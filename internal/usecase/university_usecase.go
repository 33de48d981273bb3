package usecase

import (
	"context"

	"unihostel/internal/domain/entity"
	"unihostel/internal/domain/repository"
)

type UniversityUseCase struct {
	universityRepo repository.UniversityRepository
}

func NewUniversityUseCase(universityRepo repository.UniversityRepository) *UniversityUseCase {
	return &UniversityUseCase{
		universityRepo: universityRepo,
	}
}

type UniversityInput struct {
	Name      string
	ShortName string
	Area      string
	City      string
}

func (uc *UniversityUseCase) CreateUniversity(ctx context.Context, input UniversityInput) (*entity.University, error) {
	university := &entity.University{
		Name:      input.Name,
		ShortName: input.ShortName,
		Area:      input.Area,
		City:      input.City,
	}

	if err := uc.universityRepo.Create(ctx, university); err != nil {
		return nil, err
	}

	return university, nil
}

func (uc *UniversityUseCase) ListUniversities(ctx context.Context) ([]*entity.University, error) {
	return uc.universityRepo.ListAll(ctx)
}

func (uc *UniversityUseCase) UpdateUniversity(ctx context.Context, id string, input UniversityInput) error {
	return uc.universityRepo.Update(ctx, id, map[string]interface{}{
		"name":      input.Name,
		"shortName": input.ShortName,
		"area":      input.Area,
		"city":      input.City,
	})
}

func (uc *UniversityUseCase) DeleteUniversity(ctx context.Context, id string) error {
	return uc.universityRepo.Delete(ctx, id)
}
