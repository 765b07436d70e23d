package usecase

import (
	"context"

	"emile-auto/internal/cars/domain/model"
	"emile-auto/internal/cars/domain/repository"
	"emile-auto/internal/shared/logger"
)

// CarUsecaseInterface defines the application operations over vehicle
// listings. Each operation is a single unit of work against the store.
type CarUsecaseInterface interface {
	List(ctx context.Context) ([]model.Car, error)
	GetByID(ctx context.Context, id string) (*model.Car, error)
	Create(ctx context.Context, car *model.Car) (*model.Car, error)
	Replace(ctx context.Context, id string, car *model.Car) (*model.Car, error)
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) (int64, error)
}

type carUsecase struct {
	repo repository.CarRepository
	log  logger.Logger
}

// NewCarUsecase creates a new car usecase instance.
func NewCarUsecase(repo repository.CarRepository, log logger.Logger) CarUsecaseInterface {
	return &carUsecase{
		repo: repo,
		log:  log.WithComponent("cars"),
	}
}

func (uc *carUsecase) List(ctx context.Context) ([]model.Car, error) {
	cars, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.WithContext(ctx).Errorf("list cars: %v", err)
		return nil, err
	}
	return cars, nil
}

func (uc *carUsecase) GetByID(ctx context.Context, id string) (*model.Car, error) {
	car, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.log.WithContext(ctx).Warnf("get car %s: %v", id, err)
		return nil, err
	}
	return car, nil
}

func (uc *carUsecase) Create(ctx context.Context, car *model.Car) (*model.Car, error) {
	created, err := uc.repo.Create(ctx, car)
	if err != nil {
		uc.log.WithContext(ctx).Errorf("create car: %v", err)
		return nil, err
	}
	uc.log.WithContext(ctx).Infof("car created: %s", created.ID.Hex())
	return created, nil
}

func (uc *carUsecase) Replace(ctx context.Context, id string, car *model.Car) (*model.Car, error) {
	replaced, err := uc.repo.Replace(ctx, id, car)
	if err != nil {
		uc.log.WithContext(ctx).Errorf("replace car %s: %v", id, err)
		return nil, err
	}
	return replaced, nil
}

func (uc *carUsecase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.log.WithContext(ctx).Errorf("delete car %s: %v", id, err)
		return err
	}
	uc.log.WithContext(ctx).Infof("car deleted: %s", id)
	return nil
}

func (uc *carUsecase) IncrementViews(ctx context.Context, id string) (int64, error) {
	views, err := uc.repo.IncrementViews(ctx, id)
	if err != nil {
		uc.log.WithContext(ctx).Warnf("increment views %s: %v", id, err)
		return 0, err
	}
	return views, nil
}
