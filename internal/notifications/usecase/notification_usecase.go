package usecase

import (
	"context"

	"emile-auto/internal/notifications/domain/model"
	"emile-auto/internal/notifications/domain/repository"
	"emile-auto/internal/shared/logger"
)

// NotificationUsecaseInterface defines the application operations over
// notifications, including the destructive history wipe.
type NotificationUsecaseInterface interface {
	List(ctx context.Context) ([]model.Notification, error)
	Create(ctx context.Context, n *model.Notification) (*model.Notification, error)
	MarkRead(ctx context.Context, id string) (*model.Notification, error)
	Delete(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
}

type notificationUsecase struct {
	repo repository.NotificationRepository
	log  logger.Logger
}

// NewNotificationUsecase creates a new notification usecase instance.
func NewNotificationUsecase(repo repository.NotificationRepository, log logger.Logger) NotificationUsecaseInterface {
	return &notificationUsecase{
		repo: repo,
		log:  log.WithComponent("notifications"),
	}
}

func (uc *notificationUsecase) List(ctx context.Context) ([]model.Notification, error) {
	notifications, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.WithContext(ctx).Errorf("list notifications: %v", err)
		return nil, err
	}
	return notifications, nil
}

func (uc *notificationUsecase) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	created, err := uc.repo.Create(ctx, n)
	if err != nil {
		uc.log.WithContext(ctx).Errorf("create notification: %v", err)
		return nil, err
	}
	return created, nil
}

func (uc *notificationUsecase) MarkRead(ctx context.Context, id string) (*model.Notification, error) {
	n, err := uc.repo.MarkRead(ctx, id)
	if err != nil {
		uc.log.WithContext(ctx).Warnf("mark notification read %s: %v", id, err)
		return nil, err
	}
	return n, nil
}

func (uc *notificationUsecase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.log.WithContext(ctx).Errorf("delete notification %s: %v", id, err)
		return err
	}
	return nil
}

// ClearAll wipes the whole history. There is no undo.
func (uc *notificationUsecase) ClearAll(ctx context.Context) error {
	if err := uc.repo.ClearAll(ctx); err != nil {
		uc.log.WithContext(ctx).Errorf("clear notifications: %v", err)
		return err
	}
	uc.log.WithContext(ctx).Info("notification history cleared")
	return nil
}
