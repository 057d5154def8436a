package service

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/yumyum-spot/menu-service/internal/domain"
	"github.com/yumyum-spot/menu-service/internal/events"
	"github.com/yumyum-spot/menu-service/internal/repository"
	"github.com/yumyum-spot/menu-service/internal/storage"
	apperrors "github.com/yumyum-spot/menu-service/pkg/util"
)

// MenuCache caches the full menu listing between requests.
type MenuCache interface {
	GetList(ctx context.Context) ([]domain.MenuItem, bool)
	SetList(ctx context.Context, items []domain.MenuItem)
	Invalidate(ctx context.Context)
}

// MenuItemInput carries the writable menu item fields.
type MenuItemInput struct {
	Name        string
	Description string
	Category    string
	SpecialTag  string
	Price       float64
}

// MenuService owns menu item CRUD, image handling and list caching.
type MenuService struct {
	items      repository.MenuItemRepository
	images     storage.ImageStore
	cache      MenuCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewMenuService builds the service. Cache and dispatcher may be nil.
func NewMenuService(items repository.MenuItemRepository, images storage.ImageStore, cache MenuCache, dispatcher events.Dispatcher, logger *zap.Logger) *MenuService {
	return &MenuService{
		items:      items,
		images:     images,
		cache:      cache,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// List returns all menu items, serving from cache when warm.
func (s *MenuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	if s.cache != nil {
		if items, ok := s.cache.GetList(ctx); ok {
			return items, nil
		}
	}

	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetList(ctx, items)
	}
	return items, nil
}

// Get returns a single menu item.
func (s *MenuService) Get(ctx context.Context, id int64) (*domain.MenuItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("menu item")
		}
		return nil, err
	}
	return item, nil
}

// Create stores the uploaded image and persists the new item.
func (s *MenuService) Create(ctx context.Context, input MenuItemInput, imageName string, image io.Reader) (*domain.MenuItem, error) {
	imagePath, err := s.images.Save(imageName, image)
	if err != nil {
		return nil, apperrors.NewValidationError([]string{err.Error()})
	}

	item := &domain.MenuItem{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		SpecialTag:  input.SpecialTag,
		Price:       input.Price,
		Image:       imagePath,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.publish(ctx, events.EventMenuItemCreated, events.MenuItemPayload{
		MenuItemID: item.ID,
		Name:       item.Name,
		Category:   item.Category,
		Price:      item.Price,
	})
	return item, nil
}

// Update overwrites the writable fields and optionally replaces the image.
// Pass a nil reader to keep the existing image.
func (s *MenuService) Update(ctx context.Context, id int64, input MenuItemInput, imageName string, image io.Reader) (*domain.MenuItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	oldImage := item.Image
	if image != nil {
		imagePath, err := s.images.Save(imageName, image)
		if err != nil {
			return nil, apperrors.NewValidationError([]string{err.Error()})
		}
		item.Image = imagePath
	}

	item.Name = input.Name
	item.Description = input.Description
	item.Category = input.Category
	item.SpecialTag = input.SpecialTag
	item.Price = input.Price

	if err := s.items.Update(ctx, item); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("menu item")
		}
		return nil, err
	}

	if image != nil && oldImage != item.Image {
		if err := s.images.Remove(oldImage); err != nil {
			s.logger.Warn("failed to remove replaced image", zap.String("path", oldImage), zap.Error(err))
		}
	}

	s.invalidate(ctx)
	s.publish(ctx, events.EventMenuItemUpdated, events.MenuItemPayload{
		MenuItemID: item.ID,
		Name:       item.Name,
		Category:   item.Category,
		Price:      item.Price,
	})
	return item, nil
}

// Delete removes the item and its image file.
func (s *MenuService) Delete(ctx context.Context, id int64) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.items.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("menu item")
		}
		return err
	}

	if err := s.images.Remove(item.Image); err != nil {
		s.logger.Warn("failed to remove image", zap.String("path", item.Image), zap.Error(err))
	}

	s.invalidate(ctx)
	s.publish(ctx, events.EventMenuItemDeleted, events.MenuItemDeletedPayload{MenuItemID: id})
	return nil
}

func (s *MenuService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

func (s *MenuService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
