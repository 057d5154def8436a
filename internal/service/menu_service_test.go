package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yumyum-spot/menu-service/internal/config"
	"github.com/yumyum-spot/menu-service/internal/domain"
	"github.com/yumyum-spot/menu-service/internal/storage"
	apperrors "github.com/yumyum-spot/menu-service/pkg/util"
)

type stubMenuRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*domain.MenuItem
	lists  int
}

func newStubMenuRepo() *stubMenuRepo {
	return &stubMenuRepo{nextID: 1, items: make(map[int64]*domain.MenuItem)}
}

func (r *stubMenuRepo) List(_ context.Context) ([]domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists++
	items := make([]domain.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, *item)
	}
	return items, nil
}

func (r *stubMenuRepo) GetByID(_ context.Context, id int64) (*domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item, ok := r.items[id]; ok {
		clone := *item
		return &clone, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *stubMenuRepo) Create(_ context.Context, item *domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = r.nextID
	r.nextID++
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *stubMenuRepo) Update(_ context.Context, item *domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return pgx.ErrNoRows
	}
	item.UpdatedAt = time.Now()
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *stubMenuRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

type stubCache struct {
	mu            sync.Mutex
	items         []domain.MenuItem
	warm          bool
	invalidations int
}

func (c *stubCache) GetList(_ context.Context) ([]domain.MenuItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.warm {
		return nil, false
	}
	return append([]domain.MenuItem{}, c.items...), true
}

func (c *stubCache) SetList(_ context.Context, items []domain.MenuItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]domain.MenuItem{}, items...)
	c.warm = true
}

func (c *stubCache) Invalidate(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.warm = false
	c.invalidations++
}

func newTestMenuService(t *testing.T) (*MenuService, *stubMenuRepo, *stubCache, string) {
	t.Helper()
	dir := t.TempDir()
	repo := newStubMenuRepo()
	cache := &stubCache{}
	images := storage.NewDiskImageStore(config.UploadConfig{PublicDir: dir, ImagesDir: "images"})
	svc := NewMenuService(repo, images, cache, nil, zap.NewNop())
	return svc, repo, cache, dir
}

func sampleInput() MenuItemInput {
	return MenuItemInput{
		Name:     "Spring Roll",
		Category: "Appetizer",
		Price:    7.99,
	}
}

func TestMenuService_CreateStoresImageAndInvalidatesCache(t *testing.T) {
	svc, _, cache, dir := newTestMenuService(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, sampleInput(), "spring_roll.jpg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	require.Equal(t, "images/spring_roll.jpg", item.Image)
	require.NotZero(t, item.ID)

	data, err := os.ReadFile(filepath.Join(dir, "images", "spring_roll.jpg"))
	require.NoError(t, err)
	require.Equal(t, "jpeg-bytes", string(data))
	require.Equal(t, 1, cache.invalidations)
}

func TestMenuService_ListUsesCache(t *testing.T) {
	svc, repo, _, _ := newTestMenuService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, sampleInput(), "a.jpg", strings.NewReader("x"))
	require.NoError(t, err)

	first, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, second, 1)

	// Second call is served from cache.
	require.Equal(t, 1, repo.lists)
}

func TestMenuService_UpdateReplacesImage(t *testing.T) {
	svc, _, cache, dir := newTestMenuService(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, sampleInput(), "old.jpg", strings.NewReader("old"))
	require.NoError(t, err)

	input := sampleInput()
	input.Name = "Samosa"
	updated, err := svc.Update(ctx, item.ID, input, "new.jpg", strings.NewReader("new"))
	require.NoError(t, err)
	require.Equal(t, "Samosa", updated.Name)
	require.Equal(t, "images/new.jpg", updated.Image)

	_, err = os.Stat(filepath.Join(dir, "images", "old.jpg"))
	require.True(t, os.IsNotExist(err), "old image should be removed")
	_, err = os.Stat(filepath.Join(dir, "images", "new.jpg"))
	require.NoError(t, err)
	require.Equal(t, 2, cache.invalidations)
}

func TestMenuService_UpdateKeepsImageWhenNoneUploaded(t *testing.T) {
	svc, _, _, dir := newTestMenuService(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, sampleInput(), "keep.jpg", strings.NewReader("x"))
	require.NoError(t, err)

	input := sampleInput()
	input.Price = 9.99
	updated, err := svc.Update(ctx, item.ID, input, "", nil)
	require.NoError(t, err)
	require.Equal(t, "images/keep.jpg", updated.Image)
	require.Equal(t, 9.99, updated.Price)

	_, err = os.Stat(filepath.Join(dir, "images", "keep.jpg"))
	require.NoError(t, err)
}

func TestMenuService_DeleteRemovesItemAndImage(t *testing.T) {
	svc, _, _, dir := newTestMenuService(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, sampleInput(), "gone.jpg", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, item.ID))

	_, err = svc.Get(ctx, item.ID)
	require.Error(t, err)
	require.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)

	_, err = os.Stat(filepath.Join(dir, "images", "gone.jpg"))
	require.True(t, os.IsNotExist(err))
}

func TestMenuService_GetUnknownIDIsNotFound(t *testing.T) {
	svc, _, _, _ := newTestMenuService(t)

	_, err := svc.Get(context.Background(), 42)
	require.Error(t, err)
	require.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
