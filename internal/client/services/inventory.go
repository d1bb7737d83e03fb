package services

import (
	"context"
	"math"
	"slices"
	"sync"

	"github.com/astroerik-coder/agrostock/internal/client/models"
	"github.com/astroerik-coder/agrostock/internal/client/repositories/inventory"
	"github.com/astroerik-coder/agrostock/internal/common"
	"github.com/astroerik-coder/agrostock/internal/logging"
	"github.com/rs/xid"
)

const (
	msgCategoryRequired = "La categoría es obligatoria"
	msgItemFields       = "Nombre, cantidad, unidad y estado son obligatorios"
)

// InventoryService defines the per-category inventory operations.
//
// Contract:
//   - Categories: fixed categories first, then any other stored category.
//   - LoadCategory: the stored items, or the seed when nothing is stored yet.
//   - AddItem: validate, assign an id and append; items are never removed.
//
// All methods must honor context cancellation/timeouts.
type InventoryService interface {
	// Categories returns the fixed categories in display order followed by
	// any other category that has stored items.
	Categories(ctx context.Context) ([]string, error)
	LoadCategory(ctx context.Context, category string) ([]models.Item, error)
	AddItem(ctx context.Context, category string, in models.NewItem) (*models.Item, error)
}

type inventoryService struct {
	repo  inventory.Repository
	log   logging.Logger
	newID func() string

	mu sync.Mutex
}

// NewInventoryService constructs an InventoryService over repo. Writes are
// serialised so concurrent AddItem calls do not lose items.
func NewInventoryService(repo inventory.Repository, log logging.Logger) InventoryService {
	return &inventoryService{
		repo:  repo,
		log:   log.With("component", "inventory"),
		newID: func() string { return xid.New().String() },
	}
}

func (s *inventoryService) Categories(ctx context.Context) ([]string, error) {
	out := models.Categories()

	stored, err := s.repo.Stored(ctx)
	if err != nil {
		return nil, common.Storage("failed to list categories", err)
	}
	for _, c := range stored {
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out, nil
}

// LoadCategory returns the stored items of category, or its seed items if
// the category was never written.
func (s *inventoryService) LoadCategory(ctx context.Context, category string) ([]models.Item, error) {
	if category == "" {
		return nil, common.Validation("category", msgCategoryRequired)
	}

	items, found, err := s.repo.Load(ctx, category)
	if err != nil {
		return nil, common.Storage("failed to load category", err)
	}
	if !found {
		return models.SeedItems(category), nil
	}
	return items, nil
}

// AddItem appends a new item to category. The first write of a category
// persists its seed items ahead of the new one.
func (s *inventoryService) AddItem(ctx context.Context, category string, in models.NewItem) (*models.Item, error) {
	if category == "" {
		return nil, common.Validation("category", msgCategoryRequired)
	}
	if in.Name == "" || in.Unit == "" || in.Status == "" || math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) {
		return nil, common.Validation("", msgItemFields)
	}

	item := models.Item{
		ID:     s.newID(),
		Name:   in.Name,
		Amount: in.Amount,
		Unit:   in.Unit,
		Status: in.Status,
		Icon:   models.DefaultIcon,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.repo.Update(ctx, category, func(items []models.Item, found bool) ([]models.Item, error) {
		if !found {
			items = models.SeedItems(category)
		}
		return append(items, item), nil
	})
	if err != nil {
		return nil, common.Storage("failed to save item", err)
	}

	s.log.Info(ctx, "item added", "category", category, "id", item.ID, "name", item.Name)
	return &item, nil
}
