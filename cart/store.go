// Package cart holds the client-side cart aggregate: the ordered line items
// for one shopping session, their derived totals, and the snapshot
// persistence that lets the cart survive a restart. The aggregate never talks
// to the backend cart or order services; it is a local, optimistic cache of
// intent.
package cart

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/CSINCE90/retail-project/models"
	"github.com/CSINCE90/retail-project/money"
)

// Store is the single live cart instance for a running application. All
// mutations run under its lock and are each their own atomic unit; the
// in-memory state is authoritative and the snapshot write after every
// mutation is best-effort.
type Store struct {
	mu    sync.Mutex
	state models.Cart

	repo      Repository
	formatter *money.Formatter
	logger    *zap.Logger
}

// NewStore builds a store rehydrated from the repository snapshot, falling
// back to an empty cart when the snapshot is absent, malformed or unreadable.
// A nil repository gives a purely in-memory cart.
func NewStore(ctx context.Context, repo Repository, formatter *money.Formatter, logger *zap.Logger) *Store {
	s := &Store{
		repo:      repo,
		formatter: formatter,
		logger:    logger,
	}
	s.state = models.Cart{
		Items:             []models.LineItem{},
		SubtotalFormatted: formatter.Zero(),
	}

	if repo == nil {
		return s
	}

	snapshot, err := repo.Load(ctx)
	switch {
	case err == nil:
		s.state = *snapshot
		if s.state.Items == nil {
			s.state.Items = []models.LineItem{}
		}
	case errors.Is(err, ErrNoSnapshot):
		// First session, nothing to restore.
	default:
		logger.Warn("Starting with empty cart, snapshot unreadable", zap.Error(err))
	}

	return s
}

// AddItem merges the product into the cart: an existing line has its quantity
// incremented (and its attribute selection overwritten when attrs is
// supplied), a new product is appended at the end. The quantity is taken as
// given; callers are expected to pass positive counts, and stock ceilings are
// deliberately not enforced here.
func (s *Store) AddItem(ctx context.Context, product models.ProductSummary, quantity int64, attrs map[string]string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.apply(ctx, addLine(s.state.Items, product, quantity, attrs))
	return s.state.Clone()
}

// RemoveItem drops the line for the given product. Removing an absent product
// is a no-op that still recomputes and persists.
func (s *Store) RemoveItem(ctx context.Context, productID int64) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.apply(ctx, removeLine(s.state.Items, productID))
	return s.state.Clone()
}

// UpdateQuantity sets the absolute quantity of an existing line. A quantity
// of zero or less removes the line; an unknown product is left alone.
func (s *Store) UpdateQuantity(ctx context.Context, productID, quantity int64) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.apply(ctx, setLineQuantity(s.state.Items, productID, quantity))
	return s.state.Clone()
}

// Clear resets the cart to the empty state and persists it.
func (s *Store) Clear(ctx context.Context) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.apply(ctx, []models.LineItem{})
	return s.state.Clone()
}

// ItemQuantity returns the quantity of the matching line, or 0 if the product
// is not in the cart. Read-only, no side effects.
func (s *Store) ItemQuantity(productID int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return lineQuantity(s.state.Items, productID)
}

// Snapshot returns a deep copy of the current cart state.
func (s *Store) Snapshot() models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Clone()
}

// apply installs the next item list, recomputes the derived totals from it
// and writes the snapshot. Callers must hold the lock.
func (s *Store) apply(ctx context.Context, items []models.LineItem) {
	totalItems, subtotalCents := totals(items)
	s.state = models.Cart{
		Items:             items,
		TotalItems:        totalItems,
		SubtotalCents:     subtotalCents,
		SubtotalFormatted: s.formatter.Format(subtotalCents),
	}
	s.persist(ctx)
}

// persist is fire-and-forget: a failed write degrades durability but never
// rolls back the in-memory mutation.
func (s *Store) persist(ctx context.Context) {
	if s.repo == nil {
		return
	}
	if err := s.repo.Save(ctx, &s.state); err != nil {
		s.logger.Warn("Cart snapshot not persisted", zap.Error(err))
	}
}
