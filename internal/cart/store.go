package cart

import (
	"context"
	"sync"

	"github.com/yqlstore/storefront/pkg/logger"
	"github.com/yqlstore/storefront/pkg/models"
)

// Line is one product entry in the cart. Display fields are snapshotted from
// the product record at add time and never refreshed from the catalog.
type Line struct {
	ProductID      string
	ModelName      string
	ImageURL       string
	Condition      string
	UnitPriceCents int
	Quantity       int
	LineTotalCents int
}

// Snapshot is an immutable view of the cart handed to subscribers and
// persisted by the snapshot repository.
type Snapshot struct {
	Lines           []Line
	TotalQuantity   int
	TotalPriceCents int
}

// Subscriber receives the new snapshot after every mutation.
type Subscriber func(Snapshot)

// Store holds the session's cart lines. It is an explicit instance, created
// at app start and shared by reference across UI surfaces; all operations are
// synchronous and safe for concurrent callers.
type Store struct {
	mu    sync.Mutex
	lines []Line
	subs  []Subscriber

	repo   Repository
	logger *logger.Logger
}

// Option configures optional store behavior.
type Option func(*Store)

// WithSnapshotRepository persists every mutation so a later session can
// restore the cart. Persistence failures never fail the mutation.
func WithSnapshotRepository(repo Repository) Option {
	return func(s *Store) {
		s.repo = repo
	}
}

// WithLogger attaches a logger for snapshot persistence failures.
func WithLogger(logg *logger.Logger) Option {
	return func(s *Store) {
		s.logger = logg
	}
}

// NewStore creates an empty cart.
func NewStore(opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Subscribe registers a callback invoked with the new snapshot after every
// mutation.
func (s *Store) Subscribe(fn Subscriber) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// AddItem inserts a new line with quantity 1, or increments the quantity of
// the existing line for this product. After the call exactly one line exists
// for the product id and its total is recomputed from unit price times
// quantity.
func (s *Store) AddItem(ctx context.Context, product models.Product) {
	s.mu.Lock()
	idx := s.findLocked(product.ID)
	if idx == -1 {
		s.lines = append(s.lines, Line{
			ProductID:      product.ID,
			ModelName:      product.ModelName,
			ImageURL:       product.ImageURL,
			Condition:      product.Condition,
			UnitPriceCents: product.PriceCents(),
			Quantity:       1,
			LineTotalCents: product.PriceCents(),
		})
	} else {
		s.lines[idx].Quantity++
		s.lines[idx].LineTotalCents = s.lines[idx].UnitPriceCents * s.lines[idx].Quantity
	}
	s.afterMutationLocked(ctx)
}

// DeleteItem removes the line for the product id; absent ids are a no-op.
func (s *Store) DeleteItem(ctx context.Context, productID string) {
	s.mu.Lock()
	idx := s.findLocked(productID)
	if idx == -1 {
		s.mu.Unlock()
		return
	}
	s.removeLocked(idx)
	s.afterMutationLocked(ctx)
}

// IncreaseQuantity increments the line's quantity. Absent ids are a silent
// no-op so UI races (delete racing an increment) cannot fault the store.
func (s *Store) IncreaseQuantity(ctx context.Context, productID string) {
	s.mu.Lock()
	idx := s.findLocked(productID)
	if idx == -1 {
		s.mu.Unlock()
		return
	}
	s.lines[idx].Quantity++
	s.lines[idx].LineTotalCents = s.lines[idx].UnitPriceCents * s.lines[idx].Quantity
	s.afterMutationLocked(ctx)
}

// DecreaseQuantity decrements the line's quantity; a line that would reach
// zero is removed entirely. Absent ids are a silent no-op.
func (s *Store) DecreaseQuantity(ctx context.Context, productID string) {
	s.mu.Lock()
	idx := s.findLocked(productID)
	if idx == -1 {
		s.mu.Unlock()
		return
	}
	if s.lines[idx].Quantity == 1 {
		s.removeLocked(idx)
	} else {
		s.lines[idx].Quantity--
		s.lines[idx].LineTotalCents = s.lines[idx].UnitPriceCents * s.lines[idx].Quantity
	}
	s.afterMutationLocked(ctx)
}

// Clear empties the cart unconditionally.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.lines = nil
	s.afterMutationLocked(ctx)
}

// Restore replaces the cart with the persisted snapshot. Lines that violate
// the store's invariants are dropped rather than restored.
func (s *Store) Restore(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	loaded, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	restored := make([]Line, 0, len(loaded))
	seen := make(map[string]struct{}, len(loaded))
	for _, line := range loaded {
		if line.ProductID == "" || line.Quantity < 1 || line.UnitPriceCents < 0 {
			continue
		}
		if _, dup := seen[line.ProductID]; dup {
			continue
		}
		seen[line.ProductID] = struct{}{}
		line.LineTotalCents = line.UnitPriceCents * line.Quantity
		restored = append(restored, line)
	}

	s.mu.Lock()
	s.lines = restored
	snapshot := s.snapshotLocked()
	subs := make([]Subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
	return nil
}

// Snapshot returns a copy of the current cart state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// TotalQuantity is the sum of all line quantities.
func (s *Store) TotalQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// TotalPriceCents is the sum of all line totals.
func (s *Store) TotalPriceCents() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, line := range s.lines {
		total += line.LineTotalCents
	}
	return total
}

// QuantityOf returns the quantity in the cart for the product id, zero when
// absent.
func (s *Store) QuantityOf(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.findLocked(productID); idx != -1 {
		return s.lines[idx].Quantity
	}
	return 0
}

func (s *Store) findLocked(productID string) int {
	for i, line := range s.lines {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) removeLocked(idx int) {
	s.lines = append(s.lines[:idx], s.lines[idx+1:]...)
}

// afterMutationLocked persists and broadcasts the new snapshot. It takes
// ownership of the held lock and releases it before invoking subscribers so a
// subscriber may call back into the store.
func (s *Store) afterMutationLocked(ctx context.Context) {
	snapshot := s.snapshotLocked()
	subs := make([]Subscriber, len(s.subs))
	copy(subs, s.subs)
	repo := s.repo
	s.mu.Unlock()

	if repo != nil {
		if err := repo.Replace(ctx, snapshot.Lines); err != nil && s.logger != nil {
			s.logger.Error(ctx, "persist cart snapshot", err)
		}
	}
	for _, fn := range subs {
		fn(snapshot)
	}
}

func (s *Store) snapshotLocked() Snapshot {
	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)

	snapshot := Snapshot{Lines: lines}
	for _, line := range lines {
		snapshot.TotalQuantity += line.Quantity
		snapshot.TotalPriceCents += line.LineTotalCents
	}
	return snapshot
}
