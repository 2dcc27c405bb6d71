package reconciling

import (
	"context"
	"strings"

	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/database/postgres"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/repository"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/domain"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/pkg/log"
)

// Reconciler resolves or assigns surrogate keys for the customer, product and
// store dimensions and upserts their descriptive attributes.
type Reconciler interface {
	Reconcile(ctx context.Context, q postgres.Queryer, snap domain.SourceSnapshot) (*domain.KeyMappings, error)
}

type Service struct {
	dimensionRepo repository.DimensionRepository
}

func NewService(dimensionRepo repository.DimensionRepository) *Service {
	return &Service{dimensionRepo: dimensionRepo}
}

// Reconcile is idempotent: feeding it the same snapshot twice leaves row
// counts and attribute values unchanged. Business keys are trimmed of
// surrounding whitespace before validation, dedup and mapping, so "C001" and
// " C001" always resolve to the same dimension row. A record without its
// business key fails the whole call with a DataIntegrityError — a single
// record is never partially applied. Within-batch duplicates of a business key collapse to
// the last occurrence before hitting the database (last-write-wins, and
// Postgres refuses an upsert that touches the same row twice anyway).
func (s *Service) Reconcile(ctx context.Context, q postgres.Queryer, snap domain.SourceSnapshot) (*domain.KeyMappings, error) {
	customers, err := dedupeCustomers(snap.Customers)
	if err != nil {
		return nil, err
	}
	products, err := dedupeProducts(snap.Products)
	if err != nil {
		return nil, err
	}
	stores, err := dedupeStores(snap.Stores)
	if err != nil {
		return nil, err
	}

	// The three dimensions touch disjoint tables; the fixed order here is
	// only for deterministic logs, not a data dependency.
	customerKeys, err := s.dimensionRepo.UpsertCustomers(ctx, q, customers)
	if err != nil {
		return nil, err
	}

	productKeys, productPrices, err := s.dimensionRepo.UpsertProducts(ctx, q, products)
	if err != nil {
		return nil, err
	}

	storeKeys, err := s.dimensionRepo.UpsertStores(ctx, q, stores)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"customers": len(customerKeys),
		"products":  len(productKeys),
		"stores":    len(storeKeys),
	}).Debug("dimensions reconciled")

	return &domain.KeyMappings{
		CustomerKeys:  customerKeys,
		ProductKeys:   productKeys,
		StoreKeys:     storeKeys,
		ProductPrices: productPrices,
	}, nil
}

func dedupeCustomers(customers []domain.Customer) ([]domain.Customer, error) {
	out := make([]domain.Customer, 0, len(customers))
	index := make(map[string]int, len(customers))

	for _, c := range customers {
		c.CustomerID = strings.TrimSpace(c.CustomerID)
		if c.CustomerID == "" {
			return nil, &DataIntegrityError{Entity: "customer", Err: ErrMissingBusinessKey}
		}
		if i, seen := index[c.CustomerID]; seen {
			out[i] = c
			continue
		}
		index[c.CustomerID] = len(out)
		out = append(out, c)
	}

	return out, nil
}

func dedupeProducts(products []domain.Product) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(products))
	index := make(map[string]int, len(products))

	for _, p := range products {
		p.ProductID = strings.TrimSpace(p.ProductID)
		if p.ProductID == "" {
			return nil, &DataIntegrityError{Entity: "product", Err: ErrMissingBusinessKey}
		}
		if i, seen := index[p.ProductID]; seen {
			out[i] = p
			continue
		}
		index[p.ProductID] = len(out)
		out = append(out, p)
	}

	return out, nil
}

func dedupeStores(stores []domain.Store) ([]domain.Store, error) {
	out := make([]domain.Store, 0, len(stores))
	index := make(map[string]int, len(stores))

	for _, s := range stores {
		s.StoreID = strings.TrimSpace(s.StoreID)
		if s.StoreID == "" {
			return nil, &DataIntegrityError{Entity: "store", Err: ErrMissingBusinessKey}
		}
		if i, seen := index[s.StoreID]; seen {
			out[i] = s
			continue
		}
		index[s.StoreID] = len(out)
		out = append(out, s)
	}

	return out, nil
}
