package merging

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/database/postgres"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/repository"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/domain"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/usecases/reconciling"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/pkg/log"
)

// Policy decides what a referential-integrity violation does to the batch.
type Policy string

const (
	// PolicyAbort fails the whole run; the transaction rolls everything back.
	// Nothing merges, nothing is lost silently.
	PolicyAbort Policy = "abort"
	// PolicyQuarantine flags the offending staged rows and merges the rest.
	// The batch completes with the violations reported, not merged.
	PolicyQuarantine Policy = "quarantine"
)

// ParsePolicy maps the configuration string onto a Policy, defaulting to
// abort so a typo never opts into silent row loss.
func ParsePolicy(s string) Policy {
	if Policy(strings.ToLower(strings.TrimSpace(s))) == PolicyQuarantine {
		return PolicyQuarantine
	}
	return PolicyAbort
}

// Merger aggregates a staged batch and accumulates it into the fact table.
type Merger interface {
	Merge(ctx context.Context, q postgres.Queryer, staged []domain.StagedSale, keys *domain.KeyMappings) (*domain.MergeSummary, error)
}

type Service struct {
	factRepo    repository.FactSalesRepository
	stagingRepo repository.StagingRepository
	policy      Policy
}

func NewService(factRepo repository.FactSalesRepository, stagingRepo repository.StagingRepository, policy Policy) *Service {
	return &Service{
		factRepo:    factRepo,
		stagingRepo: stagingRepo,
		policy:      policy,
	}
}

type naturalKey struct {
	date       string
	customerID string
	productID  string
	storeID    string
}

// Merge groups the staged sales by natural key, sums quantities, prices each
// group at the product's current reconciled unit price, resolves surrogate
// keys and adds the result onto the fact table. The amount deliberately uses
// the price at merge time, not at transaction time, matching the established
// warehouse behavior; repricing a product therefore changes how future
// merges value old-dated sales.
//
// Merge is purely additive and NOT idempotent against repeated input —
// feeding the same staged batch twice would double totals. Exactly-once
// consumption is the orchestrator's responsibility.
func (s *Service) Merge(ctx context.Context, q postgres.Queryer, staged []domain.StagedSale, keys *domain.KeyMappings) (*domain.MergeSummary, error) {
	summary := &domain.MergeSummary{}
	if len(staged) == 0 {
		return summary, nil
	}

	groups := make(map[naturalKey]int64, len(staged))
	quarantinedIDs := make([]int64, 0)
	merged := 0

	for _, sale := range staged {
		if violation := s.unresolved(sale, keys); violation != nil {
			if s.policy == PolicyAbort {
				return nil, violation
			}
			quarantinedIDs = append(quarantinedIDs, sale.ID)
			continue
		}

		key := naturalKey{
			date:       sale.SaleDate.Format(time.DateOnly),
			customerID: sale.CustomerID,
			productID:  sale.ProductID,
			storeID:    sale.StoreID,
		}
		groups[key] += int64(sale.Quantity)
		merged++
	}

	deltas := make([]domain.FactDelta, 0, len(groups))
	for key, quantity := range groups {
		price := keys.ProductPrices[key.productID]
		deltas = append(deltas, domain.FactDelta{
			Key: domain.FactKey{
				DateKey:     keys.DateKeys[key.date],
				CustomerKey: keys.CustomerKeys[key.customerID],
				ProductKey:  keys.ProductKeys[key.productID],
				StoreKey:    keys.StoreKeys[key.storeID],
			},
			Quantity:    quantity,
			TotalAmount: float64(quantity) * price,
		})
	}

	// Map iteration order is random; sort for deterministic statements.
	sort.Slice(deltas, func(i, j int) bool {
		a, b := deltas[i].Key, deltas[j].Key
		if a.DateKey != b.DateKey {
			return a.DateKey < b.DateKey
		}
		if a.CustomerKey != b.CustomerKey {
			return a.CustomerKey < b.CustomerKey
		}
		if a.ProductKey != b.ProductKey {
			return a.ProductKey < b.ProductKey
		}
		return a.StoreKey < b.StoreKey
	})

	if err := s.factRepo.Accumulate(ctx, q, deltas); err != nil {
		return nil, err
	}

	if len(quarantinedIDs) > 0 {
		if _, err := s.stagingRepo.MarkQuarantined(ctx, q, quarantinedIDs); err != nil {
			return nil, err
		}
		log.ForContext(ctx).WithField("rows", len(quarantinedIDs)).
			Warn("staged sales quarantined for unresolved dimension keys")
	}

	for _, d := range deltas {
		summary.Affected = append(summary.Affected, d.Key)
	}
	summary.MergedRows = merged
	summary.QuarantinedRows = len(quarantinedIDs)
	summary.QuarantinedIDs = quarantinedIDs

	return summary, nil
}

// unresolved reports the first dimension reference the mappings cannot cover.
func (s *Service) unresolved(sale domain.StagedSale, keys *domain.KeyMappings) error {
	if _, ok := keys.CustomerKeys[sale.CustomerID]; !ok {
		return &reconciling.DataIntegrityError{
			Entity: "customer", BusinessKey: sale.CustomerID, Err: reconciling.ErrUnknownBusinessKey,
		}
	}
	if _, ok := keys.ProductKeys[sale.ProductID]; !ok {
		return &reconciling.DataIntegrityError{
			Entity: "product", BusinessKey: sale.ProductID, Err: reconciling.ErrUnknownBusinessKey,
		}
	}
	if _, ok := keys.StoreKeys[sale.StoreID]; !ok {
		return &reconciling.DataIntegrityError{
			Entity: "store", BusinessKey: sale.StoreID, Err: reconciling.ErrUnknownBusinessKey,
		}
	}
	if _, ok := keys.DateKeys[sale.SaleDate.Format(time.DateOnly)]; !ok {
		return &reconciling.DataIntegrityError{
			Entity: "date", BusinessKey: sale.SaleDate.Format(time.DateOnly), Err: reconciling.ErrUnknownBusinessKey,
		}
	}
	return nil
}
