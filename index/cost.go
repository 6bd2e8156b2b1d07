package index

import "github.com/arloliu/blockfreq/errs"

// DefaultQueriesPerBlock is the assumed average number of predicate queries
// issued against one block over its lifetime.
//
// This is an empirical tuning constant, not a derived quantity. Deployments
// with different query mixes should override it with WithQueriesPerBlock;
// the cost sweep example under examples/ shows how to calibrate it.
const DefaultQueriesPerBlock = 550.0

// costScaleBytes converts the per-query expected saving into a byte budget
// in kilobyte units.
const costScaleBytes = 1024.0

// CostConfig carries the two cost units the surrounding storage engine
// configures. Both are relative units; only their ratio matters.
type CostConfig struct {
	// AccessCost is the cost of one scan access over the block.
	AccessCost float64
	// StorageCost is the cost of storing one unit of index data.
	StorageCost float64
}

// CostModel decides whether an encoded index is worth persisting for a block.
//
// The decision rule is a linear heuristic, not an exact economic model:
//
//	break_even_bytes = queries_per_block * (access_cost / storage_cost) * 1024
//
// A buffer larger than the break-even budget is rejected. Treat the scaling
// as a policy knob to calibrate, not as ground truth.
type CostModel struct {
	accessCost      float64
	storageCost     float64
	queriesPerBlock float64
}

// NewCostModel creates a cost model from the configured cost units and the
// assumed per-block query rate.
//
// Returns errs.ErrInvalidCostUnit if either cost unit is not positive, or
// errs.ErrInvalidQueryRate if queriesPerBlock is not positive.
func NewCostModel(cfg CostConfig, queriesPerBlock float64) (CostModel, error) {
	if cfg.AccessCost <= 0 || cfg.StorageCost <= 0 {
		return CostModel{}, errs.ErrInvalidCostUnit
	}
	if queriesPerBlock <= 0 {
		return CostModel{}, errs.ErrInvalidQueryRate
	}

	return CostModel{
		accessCost:      cfg.AccessCost,
		storageCost:     cfg.StorageCost,
		queriesPerBlock: queriesPerBlock,
	}, nil
}

// CostRatio returns the access-to-storage cost ratio.
func (m CostModel) CostRatio() float64 {
	return m.accessCost / m.storageCost
}

// QueriesPerBlock returns the assumed per-block query rate.
func (m CostModel) QueriesPerBlock() float64 {
	return m.queriesPerBlock
}

// BreakEvenBytes returns the storage budget in bytes below which an index is
// considered worth persisting.
func (m CostModel) BreakEvenBytes() float64 {
	return m.queriesPerBlock * m.CostRatio() * costScaleBytes
}

// Accept reports whether an encoded index of sizeBytes is within the
// break-even budget.
func (m CostModel) Accept(sizeBytes int) bool {
	return float64(sizeBytes) <= m.BreakEvenBytes()
}
