// Package scenario implements the session-scoped store of saved cost
// scenarios: an insertion-ordered list supporting bulk removal by name and
// CSV export.
package scenario

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/urbancost/parkcost/internal/model"
	"github.com/urbancost/parkcost/pkg/constants"
	"github.com/urbancost/parkcost/pkg/mathutil"
)

// Scenario is one saved snapshot: the breakdown results flattened alongside
// the rate inputs that produced them.
type Scenario struct {
	Name                   string  `json:"name"`
	ParkingType            string  `json:"parkingType"`
	TotalCost              float64 `json:"totalCost"`
	CostPerSpace           float64 `json:"costPerSpace"`
	CostPerYear            float64 `json:"costPerYear"`
	TotalLandCost          float64 `json:"totalLandCost"`
	TotalConstructionCost  float64 `json:"totalConstructionCost"`
	NPVMaintenanceCost     float64 `json:"npvMaintenanceCost"`
	TotalOpportunityCost   float64 `json:"totalOpportunityCost"`
	TotalEnvironmentalCost float64 `json:"totalEnvironmentalCost"`
	InflationRatePct       float64 `json:"inflationRatePct"`
	DiscountRatePct        float64 `json:"discountRatePct"`
	OccupancyRatePct       float64 `json:"occupancyRatePct"`
	Timestamp              string  `json:"timestamp"`
}

// csvHeader fixes the export column order.
var csvHeader = []string{
	"Scenario",
	"Type",
	"Total Cost (NPV)",
	"Cost per Space",
	"Cost per Year",
	"Land Cost",
	"Construction Cost",
	"Maintenance Cost (NPV)",
	"Opportunity Cost",
	"Environmental Cost",
	"Inflation Rate",
	"Discount Rate",
	"Occupancy Rate",
	"Timestamp",
}

// Store owns the scenario list for one interactive session. It is
// constructed empty, grows and shrinks through Save and Remove, and is
// discarded with the session; nothing is persisted. The store is not safe
// for concurrent use and must be externally synchronized if shared.
type Store struct {
	scenarios []Scenario
	now       func() time.Time
}

// NewStore constructs an empty session store.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// NewStoreWithClock constructs a store with an injectable clock for tests.
func NewStoreWithClock(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{now: now}
}

// Save appends a snapshot of the given breakdown under name, stamped with
// the current time. Names are not required to be unique; saving the same
// name twice creates two entries.
func (s *Store) Save(name, parkingType string, breakdown model.CostBreakdown, params model.CostParameters) {
	s.scenarios = append(s.scenarios, Scenario{
		Name:                   name,
		ParkingType:            parkingType,
		TotalCost:              breakdown.TotalCost,
		CostPerSpace:           breakdown.CostPerSpace,
		CostPerYear:            breakdown.CostPerYear,
		TotalLandCost:          breakdown.TotalLandCost,
		TotalConstructionCost:  breakdown.TotalConstructionCost,
		NPVMaintenanceCost:     breakdown.NPVMaintenanceCost,
		TotalOpportunityCost:   breakdown.TotalOpportunityCost,
		TotalEnvironmentalCost: breakdown.TotalEnvironmentalCost,
		InflationRatePct:       params.InflationRatePct,
		DiscountRatePct:        params.DiscountRatePct,
		OccupancyRatePct:       params.OccupancyRatePct,
		Timestamp:              s.now().Format(constants.TimestampLayout),
	})
}

// Remove deletes every scenario whose name appears in names. Because names
// are not unique, all entries sharing a removed name are deleted.
func (s *Store) Remove(names []string) {
	if len(names) == 0 || len(s.scenarios) == 0 {
		return
	}
	doomed := make(map[string]struct{}, len(names))
	for _, name := range names {
		doomed[name] = struct{}{}
	}

	kept := s.scenarios[:0]
	for _, scenario := range s.scenarios {
		if _, ok := doomed[scenario.Name]; !ok {
			kept = append(kept, scenario)
		}
	}
	s.scenarios = kept
}

// List returns the saved scenarios in insertion order. The returned slice is
// a copy; mutating it does not affect the store.
func (s *Store) List() []Scenario {
	return append([]Scenario(nil), s.scenarios...)
}

// Len returns the number of saved scenarios.
func (s *Store) Len() int {
	return len(s.scenarios)
}

// ExportCSV serializes the current list as CSV with a fixed header row and
// one row per scenario. An empty store exports the header alone.
func (s *Store) ExportCSV() ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, scenario := range s.scenarios {
		record := []string{
			scenario.Name,
			scenario.ParkingType,
			formatAmount(scenario.TotalCost),
			formatAmount(scenario.CostPerSpace),
			formatAmount(scenario.CostPerYear),
			formatAmount(scenario.TotalLandCost),
			formatAmount(scenario.TotalConstructionCost),
			formatAmount(scenario.NPVMaintenanceCost),
			formatAmount(scenario.TotalOpportunityCost),
			formatAmount(scenario.TotalEnvironmentalCost),
			formatAmount(scenario.InflationRatePct),
			formatAmount(scenario.DiscountRatePct),
			formatAmount(scenario.OccupancyRatePct),
			scenario.Timestamp,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row for %q: %w", scenario.Name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(mathutil.Round(value), 'f', 2, 64)
}
