package usecase

import (
	"context"

	"rentdesk/internal/pkg/errs"
	"rentdesk/internal/usecase/shared"
)

// ReportSummary is derived on demand from current order, equipment and
// expense snapshots. It holds no state of its own.
type ReportSummary struct {
	TotalSales       float64
	Collected        float64
	Outstanding      float64
	TotalExpenses    float64
	NetRevenue       float64
	OrderCount       int
	OrdersByStatus   map[string]int
	EquipmentByState map[string]int
	CategoryCounts   map[string]int
}

type ReportsUseCase interface {
	Summary(ctx context.Context) (*ReportSummary, error)
}

type reportsUseCaseImpl struct {
	store shared.Store
}

func NewReportsUseCase(store shared.Store) ReportsUseCase {
	return &reportsUseCaseImpl{store: store}
}

// Summary reads all collections inside one snapshot so the sales and
// expense figures agree with each other.
func (u *reportsUseCaseImpl) Summary(ctx context.Context) (*ReportSummary, error) {
	summary := &ReportSummary{
		OrdersByStatus:   make(map[string]int),
		EquipmentByState: make(map[string]int),
		CategoryCounts:   make(map[string]int),
	}

	err := u.store.View(ctx, func(ctx context.Context, tx shared.Tx) error {
		orders, err := tx.Orders().List(ctx)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		for _, o := range orders {
			summary.TotalSales += o.TotalAmount + o.LateFee + o.DamageFee
			summary.Collected += o.PaidAmount
			summary.OrdersByStatus[o.Status.String()]++
		}
		summary.OrderCount = len(orders)
		summary.Outstanding = summary.TotalSales - summary.Collected

		expenses, err := tx.Expenses().List(ctx)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		for _, e := range expenses {
			summary.TotalExpenses += e.Amount
		}
		summary.NetRevenue = summary.TotalSales - summary.TotalExpenses

		items, err := tx.Equipment().List(ctx)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		for _, item := range items {
			summary.EquipmentByState[item.Status.String()]++
			if item.Category != "" {
				summary.CategoryCounts[item.Category]++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}
