package usecase_test

import (
	"context"
	"testing"
	"time"

	"rentdesk/internal/domain/billing"
	"rentdesk/internal/domain/customer"
	"rentdesk/internal/domain/equipment"
	"rentdesk/internal/domain/order"
	"rentdesk/internal/domain/settings"
	"rentdesk/internal/infra/memstore"
	"rentdesk/internal/pkg/clock"
	"rentdesk/internal/usecase"
	"rentdesk/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type engineFixture struct {
	store  *memstore.Store
	clk    *clock.MockClock
	orders usecase.OrderUseCase
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	store := memstore.NewStore(settings.Default(5))
	clk := clock.NewMockClock(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	return &engineFixture{
		store:  store,
		clk:    clk,
		orders: usecase.NewOrderUseCase(store, clk),
	}
}

func (f *engineFixture) seedCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer("Acme Events", "050-1234567", "ops@acme.test", "Pier 4", "TRN-100200")
	require.NoError(t, err)
	require.NoError(t, f.store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Customers().Create(ctx, c)
	}))
	return c
}

func (f *engineFixture) seedEquipment(t *testing.T, name string, price float64, total int) *equipment.Item {
	t.Helper()
	item, err := equipment.NewItem(name, "General", "", price, price*5, total, equipment.StatusNew)
	require.NoError(t, err)
	require.NoError(t, f.store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Equipment().Create(ctx, item)
	}))
	return item
}

func (f *engineFixture) equipmentByID(t *testing.T, id uuid.UUID) *equipment.Item {
	t.Helper()
	var found *equipment.Item
	require.NoError(t, f.store.View(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		item, err := tx.Equipment().FindByID(ctx, id)
		if err != nil {
			return err
		}
		found = item
		return nil
	}))
	return found
}

// checkStock asserts that every unit is accounted for: what is on the
// shelf plus what non-terminal orders still hold equals the pool size.
func (f *engineFixture) checkStock(t *testing.T, equipmentID uuid.UUID) {
	t.Helper()
	item := f.equipmentByID(t, equipmentID)

	reserved := 0
	orders, err := f.orders.List(context.Background())
	require.NoError(t, err)
	for _, o := range orders {
		if o.Status != order.StatusActive && o.Status != order.StatusPartiallyReturned {
			continue
		}
		for _, li := range o.Items {
			if li.EquipmentID == equipmentID {
				reserved += li.Remaining()
			}
		}
	}

	assert.Equal(t, item.TotalQuantity, item.AvailableQuantity+reserved,
		"stock conservation violated for %s", item.Name)
}

func checkBalance(t *testing.T, o *order.Order) {
	t.Helper()
	assert.InDelta(t, o.TotalAmount+o.LateFee+o.DamageFee-o.PaidAmount, o.Balance, 1e-9,
		"balance identity violated")
}

func percentDiscount(t *testing.T, value float64) billing.Discount {
	t.Helper()
	d, err := billing.NewDiscount(billing.DiscountPercentage, value)
	require.NoError(t, err)
	return d
}

func createStandardOrder(t *testing.T, f *engineFixture, cust *customer.Customer, item *equipment.Item) *order.Order {
	t.Helper()
	o, err := f.orders.Create(context.Background(), usecase.CreateOrderParams{
		CustomerID:    cust.ID,
		Items:         []usecase.OrderLineInput{{EquipmentID: item.ID, Quantity: 2}},
		StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
		Discount:      percentDiscount(t, 10),
		PaidAmount:    200,
		PaymentMethod: "Cash",
	})
	require.NoError(t, err)
	return o
}

func TestCreateActiveOrder(t *testing.T) {
	f := newEngineFixture(t)
	cust := f.seedCustomer(t)
	item := f.seedEquipment(t, "PA Speaker", 100, 5)

	o := createStandardOrder(t, f, cust, item)

	assert.Equal(t, order.StatusActive, o.Status)
	assert.InDelta(t, 600.0, o.Subtotal, 1e-9)
	assert.InDelta(t, 27.0, o.TaxAmount, 1e-9)
	assert.InDelta(t, 567.0, o.TotalAmount, 1e-9)
	assert.InDelta(t, 367.0, o.Balance, 1e-9)
	assert.Equal(t, "Acme Events", o.CustomerName)
	checkBalance(t, o)

	assert.Equal(t, 3, f.equipmentByID(t, item.ID).AvailableQuantity)
	f.checkStock(t, item.ID)
}

func TestCreateOrderValidation(t *testing.T) {
	f := newEngineFixture(t)
	cust := f.seedCustomer(t)
	item := f.seedEquipment(t, "PA Speaker", 100, 5)

	t.Run("empty line items", func(t *testing.T) {
		_, err := f.orders.Create(context.Background(), usecase.CreateOrderParams{
			CustomerID: cust.ID,
			StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		})
		require.ErrorIs(t, err, order.ErrNoLineItems)
	})

	t.Run("unknown customer", func(t *testing.T) {
		_, err := f.orders.Create(context.Background(), usecase.CreateOrderParams{
			CustomerID: uuid.New(),
			Items:      []usecase.OrderLineInput{{EquipmentID: item.ID, Quantity: 1}},
			StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		})
		require.ErrorIs(t, err, usecase.ErrCustomerNotFound)
	})

	t.Run("negative payment", func(t *testing.T) {
		_, err := f.orders.Create(context.Background(), usecase.CreateOrderParams{
			CustomerID: cust.ID,
			Items:      []usecase.OrderLineInput{{EquipmentID: item.ID, Quantity: 1}},
			StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			PaidAmount: -50,
		})
		require.ErrorIs(t, err, order.ErrNegativePayment)
	})
}

func TestStockConflictRejectsWholeOrder(t *testing.T) {
	f := newEngineFixture(t)
	cust := f.seedCustomer(t)
	scarce := f.seedEquipment(t, "Fog Machine", 60, 1)
	plenty := f.seedEquipment(t, "Cable Drum", 10, 10)

	_, err := f.orders.Create(context.Background(), usecase.CreateOrderParams{
		CustomerID: cust.ID,
		Items: []usecase.OrderLineInput{
			{EquipmentID: plenty.ID, Quantity: 4},
			{EquipmentID: scarce.ID, Quantity: 3},
		},
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)

	var conflict *equipment.StockConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, scarce.ID, conflict.EquipmentID)
	assert.Equal(t, 2, conflict.Shortfall())

	// No partial reservation sticks.
	assert.Equal(t, 10, f.equipmentByID(t, plenty.ID).AvailableQuantity)
	assert.Equal(t, 1, f.equipmentByID(t, scarce.ID).AvailableQuantity)

	orders, err := f.orders.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestQuotationLifecycle(t *testing.T) {
	f := newEngineFixture(t)
	cust := f.seedCustomer(t)
	item := f.seedEquipment(t, "LED Wall", 400, 2)

	o, err := f.orders.Create(context.Background(), usecase.CreateOrderParams{
		CustomerID:  cust.ID,
		Items:       []usecase.OrderLineInput{{EquipmentID: item.ID, Quantity: 2}},
		StartDate:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
		Discount:    billing.NoDiscount(),
		AsQuotation: true,
	})
	require.NoError(t, err)
	assert.Equal(t, order.StatusQuotation, o.Status)
	assert.Equal(t, 2, f.equipmentByID(t, item.ID).AvailableQuantity, "quotation reserves nothing")

	converted, err := f.orders.ConvertQuotation(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusActive, converted.Status)
	assert.Equal(t, 0, f.equipmentByID(t, item.ID).AvailableQuantity)
	f.checkStock(t, item.ID)

	_, err = f.orders.ConvertQuotation(context.Background(), o.ID)
	require.ErrorIs(t, err, order.ErrNotQuotation)
}

func TestFullOnTimeReturn(t *testing.T) {
	f := newEngineFixture(t)
	cust := f.seedCustomer(t)
	item := f.seedEquipment(t, "PA Speaker", 100, 5)
	o := createStandardOrder(t, f, cust, item)

	f.clk.Set(time.Date(2024, 1, 4, 17, 0, 0, 0, time.UTC))
	returned, err := f.orders.ProcessReturn(context.Background(), o.ID, usecase.ReturnParams{
		Good: map[uuid.UUID]int{item.ID: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, order.StatusReturned, returned.Status)
	assert.InDelta(t, 0.0, returned.LateFee, 1e-9)
	assert.InDelta(t, 0.0, returned.DamageFee, 1e-9)
	assert.InDelta(t, 367.0, returned.Balance, 1e-9, "still owed after return")
	require.NotNil(t, returned.ReturnDate)
	assert.Equal(t, time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), *returned.ReturnDate)
	checkBalance(t, returned)

	assert.Equal(t, 5, f.equipmentByID(t, item.ID).AvailableQuantity)
	f.checkStock(t, item.ID)
}

func TestEarlyReturnProrates(t *testing.T) {
	f := newEngineFixture(t)
	cust := f.seedCustomer(t)
	item := f.seedEquipment(t, "PA Speaker", 100, 5)
	o := createStandardOrder(t, f, cust, item)

	f.clk.Set(time.Date(2024, 1, 2, 11, 0, 0, 0, time.UTC))
	returned, err := f.orders.ProcessReturn(context.Background(), o.ID, usecase.ReturnParams{
		Good: map[uuid.UUID]int{item.ID: 2},
	})
	require.NoError(t, err)

	assert.InDelta(t, 200.0, returned.Subtotal, 1e-9)
	assert.InDelta(t, 9.0, returned.TaxAmount, 1e-9)
	assert.InDelta(t, 189.0, returned.TotalAmount, 1e-9)
	assert.InDelta(t, -11.0, returned.Balance, 1e-9, "overpaid after proration")
	checkBalance(t, returned)
}

func TestLateReturnFee(t *testing.T) {
	f := newEngineFixture(t)
	cust := f.seedCustomer(t)
	item := f.seedEquipment(t, "PA Speaker", 100, 5)
	o := createStandardOrder(t, f, cust, item)

	f.clk.Set(time.Date(2024, 1, 7, 8, 0, 0, 0, time.UTC))

	t.Run("suggested fee from original total", func(t *testing.T) {
		returned, err := f.orders.ProcessReturn(context.Background(), o.ID, usecase.ReturnParams{
			Good: map[uuid.UUID]int{item.ID: 2},
		})
		require.NoError(t, err)

		// 3 days late at daily rate 567/3 = 189.
		assert.InDelta(t, 567.0, returned.LateFee, 1e-9)
		assert.InDelta(t, 567.0, returned.TotalAmount, 1e-9, "late return never reprices the rental")
		checkBalance(t, returned)
	})
}

func TestLateFeeOverride(t *testing.T) {
	f := newEngineFixture(t)
	cust := f.seedCustomer(t)
	item := f.seedEquipment(t, "PA Speaker", 100, 5)
	o := createStandardOrder(t, f, cust, item)

	f.clk.Set(time.Date(2024, 1, 7, 8, 0, 0, 0, time.UTC))
	manual := 100.0
	returned, err := f.orders.ProcessReturn(context.Background(), o.ID, usecase.ReturnParams{
		Good:    map[uuid.UUID]int{item.ID: 2},
		LateFee: &manual,
	})
	require.NoError(t, err)

	assert.InDelta(t, 100.0, returned.LateFee, 1e-9, "manual fee wins over the suggestion")
	checkBalance(t, returned)
}

func TestPartialReturnWithDamage(t *testing.T) {
	f := newEngineFixture(t)
	cust := f.seedCustomer(t)
	speaker := f.seedEquipment(t, "PA Speaker", 100, 5)
	mixer := f.seedEquipment(t, "Mixer", 80, 3)

	o, err := f.orders.Create(context.Background(), usecase.CreateOrderParams{
		CustomerID: cust.ID,
		Items: []usecase.OrderLineInput{
			{EquipmentID: speaker.ID, Quantity: 2},
			{EquipmentID: mixer.ID, Quantity: 1},
		},
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
		Discount:  billing.NoDiscount(),
	})
	require.NoError(t, err)

	f.clk.Set(time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC))
	returned, err := f.orders.ProcessReturn(context.Background(), o.ID, usecase.ReturnParams{
		Good:             map[uuid.UUID]int{speaker.ID: 1},
		ReplacementCosts: map[uuid.UUID]float64{speaker.ID: 150},
	})
	require.NoError(t, err)

	assert.Equal(t, order.StatusPartiallyReturned, returned.Status, "mixer still outstanding")

	line := returned.Line(speaker.ID)
	require.NotNil(t, line)
	assert.Equal(t, 1, line.QuantityReturnedGood)
	assert.Equal(t, 1, line.QuantityReturnedDamaged)
	assert.InDelta(t, 150.0, line.ReplacementCost, 1e-9)
	assert.InDelta(t, 150.0, returned.DamageFee, 1e-9)
	checkBalance(t, returned)

	item := f.equipmentByID(t, speaker.ID)
	assert.Equal(t, 4, item.AvailableQuantity)
	assert.Equal(t, 1, item.DamagedQuantity)
	assert.Equal(t, 4, item.TotalQuantity, "damaged unit leaves the pool")
	f.checkStock(t, speaker.ID)
	f.checkStock(t, mixer.ID)

	t.Run("second visit settles the rest", func(t *testing.T) {
		final, err := f.orders.ProcessReturn(context.Background(), o.ID, usecase.ReturnParams{
			Good: map[uuid.UUID]int{mixer.ID: 1},
		})
		require.NoError(t, err)
		assert.Equal(t, order.StatusReturned, final.Status)
		assert.InDelta(t, 150.0, final.DamageFee, 1e-9, "damage fee carries across visits")
		f.checkStock(t, mixer.ID)
	})
}

func TestReturnIdempotentOnSettledLines(t *testing.T) {
	f := newEngineFixture(t)
	cust := f.seedCustomer(t)
	item := f.seedEquipment(t, "PA Speaker", 100, 5)
	o := createStandardOrder(t, f, cust, item)

	f.clk.Set(time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC))
	first, err := f.orders.ProcessReturn(context.Background(), o.ID, usecase.ReturnParams{
		Good:             map[uuid.UUID]int{item.ID: 1},
		ReplacementCosts: map[uuid.UUID]float64{item.ID: 90},
	})
	require.NoError(t, err)
	assert.Equal(t, order.StatusReturned, first.Status)

	// A repeat visit for an already settled line changes nothing.
	_, err = f.orders.ProcessReturn(context.Background(), o.ID, usecase.ReturnParams{
		Good:             map[uuid.UUID]int{item.ID: 0},
		ReplacementCosts: map[uuid.UUID]float64{item.ID: 90},
	})
	require.ErrorIs(t, err, order.ErrNotReturnable)

	after := f.equipmentByID(t, item.ID)
	assert.Equal(t, 4, after.AvailableQuantity)
	assert.Equal(t, 1, after.DamagedQuantity)
	f.checkStock(t, item.ID)
}

func TestReturnRejectsBadCounts(t *testing.T) {
	f := newEngineFixture(t)
	cust := f.seedCustomer(t)
	item := f.seedEquipment(t, "PA Speaker", 100, 5)
	o := createStandardOrder(t, f, cust, item)

	f.clk.Set(time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC))

	t.Run("good exceeds remaining", func(t *testing.T) {
		_, err := f.orders.ProcessReturn(context.Background(), o.ID, usecase.ReturnParams{
			Good: map[uuid.UUID]int{item.ID: 3},
		})
		require.Error(t, err)
	})

	t.Run("negative late fee override", func(t *testing.T) {
		lateFee := -20.0
		_, err := f.orders.ProcessReturn(context.Background(), o.ID, usecase.ReturnParams{
			Good:    map[uuid.UUID]int{item.ID: 1},
			LateFee: &lateFee,
		})
		require.ErrorIs(t, err, order.ErrNegativeFee)
	})

	t.Run("negative replacement cost", func(t *testing.T) {
		_, err := f.orders.ProcessReturn(context.Background(), o.ID, usecase.ReturnParams{
			Good:             map[uuid.UUID]int{item.ID: 1},
			ReplacementCosts: map[uuid.UUID]float64{item.ID: -50},
		})
		require.ErrorIs(t, err, order.ErrNegativeFee)
	})

	t.Run("unknown equipment", func(t *testing.T) {
		_, err := f.orders.ProcessReturn(context.Background(), o.ID, usecase.ReturnParams{
			Good: map[uuid.UUID]int{uuid.New(): 1},
		})
		require.ErrorIs(t, err, order.ErrUnknownEquipment)
	})

	t.Run("quotation is not returnable", func(t *testing.T) {
		q, err := f.orders.Create(context.Background(), usecase.CreateOrderParams{
			CustomerID:  cust.ID,
			Items:       []usecase.OrderLineInput{{EquipmentID: item.ID, Quantity: 1}},
			StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			AsQuotation: true,
		})
		require.NoError(t, err)

		_, err = f.orders.ProcessReturn(context.Background(), q.ID, usecase.ReturnParams{})
		require.ErrorIs(t, err, order.ErrNotReturnable)
	})
}

func TestUpdateOrder(t *testing.T) {
	f := newEngineFixture(t)
	cust := f.seedCustomer(t)
	speaker := f.seedEquipment(t, "PA Speaker", 100, 5)
	mixer := f.seedEquipment(t, "Mixer", 80, 2)

	t.Run("quantity moves between items in one call", func(t *testing.T) {
		o := createStandardOrder(t, f, cust, speaker)

		updated, err := f.orders.Update(context.Background(), o.ID, usecase.UpdateOrderParams{
			Items: []usecase.OrderLineInput{
				{EquipmentID: speaker.ID, Quantity: 1},
				{EquipmentID: mixer.ID, Quantity: 2},
			},
		})
		require.NoError(t, err)
		require.Len(t, updated.Items, 2)

		assert.Equal(t, 4, f.equipmentByID(t, speaker.ID).AvailableQuantity)
		assert.Equal(t, 0, f.equipmentByID(t, mixer.ID).AvailableQuantity)
		f.checkStock(t, speaker.ID)
		f.checkStock(t, mixer.ID)

		// 3 days: speaker 1x100 + mixer 2x80 = 780, minus 10% = 702, plus 5% tax.
		assert.InDelta(t, 737.1, updated.TotalAmount, 1e-9)
		checkBalance(t, updated)
	})

	t.Run("payment is monotonic", func(t *testing.T) {
		o := createStandardOrder(t, f, cust, speaker)

		updated, err := f.orders.Update(context.Background(), o.ID, usecase.UpdateOrderParams{
			AdditionalPayment: 150,
		})
		require.NoError(t, err)
		assert.InDelta(t, 350.0, updated.PaidAmount, 1e-9)
		checkBalance(t, updated)

		_, err = f.orders.Update(context.Background(), o.ID, usecase.UpdateOrderParams{
			AdditionalPayment: -10,
		})
		require.ErrorIs(t, err, order.ErrNegativePayment)
	})

	t.Run("items frozen after a return", func(t *testing.T) {
		o := createStandardOrder(t, f, cust, speaker)

		f.clk.Set(time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC))
		_, err := f.orders.ProcessReturn(context.Background(), o.ID, usecase.ReturnParams{
			Good: map[uuid.UUID]int{speaker.ID: 2},
		})
		require.NoError(t, err)

		_, err = f.orders.Update(context.Background(), o.ID, usecase.UpdateOrderParams{
			Items: []usecase.OrderLineInput{{EquipmentID: speaker.ID, Quantity: 1}},
		})
		require.ErrorIs(t, err, order.ErrItemsFrozen)

		// Fees and payment stay adjustable.
		fee := 25.0
		updated, err := f.orders.Update(context.Background(), o.ID, usecase.UpdateOrderParams{
			AdditionalPayment: 50,
			DamageFee:         &fee,
		})
		require.NoError(t, err)
		assert.InDelta(t, 25.0, updated.DamageFee, 1e-9)
		checkBalance(t, updated)
	})
}

func TestUpdateRejectsNegativeFees(t *testing.T) {
	f := newEngineFixture(t)
	cust := f.seedCustomer(t)
	item := f.seedEquipment(t, "PA Speaker", 100, 5)
	o := createStandardOrder(t, f, cust, item)

	lateFee := -5.0
	_, err := f.orders.Update(context.Background(), o.ID, usecase.UpdateOrderParams{
		LateFee: &lateFee,
	})
	require.ErrorIs(t, err, order.ErrNegativeFee)

	damageFee := -1.0
	_, err = f.orders.Update(context.Background(), o.ID, usecase.UpdateOrderParams{
		DamageFee: &damageFee,
	})
	require.ErrorIs(t, err, order.ErrNegativeFee)

	unchanged, err := f.orders.Get(context.Background(), o.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, unchanged.LateFee, 1e-9)
	assert.InDelta(t, 0.0, unchanged.DamageFee, 1e-9)
}

func TestDeleteReleasesHeldStock(t *testing.T) {
	f := newEngineFixture(t)
	cust := f.seedCustomer(t)
	item := f.seedEquipment(t, "PA Speaker", 100, 5)
	o := createStandardOrder(t, f, cust, item)

	require.NoError(t, f.orders.Delete(context.Background(), o.ID))

	assert.Equal(t, 5, f.equipmentByID(t, item.ID).AvailableQuantity)

	_, err := f.orders.Get(context.Background(), o.ID)
	require.ErrorIs(t, err, usecase.ErrOrderNotFound)
}

func TestHistoryListsSettledOrders(t *testing.T) {
	f := newEngineFixture(t)
	cust := f.seedCustomer(t)
	item := f.seedEquipment(t, "PA Speaker", 100, 5)
	o := createStandardOrder(t, f, cust, item)

	history, err := f.orders.History(context.Background())
	require.NoError(t, err)
	assert.Empty(t, history, "active order is not history")

	f.clk.Set(time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC))
	_, err = f.orders.ProcessReturn(context.Background(), o.ID, usecase.ReturnParams{
		Good: map[uuid.UUID]int{item.ID: 2},
	})
	require.NoError(t, err)

	history, err = f.orders.History(context.Background())
	require.NoError(t, err)
	assert.Empty(t, history, "returned but unpaid order is not history")

	_, err = f.orders.Update(context.Background(), o.ID, usecase.UpdateOrderParams{
		AdditionalPayment: 367,
	})
	require.NoError(t, err)

	history, err = f.orders.History(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, o.ID, history[0].ID)
}

func TestInvoiceBundle(t *testing.T) {
	f := newEngineFixture(t)
	cust := f.seedCustomer(t)
	item := f.seedEquipment(t, "PA Speaker", 100, 5)
	o := createStandardOrder(t, f, cust, item)

	data, err := f.orders.Invoice(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, data.Order.ID)
	assert.Equal(t, cust.ID, data.Customer.ID)
	assert.InDelta(t, 5.0, data.Settings.TaxPercentage, 1e-9)
}
