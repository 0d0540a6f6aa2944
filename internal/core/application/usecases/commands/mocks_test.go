package commands_test

import (
	"context"
	"log/slog"
	"time"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) MostRecentlyAssignedNumber(ctx context.Context) (int, bool, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *MockOrderRepository) ReleaseNumbersBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockLineItemLedger struct{ mock.Mock }

func (m *MockLineItemLedger) Increment(ctx context.Context, orderID, itemID kernel.UUID) error {
	args := m.Called(ctx, orderID, itemID)
	return args.Error(0)
}

func (m *MockLineItemLedger) Quantity(ctx context.Context, orderID, itemID kernel.UUID) (int, bool, error) {
	args := m.Called(ctx, orderID, itemID)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *MockLineItemLedger) SetQuantity(ctx context.Context, orderID, itemID kernel.UUID, quantity int) error {
	args := m.Called(ctx, orderID, itemID, quantity)
	return args.Error(0)
}

func (m *MockLineItemLedger) Remove(ctx context.Context, orderID, itemID kernel.UUID) error {
	args := m.Called(ctx, orderID, itemID)
	return args.Error(0)
}

type MockTenderRepository struct{ mock.Mock }

func (m *MockTenderRepository) Add(ctx context.Context, tender order.Tender) error {
	args := m.Called(ctx, tender)
	return args.Error(0)
}

type MockCatalog struct{ mock.Mock }

func (m *MockCatalog) UnitPrice(ctx context.Context, itemID kernel.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockCatalog) DetailedLineItems(ctx context.Context, orderID kernel.UUID) ([]order.DetailedLineItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.DetailedLineItem), args.Error(1)
}

type MockTaxRateProvider struct{ mock.Mock }

func (m *MockTaxRateProvider) TaxRate(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockUoW serves all three unit of work shapes used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) LineItemLedger() ports.LineItemLedger {
	args := m.Called()
	return args.Get(0).(ports.LineItemLedger)
}

func (m *MockUoW) TenderRepository() ports.TenderRepository {
	args := m.Called()
	return args.Get(0).(ports.TenderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockLedgerUoWFactory struct{ mock.Mock }

func (m *MockLedgerUoWFactory) Create() commands.LedgerUoW {
	args := m.Called()
	return args.Get(0).(commands.LedgerUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
