package commands_test

import (
	"testing"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetItemQuantityCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	itemID := kernel.NewUUID()
	cmd, _ := commands.NewSetItemQuantityCommand(orderID, itemID, 5)

	ledger := new(MockLineItemLedger)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LineItemLedger").Return(ledger).Once(),
		ledger.On("Quantity", mock.Anything, orderID, itemID).Return(2, true, nil).Once(),
		ledger.On("SetQuantity", mock.Anything, orderID, itemID, 5).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetItemQuantityCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	ledger.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetItemQuantityCommandHandler_Handle_ZeroRemovesLine(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	itemID := kernel.NewUUID()
	cmd, _ := commands.NewSetItemQuantityCommand(orderID, itemID, 0)

	ledger := new(MockLineItemLedger)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LineItemLedger").Return(ledger).Once(),
		ledger.On("Quantity", mock.Anything, orderID, itemID).Return(2, true, nil).Once(),
		ledger.On("Remove", mock.Anything, orderID, itemID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetItemQuantityCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	ledger.AssertNotCalled(t, "SetQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	ledger.AssertExpectations(t)
}

func TestSetItemQuantityCommandHandler_Handle_LineNotOnOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	itemID := kernel.NewUUID()
	cmd, _ := commands.NewSetItemQuantityCommand(orderID, itemID, 5)

	ledger := new(MockLineItemLedger)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LineItemLedger").Return(ledger).Once(),
		ledger.On("Quantity", mock.Anything, orderID, itemID).Return(0, false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetItemQuantityCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
