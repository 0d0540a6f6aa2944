package queries

import (
	"context"
	"database/sql"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/services"
	"pos/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// displayTimeFormat renders assignment timestamps the way the register prints
// them, e.g. "01/02/2006 3:04 PM".
const displayTimeFormat = "01/02/2006 3:04 PM"

// GetOrdersQueryHandler retrieves orders from the database together with
// their ledger lines, running total, and payment state. Totals are computed
// at read time against the current tax rate, never stored.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db, catalog, taxRates, calculator)
//	query, _ := NewGetOrdersQuery(OrderFilter{})
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get orders: %v", err)
//	    return err
//	}
type GetOrdersQueryHandler struct {
	db         *gorm.DB
	catalog    ports.Catalog
	taxRates   ports.TaxRateProvider
	calculator services.TotalCalculator
}

// NewGetOrdersQueryHandler creates a handler for order queries.
// Requires a GORM database connection, a Catalog and TaxRateProvider to price
// the orders, and the TotalCalculator domain service.
func NewGetOrdersQueryHandler(
	db *gorm.DB,
	catalog ports.Catalog,
	taxRates ports.TaxRateProvider,
	calculator services.TotalCalculator,
) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{
		db:         db,
		catalog:    catalog,
		taxRates:   taxRates,
		calculator: calculator,
	}
}

// Handle executes the query and returns the matching orders.
// Orders without a tender carry a nil Tender; orders without a display number
// carry a nil Number. Results are sorted by assignment time, then ID, for
// consistent output.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	taxRate, err := h.taxRates.TaxRate(ctx)
	if err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			o.id,
			o.order_number,
			o.number_assigned_at,
			t.amount_tendered,
			t.change_due
		FROM orders o
		LEFT OUTER JOIN tender t ON t.order_id = o.id
	`
	args := make([]any, 0, 2)

	filter := query.Filter()
	switch {
	case filter.OrderID != nil:
		sqlQuery += ` WHERE o.id = ?`
		args = append(args, filter.OrderID.Bytes())
	case filter.OrderNumber != nil:
		sqlQuery += ` WHERE o.order_number = ?`
		args = append(args, *filter.OrderNumber)
	}

	sqlQuery += ` ORDER BY o.number_assigned_at, o.id`

	orders := make([]GetOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var number sql.NullInt64
		var assignedAt sql.NullTime
		var amountTendered, changeDue decimal.NullDecimal

		err = rows.Scan(
			&id,
			&number,
			&assignedAt,
			&amountTendered,
			&changeDue,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orderResp := GetOrdersQueryResponse{ID: orderID}

		if number.Valid {
			n := int(number.Int64)
			orderResp.Number = &n
		}
		if assignedAt.Valid {
			formatted := assignedAt.Time.Format(displayTimeFormat)
			orderResp.NumberAssignedAt = &formatted
		}
		if amountTendered.Valid && changeDue.Valid {
			orderResp.Tender = &TenderResponse{
				AmountTendered: amountTendered.Decimal,
				ChangeDue:      changeDue.Decimal,
			}
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, itemsErr := h.catalog.DetailedLineItems(ctx, orders[i].ID)
		if itemsErr != nil {
			return nil, itemsErr
		}

		lines := make([]LineItemResponse, 0, len(items))
		for _, item := range items {
			lines = append(lines, LineItemResponse{
				ItemID:        item.ItemID,
				Name:          item.Name,
				Quantity:      item.Quantity,
				UnitPrice:     item.UnitPrice,
				ExtendedPrice: item.ExtendedPrice,
			})
		}
		orders[i].Items = lines

		total, totalErr := h.calculator.TotalDue(items, taxRate)
		if totalErr != nil {
			return nil, totalErr
		}
		orders[i].TotalDue = total
	}

	return orders, nil
}
