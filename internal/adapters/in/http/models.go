package http

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedOrderResponse is returned when a new order is opened.
type CreatedOrderResponse struct {
	ID string `json:"id"`
}

// AssignedNumberResponse is returned when a display number is assigned.
type AssignedNumberResponse struct {
	Number int `json:"number"`
}

// AddItemRequest rings one unit of a catalog item onto an order.
type AddItemRequest struct {
	ItemID string `json:"itemId"`
}

// SetQuantityRequest overwrites the quantity of a line already on an order.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// RecordPaymentRequest takes payment for an order. The amount is a decimal
// string, e.g. "25.00".
type RecordPaymentRequest struct {
	AmountTendered string `json:"amountTendered"`
}

// RecordPaymentResponse reports the change due after payment.
type RecordPaymentResponse struct {
	ChangeDue string `json:"changeDue"`
}

// OrderResponse represents one order in a listing.
type OrderResponse struct {
	ID               string          `json:"id"`
	Number           *int            `json:"number,omitempty"`
	NumberAssignedAt *string         `json:"numberAssignedAt,omitempty"`
	Items            []ItemResponse  `json:"items"`
	TotalDue         *string         `json:"totalDue,omitempty"`
	Tender           *TenderResponse `json:"tender,omitempty"`
}

// ItemResponse represents one ledger line in a listing.
type ItemResponse struct {
	ItemID        string `json:"itemId"`
	Name          string `json:"name"`
	Quantity      int    `json:"quantity"`
	UnitPrice     string `json:"unitPrice"`
	ExtendedPrice string `json:"extendedPrice"`
}

// TenderResponse represents the payment taken for an order.
type TenderResponse struct {
	AmountTendered string `json:"amountTendered"`
	ChangeDue      string `json:"changeDue"`
}
