package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order is a customer order as stored by the storefront checkout.
// Status fields are raw backend strings; the human-facing label is derived
// on read and never persisted.
type Order struct {
	ID                string                         `json:"id" gorm:"type:uuid;primaryKey"`
	OrderNumber       *string                        `json:"order_number,omitempty" gorm:"uniqueIndex"`
	FinancialStatus   string                         `json:"financial_status" gorm:"index"`   // paid, pending, refunded ...
	FulfillmentStatus string                         `json:"fulfillment_status" gorm:"index"` // unfulfilled, partial, fulfilled, out_for_delivery
	OrderStatus       string                         `json:"order_status"`                    // free-form: Printing, Delivered, Out for Delivery ...
	ProofStatus       *string                        `json:"proof_status,omitempty"`
	ProofNotes        *string                        `json:"proof_notes,omitempty"`
	Proofs            datatypes.JSONSlice[ProofFile] `json:"proofs" gorm:"type:jsonb"`
	TrackingNumber    *string                        `json:"tracking_number,omitempty"`
	TrackingCompany   *string                        `json:"tracking_company,omitempty"`
	TrackingURL       *string                        `json:"tracking_url,omitempty"`
	TotalPrice        float64                        `json:"total_price"`
	CustomerFirstName string                         `json:"customer_first_name"`
	CustomerLastName  string                         `json:"customer_last_name"`
	CustomerEmail     string                         `json:"customer_email" gorm:"index"`
	OrderCreatedAt    *time.Time                     `json:"order_created_at,omitempty" gorm:"index"`
	CreatedAt         time.Time                      `json:"created_at"`
	UpdatedAt         time.Time                      `json:"updated_at"`

	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.Must(uuid.NewV7()).String()
	}
	return nil
}

func (Order) TableName() string { return "orders" }

// OrderItem is one configured line on an order.
type OrderItem struct {
	ID                      string                      `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID                 string                      `json:"order_id" gorm:"type:uuid;index;not null"`
	ProductID               string                      `json:"product_id"`
	ProductName             string                      `json:"product_name"`
	ProductCategory         string                      `json:"product_category"`
	SKU                     string                      `json:"sku" gorm:"column:sku"`
	Quantity                int                         `json:"quantity"`
	UnitPrice               float64                     `json:"unit_price"`
	TotalPrice              float64                     `json:"total_price"`
	CalculatorSelections    datatypes.JSONMap           `json:"calculator_selections" gorm:"type:jsonb"` // cut, material, size ...
	CustomFiles             datatypes.JSONSlice[string] `json:"custom_files" gorm:"type:jsonb"`
	CustomerReplacementFile *string                     `json:"customer_replacement_file,omitempty"`
	CreatedAt               time.Time                   `json:"created_at"`
	UpdatedAt               time.Time                   `json:"updated_at"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.Must(uuid.NewV7()).String()
	}
	return nil
}

func (OrderItem) TableName() string { return "order_items" }

// ProofFile is a design proof uploaded for customer approval.
type ProofFile struct {
	URL        string    `json:"url"`
	PublicID   string    `json:"public_id"`
	Filename   string    `json:"filename"`
	UploadedAt time.Time `json:"uploaded_at"`
	UploadedBy string    `json:"uploaded_by,omitempty"`
}

// GroupedItem is an OrderItem collapsed with its same-named siblings.
type GroupedItem struct {
	OrderItem
	TotalQuantity int `json:"total_quantity"`
}

// TrackingLink is a resolved carrier tracking page.
type TrackingLink struct {
	Carrier  string `json:"carrier"`
	Number   string `json:"number"`
	URL      string `json:"url"`
	Detected bool   `json:"detected"` // false when the UPS fallback was used
}

// OrderView is an Order decorated with everything derived for display.
type OrderView struct {
	Order
	DisplayNumber string        `json:"display_number"`
	DisplayStatus DisplayStatus `json:"display_status"`
	StatusStyle   StatusStyle   `json:"status_style"`
	IsSamplePack  bool          `json:"is_sample_pack"`
	GroupedItems  []GroupedItem `json:"grouped_items"`
	TotalUnits    int           `json:"total_units"`
	Tracking      *TrackingLink `json:"tracking,omitempty"`
}

// UpdateOrderStatusRequest mirrors the updateOrderStatus mutation.
// Omitted fields are left untouched; an empty tracking_number clears tracking.
type UpdateOrderStatusRequest struct {
	OrderStatus       *string `json:"order_status,omitempty"`
	ProofStatus       *string `json:"proof_status,omitempty" binding:"omitempty,oneof=building_proof awaiting_approval approved changes_requested label_printed shipped delivered"`
	FulfillmentStatus *string `json:"fulfillment_status,omitempty" binding:"omitempty,oneof=unfulfilled partial fulfilled out_for_delivery"`
	TrackingNumber    *string `json:"tracking_number,omitempty"`
	TrackingCompany   *string `json:"tracking_company,omitempty"`
}

// OrderListQuery is bound from GET /admin/orders.
type OrderListQuery struct {
	TimeRange string `form:"time_range"`
	Status    string `form:"status"` // display label, e.g. "Awaiting Approval"
	Q         string `form:"q"`
	Sort      string `form:"sort"` // newest (default), oldest, total_desc, total_asc
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
}

type OrderStatsBreakdown struct {
	Status DisplayStatus `json:"status"`
	Count  int           `json:"count"`
	Style  StatusStyle   `json:"style"`
}

type OrderStatsResponse struct {
	TotalOrders                int                   `json:"total_orders"`
	CurrentMonthTotal          int                   `json:"current_month_total"`
	LastMonthTotal             int                   `json:"last_month_total"`
	ChangePercentFromLastMonth *float64              `json:"change_percent_from_last_month,omitempty"`
	Breakdown                  []OrderStatsBreakdown `json:"breakdown"`
}
