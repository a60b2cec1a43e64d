package services

import (
	"strings"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
)

// SamplePackMatcher recognises the fixed sample-pack product, which skips
// the proof workflow entirely.
type SamplePackMatcher struct {
	ProductIDs   []string
	SKUs         []string
	NameKeywords []string
}

func NewSamplePackMatcher(p config.SamplePackPolicy) SamplePackMatcher {
	return SamplePackMatcher{
		ProductIDs:   p.ProductIDs,
		SKUs:         p.SKUs,
		NameKeywords: p.NameKeywords,
	}
}

func DefaultSamplePackMatcher() SamplePackMatcher {
	return NewSamplePackMatcher(config.DefaultPolicy().SamplePack)
}

// MatchesItem checks product id and sku exactly (ignoring case) and the
// product name by keyword.
func (m SamplePackMatcher) MatchesItem(item models.OrderItem) bool {
	for _, id := range m.ProductIDs {
		if item.ProductID != "" && strings.EqualFold(item.ProductID, id) {
			return true
		}
	}
	for _, sku := range m.SKUs {
		if item.SKU != "" && strings.EqualFold(item.SKU, sku) {
			return true
		}
	}
	name := strings.ToLower(item.ProductName)
	for _, kw := range m.NameKeywords {
		if kw != "" && strings.Contains(name, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func (m SamplePackMatcher) IsSamplePack(order models.Order) bool {
	for _, item := range order.Items {
		if m.MatchesItem(item) {
			return true
		}
	}
	return false
}

// DeriveOrderStatus maps raw order fields to the one display label used by
// every view. First matching rule wins.
func DeriveOrderStatus(order models.Order, matcher SamplePackMatcher) models.DisplayStatus {
	proof := ""
	if order.ProofStatus != nil {
		proof = *order.ProofStatus
	}
	tracked := hasTracking(order)

	if matcher.IsSamplePack(order) {
		switch {
		case order.FulfillmentStatus == "fulfilled",
			order.OrderStatus == "Delivered",
			proof == models.ProofDelivered:
			return models.StatusAssumeDelivered
		case tracked, proof == models.ProofShipped:
			return models.StatusShipped
		default:
			return models.StatusPackaging
		}
	}

	switch {
	// A fulfilled order is terminal whatever the proof workflow says.
	case order.FulfillmentStatus == "fulfilled":
		return models.StatusDelivered
	case order.OrderStatus == "Printing":
		return models.StatusPrinting
	case proof == models.ProofAwaitingApproval:
		return models.StatusAwaitingApproval
	case proof == models.ProofApproved:
		if tracked {
			return models.StatusLabelCreated
		}
		return models.StatusPrinting
	case proof == models.ProofLabelPrinted:
		return models.StatusLabelPrinted
	case proof == models.ProofShipped,
		order.FulfillmentStatus == "partial" && tracked:
		return models.StatusShipped
	case proof == models.ProofDelivered,
		order.OrderStatus == "Delivered":
		return models.StatusDelivered
	case order.OrderStatus == "Out for Delivery",
		order.FulfillmentStatus == "out_for_delivery":
		return models.StatusOutForDelivery
	case proof == models.ProofChangesRequested:
		return models.StatusChangesRequested
	default:
		return models.StatusBuildingProof
	}
}

func hasTracking(order models.Order) bool {
	return order.TrackingNumber != nil && strings.TrimSpace(*order.TrackingNumber) != ""
}

// NeutralStyle is returned for labels missing from the table.
var NeutralStyle = models.StatusStyle{
	ColorClass: "bg-gray-500/20 text-gray-300 border-gray-500/30",
	LEDHex:     "#9ca3af",
}

var statusStyles = map[models.DisplayStatus]models.StatusStyle{
	models.StatusBuildingProof:    {ColorClass: "bg-yellow-500/20 text-yellow-300 border-yellow-500/30", LEDHex: "#f59e0b"},
	models.StatusAwaitingApproval: {ColorClass: "bg-orange-500/20 text-orange-300 border-orange-500/30", LEDHex: "#f97316"},
	models.StatusChangesRequested: {ColorClass: "bg-red-500/20 text-red-300 border-red-500/30", LEDHex: "#ef4444"},
	models.StatusPrinting:         {ColorClass: "bg-blue-500/20 text-blue-300 border-blue-500/30", LEDHex: "#3b82f6"},
	models.StatusLabelCreated:     {ColorClass: "bg-cyan-500/20 text-cyan-300 border-cyan-500/30", LEDHex: "#06b6d4"},
	models.StatusLabelPrinted:     {ColorClass: "bg-indigo-500/20 text-indigo-300 border-indigo-500/30", LEDHex: "#6366f1"},
	models.StatusShipped:          {ColorClass: "bg-purple-500/20 text-purple-300 border-purple-500/30", LEDHex: "#a855f7"},
	models.StatusOutForDelivery:   {ColorClass: "bg-pink-500/20 text-pink-300 border-pink-500/30", LEDHex: "#ec4899"},
	models.StatusDelivered:        {ColorClass: "bg-green-500/20 text-green-300 border-green-500/30", LEDHex: "#22c55e"},
	models.StatusPackaging:        {ColorClass: "bg-amber-500/20 text-amber-300 border-amber-500/30", LEDHex: "#eab308"},
	models.StatusAssumeDelivered:  {ColorClass: "bg-emerald-500/20 text-emerald-300 border-emerald-500/30", LEDHex: "#10b981"},
}

// StatusStyleFor looks up the badge style for a label.
func StatusStyleFor(status models.DisplayStatus) models.StatusStyle {
	if style, ok := statusStyles[status]; ok {
		return style
	}
	return NeutralStyle
}

// AllDisplayStatuses lists every label DeriveOrderStatus can return, in
// workflow order.
func AllDisplayStatuses() []models.DisplayStatus {
	return []models.DisplayStatus{
		models.StatusBuildingProof,
		models.StatusAwaitingApproval,
		models.StatusChangesRequested,
		models.StatusPrinting,
		models.StatusLabelCreated,
		models.StatusLabelPrinted,
		models.StatusShipped,
		models.StatusOutForDelivery,
		models.StatusDelivered,
		models.StatusPackaging,
		models.StatusAssumeDelivered,
	}
}

// ParseDisplayStatus matches a label ignoring case and surrounding space.
func ParseDisplayStatus(raw string) (models.DisplayStatus, bool) {
	raw = strings.TrimSpace(raw)
	for _, s := range AllDisplayStatuses() {
		if strings.EqualFold(string(s), raw) {
			return s, true
		}
	}
	return "", false
}
