package services

import (
	"sort"
	"strings"
	"sync"

	"github.com/StickerShuttle/shuttle-cms-backend/models"
)

var (
	matcherMu         sync.RWMutex
	samplePackMatcher = DefaultSamplePackMatcher()
)

// ConfigureSamplePacks replaces the matcher used by BuildOrderView.
func ConfigureSamplePacks(m SamplePackMatcher) {
	matcherMu.Lock()
	defer matcherMu.Unlock()
	samplePackMatcher = m
}

func CurrentSamplePackMatcher() SamplePackMatcher {
	matcherMu.RLock()
	defer matcherMu.RUnlock()
	return samplePackMatcher
}

// DisplayNumber is the order number, or the id's first 8 characters when
// the storefront never assigned one.
func DisplayNumber(o models.Order) string {
	if o.OrderNumber != nil && strings.TrimSpace(*o.OrderNumber) != "" {
		return *o.OrderNumber
	}
	if len(o.ID) > 8 {
		return o.ID[:8]
	}
	return o.ID
}

// BuildOrderView derives every display field for an order.
func BuildOrderView(o models.Order) models.OrderView {
	return BuildOrderViewWith(o, CurrentSamplePackMatcher())
}

func BuildOrderViewWith(o models.Order, matcher SamplePackMatcher) models.OrderView {
	status := DeriveOrderStatus(o, matcher)
	if o.Items == nil {
		o.Items = []models.OrderItem{}
	}
	return models.OrderView{
		Order:         o,
		DisplayNumber: DisplayNumber(o),
		DisplayStatus: status,
		StatusStyle:   StatusStyleFor(status),
		IsSamplePack:  matcher.IsSamplePack(o),
		GroupedItems:  GroupItemsByProduct(o.Items),
		TotalUnits:    TotalUnits(o.Items),
		Tracking:      TrackingFor(o),
	}
}

func BuildOrderViews(orders []models.Order) []models.OrderView {
	matcher := CurrentSamplePackMatcher()
	views := make([]models.OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, BuildOrderViewWith(o, matcher))
	}
	return views
}

// FilterViews applies the admin list's status and free-text filters.
// An empty status or q matches everything.
func FilterViews(views []models.OrderView, status models.DisplayStatus, q string) []models.OrderView {
	q = strings.ToLower(strings.TrimSpace(q))
	if status == "" && q == "" {
		return views
	}

	out := make([]models.OrderView, 0, len(views))
	for _, v := range views {
		if status != "" && v.DisplayStatus != status {
			continue
		}
		if q != "" && !matchesQuery(v, q) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func matchesQuery(v models.OrderView, q string) bool {
	fields := []string{
		v.DisplayNumber,
		v.ID,
		v.CustomerEmail,
		v.CustomerFirstName + " " + v.CustomerLastName,
	}
	if v.TrackingNumber != nil {
		fields = append(fields, *v.TrackingNumber)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// SortViews orders views in place. Unknown keys sort newest first.
func SortViews(views []models.OrderView, key string) {
	var less func(a, b models.OrderView) bool
	switch key {
	case "oldest":
		less = func(a, b models.OrderView) bool { return OrderTimestamp(a.Order).Before(OrderTimestamp(b.Order)) }
	case "total_desc":
		less = func(a, b models.OrderView) bool { return a.TotalPrice > b.TotalPrice }
	case "total_asc":
		less = func(a, b models.OrderView) bool { return a.TotalPrice < b.TotalPrice }
	default:
		less = func(a, b models.OrderView) bool { return OrderTimestamp(a.Order).After(OrderTimestamp(b.Order)) }
	}
	sort.SliceStable(views, func(i, j int) bool { return less(views[i], views[j]) })
}

// Paginate slices views for page/limit and reports the total page count.
func Paginate(views []models.OrderView, page, limit int) ([]models.OrderView, models.Pagination) {
	total := len(views)
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	meta := models.Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}

	start := (page - 1) * limit
	if start >= total || start < 0 {
		return []models.OrderView{}, meta
	}
	end := start + limit
	if end > total {
		end = total
	}
	return views[start:end], meta
}
