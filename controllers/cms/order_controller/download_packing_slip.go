package order_controller

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/StickerShuttle/shuttle-cms-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"go.uber.org/zap"
)

// DownloadPackingSlip godoc
// @Summary Download packing slip
// @Description Render a PDF packing slip with grouped items, the derived status and tracking details.
// @Tags Admin - Orders
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {file} binary
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/orders/{id}/packing-slip [get]
func DownloadPackingSlip(c *gin.Context) {
	const tag = "[admin.order.packing-slip]"

	order, ok := loadOrder(c, tag)
	if !ok {
		return
	}

	view := services.BuildOrderView(*order)
	buf, err := generatePackingSlipPDF(view)
	if err != nil {
		config.Log.Error(tag+" pdf generation failed", zap.String("id", order.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate packing slip"))
		return
	}

	filename := fmt.Sprintf("packing-slip-%s.pdf", view.DisplayNumber)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func generatePackingSlipPDF(view models.OrderView) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(8, func() {
			m.Text("PACKING SLIP", props.Text{
				Size:  22,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(4, func() {
			m.Text("#"+view.DisplayNumber, props.Text{
				Size:  14,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("STICKER SHUTTLE", props.Text{
				Size:  14,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(8, func() {})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("SHIP TO", props.Text{Size: 9, Style: consts.Bold, Color: mediumGray})
		})
		m.Col(6, func() {
			m.Text("ORDER", props.Text{Size: 9, Style: consts.Bold, Color: mediumGray, Align: consts.Right})
		})
	})

	customer := strings.TrimSpace(view.CustomerFirstName + " " + view.CustomerLastName)
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(customer, props.Text{Size: 10, Color: darkGray})
		})
		m.Col(6, func() {
			m.Text("Status: "+string(view.DisplayStatus), props.Text{Size: 10, Color: darkGray, Align: consts.Right})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(view.CustomerEmail, props.Text{Size: 9, Color: mediumGray})
		})
		m.Col(6, func() {
			m.Text("Placed: "+services.OrderTimestamp(view.Order).Format("Jan 02, 2006"), props.Text{Size: 9, Color: mediumGray, Align: consts.Right})
		})
	})

	if view.Tracking != nil {
		m.Row(5, func() {
			m.Col(12, func() {
				m.Text(fmt.Sprintf("Tracking: %s %s", view.Tracking.Carrier, view.Tracking.Number), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(8, func() {})

	m.Row(6, func() {
		m.Col(5, func() {
			m.Text("Item", props.Text{Size: 9, Style: consts.Bold, Color: darkGray})
		})
		m.Col(5, func() {
			m.Text("Options", props.Text{Size: 9, Style: consts.Bold, Color: darkGray})
		})
		m.Col(2, func() {
			m.Text("Qty", props.Text{Size: 9, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
	})

	for _, item := range view.GroupedItems {
		item := item
		m.Row(6, func() {
			m.Col(5, func() {
				m.Text(item.ProductName, props.Text{Size: 9, Color: darkGray})
			})
			m.Col(5, func() {
				m.Text(selectionSummary(item.CalculatorSelections), props.Text{Size: 8, Color: mediumGray})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d", item.TotalQuantity), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
		})
	}

	m.Row(8, func() {})

	m.Row(6, func() {
		m.Col(10, func() {
			m.Text("Total units", props.Text{Size: 10, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("%d", view.TotalUnits), props.Text{Size: 10, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
	})

	m.Row(12, func() {})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Thanks for flying with Sticker Shuttle!", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, err
	}
	return &buf, nil
}

// selectionSummary flattens calculator selections into "key: value" pairs.
// Values are either plain strings or objects carrying displayValue/value.
func selectionSummary(selections map[string]any) string {
	if len(selections) == 0 {
		return ""
	}

	keys := make([]string, 0, len(selections))
	for k := range selections {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if v := selectionValue(selections[k]); v != "" {
			parts = append(parts, k+": "+v)
		}
	}
	return strings.Join(parts, ", ")
}

func selectionValue(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case map[string]any:
		for _, key := range []string{"displayValue", "value"} {
			if s, ok := v[key]; ok {
				return fmt.Sprint(s)
			}
		}
		return ""
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
