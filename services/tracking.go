package services

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/StickerShuttle/shuttle-cms-backend/models"
)

const (
	CarrierUPS   = "UPS"
	CarrierFedEx = "FedEx"
	CarrierUSPS  = "USPS"
)

var carrierURLTemplates = map[string]string{
	CarrierUPS:   "https://www.ups.com/track?tracknum=",
	CarrierFedEx: "https://www.fedex.com/fedextrack/?trknbr=",
	CarrierUSPS:  "https://tools.usps.com/go/TrackConfirmAction?tLabels=",
}

// Checked in order; the first carrier with a matching pattern wins.
var carrierPatterns = []struct {
	carrier  string
	patterns []*regexp.Regexp
}{
	{CarrierUPS, []*regexp.Regexp{
		regexp.MustCompile(`^1Z[0-9A-Z]{16}$`),
		regexp.MustCompile(`^T\d{10}$`),
	}},
	{CarrierFedEx, []*regexp.Regexp{
		regexp.MustCompile(`^\d{12}$`),
		regexp.MustCompile(`^\d{15}$`),
		regexp.MustCompile(`^96\d{20}$`),
	}},
	{CarrierUSPS, []*regexp.Regexp{
		regexp.MustCompile(`^9[1-5]\d{20}$`),
		regexp.MustCompile(`^\d{20}$`),
		regexp.MustCompile(`^[A-Z]{2}\d{9}US$`),
	}},
}

var trackingNoise = strings.NewReplacer(" ", "", "-", "", "\t", "")

// NormalizeTrackingNumber strips spacing and dashes and upper-cases.
func NormalizeTrackingNumber(raw string) string {
	return strings.ToUpper(trackingNoise.Replace(strings.TrimSpace(raw)))
}

// NormalizeCarrier returns the canonical carrier name, or "" if unknown.
func NormalizeCarrier(raw string) string {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), " ", "")) {
	case "ups":
		return CarrierUPS
	case "fedex", "federalexpress":
		return CarrierFedEx
	case "usps", "unitedstatespostalservice":
		return CarrierUSPS
	default:
		return ""
	}
}

// DetectCarrier guesses the carrier from the number's shape.
func DetectCarrier(number string) (string, bool) {
	number = NormalizeTrackingNumber(number)
	for _, c := range carrierPatterns {
		for _, re := range c.patterns {
			if re.MatchString(number) {
				return c.carrier, true
			}
		}
	}
	return "", false
}

// ResolveTracking builds the carrier tracking link. A recognised explicit
// carrier wins over detection; with neither, the UPS template is used.
func ResolveTracking(number, carrier string) models.TrackingLink {
	number = NormalizeTrackingNumber(number)

	resolved := NormalizeCarrier(carrier)
	detected := resolved != ""
	if resolved == "" {
		resolved, detected = DetectCarrier(number)
	}
	if resolved == "" {
		resolved = CarrierUPS
	}

	return models.TrackingLink{
		Carrier:  resolved,
		Number:   number,
		URL:      carrierURLTemplates[resolved] + url.QueryEscape(number),
		Detected: detected,
	}
}

// TrackingFor resolves an order's tracking link, or nil when it has none.
func TrackingFor(order models.Order) *models.TrackingLink {
	if !hasTracking(order) {
		return nil
	}
	carrier := ""
	if order.TrackingCompany != nil {
		carrier = *order.TrackingCompany
	}
	link := ResolveTracking(*order.TrackingNumber, carrier)
	return &link
}
