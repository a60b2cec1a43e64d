package models

// DisplayStatus is the single human-readable order state shown on badges.
type DisplayStatus string

const (
	StatusBuildingProof    DisplayStatus = "Building Proof"
	StatusAwaitingApproval DisplayStatus = "Awaiting Approval"
	StatusChangesRequested DisplayStatus = "Changes Requested"
	StatusPrinting         DisplayStatus = "Printing"
	StatusLabelCreated     DisplayStatus = "Label Created"
	StatusLabelPrinted     DisplayStatus = "Label Printed"
	StatusShipped          DisplayStatus = "Shipped"
	StatusOutForDelivery   DisplayStatus = "Out for Delivery"
	StatusDelivered        DisplayStatus = "Delivered"

	// sample-pack only
	StatusPackaging       DisplayStatus = "Packaging"
	StatusAssumeDelivered DisplayStatus = "Assume Delivered"
)

// Raw proof_status values written by the proof workflow.
const (
	ProofBuilding         = "building_proof"
	ProofAwaitingApproval = "awaiting_approval"
	ProofApproved         = "approved"
	ProofChangesRequested = "changes_requested"
	ProofLabelPrinted     = "label_printed"
	ProofShipped          = "shipped"
	ProofDelivered        = "delivered"
)

// StatusStyle is the badge color class and LED glow for a DisplayStatus.
type StatusStyle struct {
	ColorClass string `json:"color_class"`
	LEDHex     string `json:"led_hex"`
}
