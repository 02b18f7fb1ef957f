package format

// Friend request statuses with a dedicated color.
const (
	StatusAccepted = "ACCEPTED"
	StatusPending  = "PENDING"
)

// Status colors as hex strings.
const (
	ColorAccepted = "#10B981" // green
	ColorPending  = "#F59E0B" // amber
	ColorNeutral  = "#6B7280" // gray
)

// StatusColor maps a friend status to its badge color. Matching is exact;
// unknown statuses get the neutral gray.
func StatusColor(status string) string {
	switch status {
	case StatusAccepted:
		return ColorAccepted
	case StatusPending:
		return ColorPending
	default:
		return ColorNeutral
	}
}
