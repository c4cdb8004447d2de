// Tower record structs shared across the pipeline
package tower

// Identity is one row of the source CSV: a tower and where it stands.
type Identity struct {
	TowerID      string `csv:"tower_id"`
	Neighborhood string `csv:"neighborhood"`
}

// Metrics is the nested telemetry block attached to a tower record.
// Fields are pointers so that absence in the JSON export is observable
// downstream instead of collapsing to zero values.
type Metrics struct {
	LatencyMS      *int     `json:"latency_ms"`
	ActiveUsers    *int     `json:"active_users"`
	BandwidthUsage *float64 `json:"bandwidth_usage"`
}

// NestedRecord is the synthesizer's output and the flattener's input.
type NestedRecord struct {
	TowerID  string   `json:"tower_id"`
	Location string   `json:"location"`
	Metrics  *Metrics `json:"metrics"`
	Status   string   `json:"status"`
}

// Tower status values.
const (
	StatusOnline      = "online"
	StatusMaintenance = "maintenance"
)

// KnownStatus reports whether s is one of the recognized status values.
func KnownStatus(s string) bool {
	return s == StatusOnline || s == StatusMaintenance
}
