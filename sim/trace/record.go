// Package trace provides run-log and intervention recording for post-run
// persistence and analysis. It stores pure data types and has no
// dependencies on sim/.
package trace

// Action identifies the intervention a monitoring tick triggered.
type Action string

const (
	// ActionNone means the verdict was conducive (or the failure policy
	// treated it as such); nothing fired.
	ActionNone Action = ""
	// ActionActivateVentilation switched the fan on in response to high CO2.
	ActionActivateVentilation Action = "activate_ventilation"
	// ActionActivateAC switched the air conditioning on in response to high temperature.
	ActionActivateAC Action = "activate_ac"
	// ActionSendAlert raised a noise alert without touching any actuator.
	ActionSendAlert Action = "send_alert"
	// ActionUnclassified marks a non-conducive verdict that no threshold
	// rule explains (e.g. temperature below minimum, light below minimum).
	ActionUnclassified Action = "unclassified"
)

// InterventionRecord captures one controller evaluation. Exactly one record
// exists per monitoring tick, action or not.
type InterventionRecord struct {
	Clock       int64
	CO2         float64
	Temperature float64
	Action      Action
}

// LogEntry is a point-in-time snapshot of the environment and actuators.
// Values are copies, never live references into simulation state.
type LogEntry struct {
	Clock          int64
	StudentCount   int
	CO2            float64
	Temperature    float64
	Humidity       float64
	Noise          float64
	Light          float64
	OccupancyRatio float64
	FanOn          bool
	ACOn           bool
}
