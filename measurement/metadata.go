package measurement

import "fmt"

// Metadata is the shared context attached to a measurement.
//
// Two Metadata values are equal only if all fields match exactly.
type Metadata struct {
	// Timestamp is the unix timestamp of the reading in seconds.
	Timestamp uint64
	// LoggerID identifies the field logger that took the reading.
	LoggerID uint32
	// CellID identifies the cell the logger is deployed in.
	CellID uint32
}

// Equal reports whether m and other hold identical field values.
func (m Metadata) Equal(other Metadata) bool {
	return m.Timestamp == other.Timestamp &&
		m.LoggerID == other.LoggerID &&
		m.CellID == other.CellID
}

func (m Metadata) String() string {
	return fmt.Sprintf("{ts=%d logger=%d cell=%d}", m.Timestamp, m.LoggerID, m.CellID)
}
