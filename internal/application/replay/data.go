// Package replay records the per-frame input of a run and plays it back.
//
// A run is fully determined by its seed, ship size and the sequence of
// (dt, input) pairs, so a replay file reproduces it exactly.
package replay

// FormatVersion is written into every replay file
const FormatVersion = "2.0"

// FrameInput records dt and input state for a single frame
type FrameInput struct {
	F  int     `json:"f"`           // Frame number
	DT float64 `json:"dt"`          // Seconds since the previous frame
	H  uint16  `json:"h,omitempty"` // Held actions bitset
	P  uint16  `json:"p,omitempty"` // Newly pressed actions bitset
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	ID        string       `json:"id"`
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	ShipW     float64      `json:"shipW"`
	ShipH     float64      `json:"shipH"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
