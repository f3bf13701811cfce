package models

// Spin is one persisted spin outcome. Labels record the sector set the
// spin ran over; the wheel configuration itself is not persisted.
type Spin struct {
	ID          string   `json:"id"`
	Labels      []string `json:"labels"`
	Winner      string   `json:"winner"`
	WinnerIndex int      `json:"winner_index"`
	Rotation    float64  `json:"rotation"`
	Timestamp   int64    `json:"timestamp"`
}
