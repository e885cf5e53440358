package records

import "time"

// TenderStatus represents the state of a tender
type TenderStatus string

const (
	TenderOpen    TenderStatus = "open"
	TenderClosed  TenderStatus = "closed"
	TenderAwarded TenderStatus = "awarded"
)

// Tender is a published tender notice
type Tender struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Deadline    time.Time    `json:"deadline"`
	Value       float64      `json:"value"`
	Location    string       `json:"location"`
	Sector      string       `json:"sector"`
	Status      TenderStatus `json:"status"`
}

// RecordID implements Record
func (t Tender) RecordID() string {
	return t.ID
}

// IsOpen reports whether the tender still accepts bids
func (t Tender) IsOpen() bool {
	return t.Status == TenderOpen
}
