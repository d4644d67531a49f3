package expense

import "time"

// Turn is one chat turn that produced expenses. It is the unit written to the
// journal and published on the expenses topic.
type Turn struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Currency  string    `json:"currency"`
	Records   []Record  `json:"records"`
	CreatedAt time.Time `json:"created_at"`
}

// Entry is a journaled record together with the turn it came from.
type Entry struct {
	Record
	TurnID    string
	Currency  string
	CreatedAt time.Time
}
