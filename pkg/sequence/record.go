package sequence

import "time"

// timestampLayout keeps the day-before-month ordering downstream consumers
// already parse. Do not swap to 2006-01-02 without a contract change.
const timestampLayout = "2006-02-01, 15:04:05"

// Record is one detected item. Field order here is the output field order;
// attribute fields are dropped from the JSON when unset.
type Record struct {
	ID        int    `json:"id"`
	Timestamp string `json:"timestamp"`
	Colour    string `json:"colour,omitempty"`
	Material  string `json:"material,omitempty"`
}

// BuildRecord stamps a record with its sequence id and the wall-clock second
// that id maps to, offset from the run start.
func BuildRecord(id int, start time.Time) Record {
	return Record{
		ID:        id,
		Timestamp: start.Add(time.Duration(id-1) * time.Second).Format(timestampLayout),
	}
}
