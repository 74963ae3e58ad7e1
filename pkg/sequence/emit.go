package sequence

import (
	"encoding/json"
	"fmt"
	"io"
)

// EmitJSONL writes records in their current order, one JSON object per line,
// no enclosing array.
func EmitJSONL(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encode record %d: %w", rec.ID, err)
		}
	}
	return nil
}
