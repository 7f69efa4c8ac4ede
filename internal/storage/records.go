package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/quickchat/internal/records"
)

// DefaultRecordsFile is the import file read when none is configured.
const DefaultRecordsFile = "messages.json"

// LoadRecords reads a JSON array of records from path.
func LoadRecords(path string) ([]records.Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	var list []records.Record
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, fmt.Errorf("decode records %s: %w", path, err)
	}
	return list, nil
}
