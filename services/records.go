package services

import (
	"encoding/json"
	"fmt"

	"balneario-backend/store"
)

// loadRecords reads a whole collection and decodes every record into T.
func loadRecords[T any](st store.Store, collection string) ([]T, error) {
	raws, err := st.LoadAll(collection)
	if err != nil {
		return nil, err
	}
	records := make([]T, 0, len(raws))
	for _, raw := range raws {
		var record T
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, fmt.Errorf("decode %s record: %w", collection, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// saveRecords encodes every record and replaces the whole collection.
func saveRecords[T any](st store.Store, collection string, records []T) error {
	raws := make([]json.RawMessage, 0, len(records))
	for _, record := range records {
		raw, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("encode %s record: %w", collection, err)
		}
		raws = append(raws, raw)
	}
	return st.SaveAll(collection, raws)
}
