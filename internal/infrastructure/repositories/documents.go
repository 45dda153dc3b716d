package repositories

import "encoding/json"

// Document lists are stored as JSON text columns.

func encodeDocuments(docs []string) string {
	if len(docs) == 0 {
		return "[]"
	}
	b, err := json.Marshal(docs)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeDocuments(raw string) []string {
	if raw == "" {
		return nil
	}
	var docs []string
	if err := json.Unmarshal([]byte(raw), &docs); err != nil {
		return nil
	}
	return docs
}
