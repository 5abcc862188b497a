package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores a JSON-encoded list of strings in a single text column.
// The upstream schema keeps free-form list fields (deed numbers,
// qualifications, encumbrances and the like) as JSON documents rather than
// join tables.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	encoded, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("encoding string list: %w", err)
	}
	return string(encoded), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported string list source %T", src)
	}

	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}

	var decoded []string
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("decoding string list: %w", err)
	}
	if decoded == nil {
		decoded = []string{}
	}
	*l = StringList(decoded)
	return nil
}

// GormDataType tells GORM to map the list to a plain text column.
func (StringList) GormDataType() string {
	return "text"
}
