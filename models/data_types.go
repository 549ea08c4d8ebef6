package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a list of free-form labels stored in a JSONB column
// (amenities, tags, skills, order types). It serializes to a plain JSON
// array on both the API and the database side.
type StringList []string

// Value implements [driver.Valuer]. A nil list is stored as an empty JSON
// array so that column defaults and reads stay uniform.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// Scan implements [sql.Scanner].
func (l *StringList) Scan(src any) error {
	return scanJSONB(src, l)
}

// Int64List is a list of entity identifiers stored in a JSONB column
// (staff assignments).
type Int64List []int64

// Value implements [driver.Valuer]. A nil list is stored as an empty JSON
// array.
func (l Int64List) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// Scan implements [sql.Scanner].
func (l *Int64List) Scan(src any) error {
	return scanJSONB(src, l)
}

// Contains reports whether id is present in the list.
func (l Int64List) Contains(id int64) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// CountMap maps a label to a count, stored in a JSONB column (seating
// arrangements, parking slots).
type CountMap map[string]int

// Value implements [driver.Valuer]. A nil map is stored as an empty JSON
// object.
func (m CountMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements [sql.Scanner].
func (m *CountMap) Scan(src any) error {
	return scanJSONB(src, m)
}

// scanJSONB decodes a JSONB column value into dst. The pgx driver hands
// JSONB over as []byte; string and nil are handled for completeness.
func scanJSONB(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("cannot scan %T into JSONB field", src)
	}
}
