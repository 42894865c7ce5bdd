package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidToken is returned by Decode for tokens it did not produce.
var ErrInvalidToken = errors.New("invalid pagination token")

// Cursor is the opaque pagination state we encode/decode.
// CreatedUnix (in millis) + ID establish a stable cursor over pages sorted
// newest first.
type Cursor struct {
	ID          string `json:"id"`
	CreatedUnix int64  `json:"created_unix,omitempty"`
}

// At builds the cursor pointing at a record.
func At(id string, created time.Time) Cursor {
	return Cursor{ID: id, CreatedUnix: created.UnixMilli()}
}

// IsZero reports whether this is the first-page cursor.
func (c Cursor) IsZero() bool {
	return c.ID == "" && c.CreatedUnix == 0
}

// Precedes reports whether a record at (id, created) comes after the cursor
// in newest-first order, i.e. belongs to the next page.
func (c Cursor) Precedes(id string, created time.Time) bool {
	if c.IsZero() {
		return true
	}
	ms := created.UnixMilli()
	return ms < c.CreatedUnix || (ms == c.CreatedUnix && id < c.ID)
}

// Encode converts a Cursor into a Base64 string.
func Encode(c Cursor) (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cursor: %w", err)
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// Decode parses a Base64 string into a Cursor.
// Empty token → empty cursor (first page).
func Decode(token string) (Cursor, error) {
	if token == "" {
		return Cursor{}, nil
	}

	b, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, ErrInvalidToken
	}

	var c Cursor
	if err := json.Unmarshal(b, &c); err != nil {
		return Cursor{}, ErrInvalidToken
	}
	return c, nil
}
