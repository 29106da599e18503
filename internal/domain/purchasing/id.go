package purchasing

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// IDLength is the number of base-36 characters in a generated item id
const IDLength = 7

// idSpace is 36^IDLength
const idSpace = 78364164096

// GenerateID returns a short random base-36 token. Ids are unique with high
// probability within one editing session; they are not secrets.
func GenerateID() string {
	u := uuid.New()
	n := binary.BigEndian.Uint64(u[8:]) % idSpace
	s := strconv.FormatUint(n, 36)
	if len(s) < IDLength {
		s = strings.Repeat("0", IDLength-len(s)) + s
	}
	return s
}

// NewItemID returns an id that no item in items already uses
func NewItemID(items []LineItem) string {
	for {
		id := GenerateID()
		if indexOf(items, id) < 0 {
			return id
		}
	}
}

func indexOf(items []LineItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
