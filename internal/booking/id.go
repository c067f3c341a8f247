package booking

import (
	"fmt"
	"strconv"
	"strings"
)

// BookingID is the canonical booking identifier. Humans see the derived
// reference code (BKG-000042); everything internal uses the numeric id.
type BookingID int64

// refPrefix is the display prefix for reference codes.
const refPrefix = "BKG-"

// RefCode renders the one canonical external display form of the id.
func (id BookingID) RefCode() string {
	return fmt.Sprintf("%s%06d", refPrefix, int64(id))
}

func (id BookingID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseID parses a booking identifier supplied at the API boundary. It accepts
// either the raw numeric id ("42") or the reference code ("BKG-000042",
// case-insensitive). This is the only place reference codes are interpreted;
// they never leak into internal logic.
func ParseID(s string) (BookingID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidReference
	}

	if rest, ok := strings.CutPrefix(strings.ToUpper(s), refPrefix); ok {
		s = rest
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, ErrInvalidReference
	}
	return BookingID(n), nil
}
