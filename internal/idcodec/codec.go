package idcodec

import (
	"errors"
	"fmt"
	"math"
	"time"

	sqids "github.com/sqids/sqids-go"
)

// Codec turns internal integer record IDs into opaque strings and back.
// Every Encode mixes the current timestamp into the sequence, so the same
// id yields a different string on each call; only Decode can recover it.
type Codec struct {
	s *sqids.Sqids
}

var ErrInvalidID = errors.New("id must be a positive integer")

// New builds a codec over the given alphabet. minLength pads the output so
// small ids do not produce short, guessable strings.
func New(alphabet string, minLength uint8) (*Codec, error) {
	s, err := sqids.New(sqids.Options{
		Alphabet:  alphabet,
		MinLength: minLength,
	})
	if err != nil {
		return nil, fmt.Errorf("idcodec: %w", err)
	}
	return &Codec{s: s}, nil
}

// Encode packs the digits of ssmmddMM, the id as a single element, and the
// digits of yyyy into one sqids string. The id must occupy exactly one
// element slot (any non-negative int64 does), or Decode's fixed offset
// would no longer find it.
func (c *Codec) Encode(id int64) (string, error) {
	if id < 0 {
		return "", ErrInvalidID
	}
	now := time.Now()
	nums := make([]uint64, 0, 13)
	nums = appendDigits(nums, fmt.Sprintf("%02d%02d%02d%02d",
		now.Second(), now.Minute(), now.Day(), int(now.Month())))
	nums = append(nums, uint64(id))
	nums = appendDigits(nums, fmt.Sprintf("%04d", now.Year()))
	return c.s.Encode(nums)
}

// Decode recovers the id: it sits fifth from the end of the decoded
// sequence (one id element followed by four year digits). Any failure —
// characters outside the alphabet, a sequence that is too short, a value
// that cannot be an id — yields the 0 sentinel, which callers must treat
// as not-found rather than a valid id.
func (c *Codec) Decode(s string) int64 {
	nums := c.s.Decode(s)
	if len(nums) < 5 {
		return 0
	}
	id := nums[len(nums)-5]
	if id > math.MaxInt64 {
		return 0
	}
	return int64(id)
}

func appendDigits(nums []uint64, s string) []uint64 {
	for _, r := range s {
		nums = append(nums, uint64(r-'0'))
	}
	return nums
}
