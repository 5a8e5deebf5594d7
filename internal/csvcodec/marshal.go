package csvcodec

import (
	"strconv"
	"strings"
	"time"

	"github.com/roach88/tally/internal/inventory"
)

// Header is the fixed first line of every inventory file. The field
// order is canonical for both writing and reading.
const Header = "Name,Category,Quantity,Price,LastTransaction"

// timeLayout is ISO-8601 local date-time with seconds, no timezone.
const timeLayout = "2006-01-02T15:04:05"

// timeLayoutMinutes accepts minute-precision timestamps on read.
const timeLayoutMinutes = "2006-01-02T15:04"

// Marshal serializes items to inventory text: the header line, then one
// line per item in the given order, each terminated by a line break.
//
// Prices are written as the shortest decimal that round-trips exactly,
// so Marshal followed by Unmarshal reproduces the field values bit for
// bit. Names are written verbatim; embedded commas are not escaped.
func Marshal(items []*inventory.Item) []byte {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')
	for _, item := range items {
		b.WriteString(item.Name)
		b.WriteByte(',')
		b.WriteString(item.Category.String())
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(item.Quantity))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(item.Price, 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(item.LastTransaction.Format(timeLayout))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// FormatTimestamp renders a last-transaction time in the persisted
// layout. Exposed for presentation-layer display.
func FormatTimestamp(t time.Time) string {
	return t.Format(timeLayout)
}
