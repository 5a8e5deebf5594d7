package csvcodec

import (
	"strconv"
	"strings"
	"time"

	"github.com/roach88/tally/internal/inventory"
)

// fieldsPerRecord is the exact field count of a data line.
const fieldsPerRecord = 5

// Unmarshal parses inventory text into items, in file order.
//
// The first line is skipped unconditionally as the header. Empty lines
// are ignored. Every other line must split on commas into exactly five
// fields; each field is trimmed before parsing. The first malformed line
// aborts the whole parse with a ParseError - there is no skip-and-continue,
// so a failed import never applies partially.
//
// Names are taken as-is, including blank ones: a file is trusted input,
// unlike the interactive add path.
func Unmarshal(data []byte) ([]*inventory.Item, error) {
	lines := strings.Split(string(data), "\n")

	var items []*inventory.Item
	for i, line := range lines {
		if i == 0 {
			continue // header
		}
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		item, err := parseLine(line, i+1)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// parseLine parses one data line. lineNo is 1-based from the top of the
// input, for error reporting.
func parseLine(line string, lineNo int) (*inventory.Item, error) {
	parts := strings.Split(line, ",")
	if len(parts) != fieldsPerRecord {
		return nil, &ParseError{Code: ErrCodeWrongFieldCount, Line: lineNo, Value: line}
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	name := parts[0]

	category, ok := inventory.ParseCategory(parts[1])
	if !ok {
		return nil, &ParseError{Code: ErrCodeUnknownCategory, Line: lineNo, Field: "category", Value: parts[1]}
	}

	quantity, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, &ParseError{Code: ErrCodeInvalidQuantity, Line: lineNo, Field: "quantity", Value: parts[2]}
	}

	price, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return nil, &ParseError{Code: ErrCodeInvalidPrice, Line: lineNo, Field: "price", Value: parts[3]}
	}

	lastTransaction, err := parseTimestamp(parts[4])
	if err != nil {
		return nil, &ParseError{Code: ErrCodeInvalidTimestamp, Line: lineNo, Field: "timestamp", Value: parts[4]}
	}

	return &inventory.Item{
		Name:            name,
		Quantity:        quantity,
		Category:        category,
		Price:           price,
		LastTransaction: lastTransaction,
	}, nil
}

// parseTimestamp accepts second- or minute-precision ISO-8601 local
// date-time.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(timeLayout, s, time.Local); err == nil {
		return t, nil
	}
	return time.ParseInLocation(timeLayoutMinutes, s, time.Local)
}
