package receipt

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Receipt formats vary widely; these patterns are tuned to common US-style
// tabular receipts. Every extractor degrades to an absent value or a fallback
// rather than failing.
var (
	addressPattern = regexp.MustCompile(`(?i)^.*\d+.*(?:st|street|rd|road|ave|avenue|blvd|boulevard|drive).*$`)
	contactPattern = regexp.MustCompile(`(?i)TEL|FAX|TABLE|#|\d{3}-\d{3}-\d{4}`)
	leadingDate    = regexp.MustCompile(`^\d+[/-]\d+[/-]\d+`)
	timeOfDay      = regexp.MustCompile(`\d{2}:\d{2}`)

	dateTimePattern = regexp.MustCompile(`(?i)(\d{1,2}/\d{1,2}/\d{2,4})\s+\d{1,2}:\d{2}\s*(?:AM|PM)`)
	itemStartDate   = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2}`)
	itemPattern     = regexp.MustCompile(`^(\d+)\s+(.+)$`)
	pricePattern    = regexp.MustCompile(`\$?\s*(\d+\.\d{2})`)

	totalPattern    = regexp.MustCompile(`(?i)(?:TOTAL|AMOUNT|GRAND\s+TOTAL|BALANCE|DUE)\s*\$?\s*(\d+\.\d{2})`)
	subtotalPattern = regexp.MustCompile(`(?i)(?:SUBTOTAL|SUB-TOTAL)\s*\$?\s*(\d+\.\d{2})`)
	tipPattern      = regexp.MustCompile(`(?i)(?:TIP|GRATUITY)\s*\$?\s*(\d+\.\d{2})`)
	taxPattern      = regexp.MustCompile(`(?i)(?:TAX|SALES\s+TAX)\s*\$?\s*(\d+\.\d{2})`)
)

// Parser turns OCR text lines into a structured Receipt. It never fails: any
// field the heuristics cannot find is left absent, and a missing date falls
// back to Now (injected so tests can pin it).
type Parser struct {
	Now func() time.Time
}

// NewParser returns a Parser using the wall clock.
func NewParser() *Parser {
	return &Parser{Now: time.Now}
}

// Parse builds a Receipt from the ordered OCR text lines. The image reference
// is carried through unchanged.
func (p *Parser) Parse(lines []string, imageRef string) Receipt {
	text := strings.Join(lines, "\n")

	date, ok := extractDate(text)
	if !ok {
		date = p.Now()
	}

	return Receipt{
		ID:             ulid.Make().String(),
		ImageRef:       imageRef,
		RestaurantName: extractRestaurantName(lines),
		Date:           date,
		Items:          parseItems(lines),
		Subtotal:       extractFirst(subtotalPattern, text),
		Tax:            extractFirst(taxPattern, text),
		Tip:            extractFirst(tipPattern, text),
		TotalAmount:    extractTotalAmount(text),
	}
}

// extractRestaurantName looks for an address-like line and takes the line
// above it. Failing that, it takes the first of the top five lines that is not
// a phone/table marker, a date or a time. Failing both, "Unknown Restaurant".
func extractRestaurantName(lines []string) string {
	for i, line := range lines {
		if i > 0 && addressPattern.MatchString(strings.TrimSpace(line)) {
			return strings.TrimSpace(lines[i-1])
		}
	}

	for i, line := range lines {
		if i >= 5 {
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" ||
			contactPattern.MatchString(trimmed) ||
			leadingDate.MatchString(trimmed) ||
			timeOfDay.MatchString(trimmed) {
			continue
		}
		return trimmed
	}

	return "Unknown Restaurant"
}

// extractDate finds a "MM/dd/yy hh:mm AM" style timestamp and parses the date
// portion. Two and four digit years both appear in the wild.
func extractDate(text string) (time.Time, bool) {
	m := dateTimePattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	for _, layout := range []string{"01/02/06", "01/02/2006"} {
		if t, err := time.Parse(layout, m[1]); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseItems walks the lines two at a time: a "<qty> <name>" line followed by a
// line carrying the total price for that quantity. Scanning starts after the
// first standalone date token and stops at the subtotal line. A non-matching
// pair advances by one line to resynchronize.
func parseItems(lines []string) []ReceiptItem {
	items := []ReceiptItem{}

	start := 0
	for i, line := range lines {
		if itemStartDate.FindString(line) != "" {
			start = i + 1
			break
		}
	}

	i := start
	for i < len(lines)-1 {
		current := strings.TrimSpace(lines[i])
		next := strings.TrimSpace(lines[i+1])

		if strings.Contains(strings.ToLower(current), "subtotal") {
			break
		}

		itemMatch := itemPattern.FindStringSubmatch(current)
		priceMatch := pricePattern.FindStringSubmatch(next)

		if itemMatch == nil || priceMatch == nil {
			i++
			continue
		}

		quantity, err := strconv.Atoi(itemMatch[1])
		if err != nil || quantity < 1 {
			i++
			continue
		}
		totalPrice, err := strconv.ParseFloat(priceMatch[1], 64)
		if err != nil {
			i++
			continue
		}

		items = append(items, ReceiptItem{
			ID:        ulid.Make().String(),
			Name:      strings.TrimSpace(itemMatch[2]),
			Quantity:  quantity,
			UnitPrice: totalPrice / float64(quantity),
		})
		i += 2
	}

	return items
}

// extractFirst returns the first amount matched by the pattern, or nil.
func extractFirst(pattern *regexp.Regexp, text string) *float64 {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &v
}

// extractTotalAmount returns the last TOTAL-like amount in the text, skipping
// matches where the keyword is really the tail of SUBTOTAL/SUB-TOTAL. Receipts
// often list a pre-tip total before the final one, so the last match wins.
func extractTotalAmount(text string) *float64 {
	var result *float64
	for _, m := range totalPattern.FindAllStringSubmatchIndex(text, -1) {
		prefix := strings.ToUpper(text[:m[0]])
		if strings.HasSuffix(prefix, "SUB") || strings.HasSuffix(prefix, "SUB-") {
			continue
		}
		v, err := strconv.ParseFloat(text[m[2]:m[3]], 64)
		if err != nil {
			continue
		}
		value := v
		result = &value
	}
	return result
}
