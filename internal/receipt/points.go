package receipt

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Points computes the score for a receipt as the sum of six independent
// rules. A rule that cannot parse its input contributes 0 instead of
// failing, so a resolved receipt always scores to an integer.
func Points(rc *Receipt) int {
	return retailerPoints(rc.Retailer) +
		totalPoints(rc.Total) +
		itemCountPoints(rc.Items) +
		descriptionPoints(rc.Items) +
		datePoints(rc.PurchaseDate) +
		timePoints(rc.PurchaseTime)
}

// retailerPoints awards one point per word character (letter, digit or
// underscore) in the retailer name.
func retailerPoints(retailer string) int {
	points := 0
	for _, r := range retailer {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			points++
		}
	}
	return points
}

// totalPoints awards 50 points when the total is a whole-dollar amount and
// 25 when it is a multiple of 0.25. Both bonuses stack.
func totalPoints(total string) int {
	v, err := strconv.ParseFloat(total, 64)
	if err != nil {
		return 0
	}
	points := 0
	if math.Mod(v, 1) == 0 {
		points += 50
	}
	if math.Mod(v, 0.25) == 0 {
		points += 25
	}
	return points
}

// itemCountPoints awards 5 points for every two items on the receipt.
func itemCountPoints(items []LineItem) int {
	return len(items) / 2 * 5
}

// descriptionPoints awards ceil(price * 0.2) for every item whose trimmed
// description length is a multiple of 3. The rule is a single atomic pass:
// an unparseable price on any item zeroes the whole contribution, never
// partial credit. A description that trims to empty still qualifies
// (0 % 3 == 0); callers rely on that exact arithmetic.
func descriptionPoints(items []LineItem) int {
	points := 0
	for _, item := range items {
		price, err := strconv.ParseFloat(item.Price, 64)
		if err != nil {
			return 0
		}
		trimmed := strings.TrimSpace(item.ShortDescription)
		if utf8.RuneCountInString(trimmed)%3 == 0 {
			points += int(math.Ceil(price * 0.2))
		}
	}
	return points
}

// datePoints awards 6 points when the day of a YYYY-MM-DD purchase date is
// odd. Anything that is not three dash-separated segments with a four-digit
// year, or whose day segment is not numeric, scores 0.
func datePoints(date string) int {
	parts := strings.Split(date, "-")
	if len(parts) != 3 || len(parts[0]) != 4 {
		return 0
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0
	}
	if day%2 != 0 {
		return 6
	}
	return 0
}

// timePoints awards 10 points for purchases in hours 14 through 16. The
// check is hour-granular and deliberately ignores the minute segment, so
// 16:59 still scores. Anything that is not two colon-separated segments
// with a numeric hour scores 0.
func timePoints(t string) int {
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return 0
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	if hour >= 14 && hour <= 16 {
		return 10
	}
	return 0
}
