package medline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

const (
	maxMonth = 12
	maxDay   = 31
)

// monthAbbrevs maps lowercase three-letter month names to month numbers.
var monthAbbrevs = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// yearPattern matches the first four-digit run inside a MedlineDate such as
// "1998 Dec-1999 Jan".
var yearPattern = regexp.MustCompile(`\d{4}`)

// formatMonthOrDay turns a month or day string into its zero-padded
// two-digit form. Accepted inputs are three-letter month abbreviations in
// any case, with or without periods, and plain ASCII digit runs. Numbers
// outside 1..max and anything else are unresolvable.
func formatMonthOrDay(text string, max int) (string, bool) {
	cleaned := strings.TrimSpace(text)
	if n, ok := monthAbbrevs[strings.ToLower(strings.ReplaceAll(cleaned, ".", ""))]; ok {
		return fmt.Sprintf("%02d", n), true
	}
	if cleaned == "" {
		return "", false
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil || n < 1 || n > max {
		return "", false
	}
	return fmt.Sprintf("%02d", n), true
}

// resolvePubDate renders the JournalIssue/PubDate under the given Journal
// element. With yearInfoOnly the result is the year alone. Otherwise the
// non-empty pieces of year, month and day join as "YYYY-MM-DD"; an
// unresolvable month reduces the result to the year, an unresolvable day to
// "YYYY-MM". Dates that only exist as a MedlineDate range contribute their
// first four-digit year.
func resolvePubDate(journal *etree.Element, yearInfoOnly bool) string {
	if journal == nil {
		return ""
	}
	issue := journal.FindElement("JournalIssue")
	if issue == nil {
		return ""
	}
	pubDate := issue.FindElement("PubDate")
	if pubDate == nil {
		return ""
	}

	var year, month, day string
	switch {
	case pubDate.FindElement("Year") != nil:
		year = pubDate.FindElement("Year").Text()
		if !yearInfoOnly {
			if m := pubDate.FindElement("Month"); m != nil {
				if formatted, ok := formatMonthOrDay(m.Text(), maxMonth); ok {
					month = formatted
					if d := pubDate.FindElement("Day"); d != nil {
						if formatted, ok := formatMonthOrDay(d.Text(), maxDay); ok {
							day = formatted
						}
					}
				}
			}
		}
	case pubDate.FindElement("MedlineDate") != nil:
		year = yearPattern.FindString(pubDate.FindElement("MedlineDate").Text())
	}

	if yearInfoOnly || month == "" {
		return year
	}
	parts := make([]string, 0, 3)
	for _, part := range []string{year, month, day} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, "-")
}
