package domain

import (
	"fmt"
	"strings"
)

// Token is a symbolic "past N days" selector. Label is what the UI shows,
// Query is what goes into ?period=.
type Token struct {
	Label   string
	Query   string
	Days    int
	Aliases []string
}

// Tokens is ordered as presented in the period selector.
var Tokens = []Token{
	{Label: "Past 24 hours", Query: "24h", Days: 1, Aliases: []string{"24 Hours", "1 Day"}},
	{Label: "Past 7 days", Query: "7d", Days: 7, Aliases: []string{"7 Days"}},
	{Label: "Past 14 days", Query: "14d", Days: 14, Aliases: []string{"14 Days"}},
	{Label: "Past 30 days", Query: "30d", Days: 30, Aliases: []string{"30 Days"}},
	{Label: "Past 90 days", Query: "90d", Days: 90, Aliases: []string{"90 Days", "3 Months"}},
	{Label: "Past 365 days", Query: "365d", Days: 365, Aliases: []string{"365 Days", "1 Year"}},
}

const DefaultTokenDays = 7

func DefaultToken() Token {
	t, _ := TokenByDays(DefaultTokenDays)
	return t
}

func TokenByDays(days int) (Token, bool) {
	for _, t := range Tokens {
		if t.Days == days {
			return t, true
		}
	}
	return Token{}, false
}

// LookupToken matches a label, query value or legacy alias, ignoring case.
func LookupToken(s string) (Token, bool) {
	s = strings.TrimSpace(s)
	for _, t := range Tokens {
		if strings.EqualFold(s, t.Label) || strings.EqualFold(s, t.Query) {
			return t, true
		}
		for _, a := range t.Aliases {
			if strings.EqualFold(s, a) {
				return t, true
			}
		}
	}
	return Token{}, false
}

// ValidateTokens checks that the table is a bijection between labels and
// query values and that the parser routes every entry back to its own row.
func ValidateTokens(p *Parser) error {
	labels := make(map[string]bool, len(Tokens))
	queries := make(map[string]bool, len(Tokens))

	for _, t := range Tokens {
		if t.Label == "" || t.Query == "" || t.Days < 1 {
			return fmt.Errorf("period token %+v: incomplete", t)
		}
		if labels[strings.ToLower(t.Label)] {
			return fmt.Errorf("period token %q: duplicate label", t.Label)
		}
		if queries[strings.ToLower(t.Query)] {
			return fmt.Errorf("period token %q: duplicate query value %q", t.Label, t.Query)
		}
		labels[strings.ToLower(t.Label)] = true
		queries[strings.ToLower(t.Query)] = true

		for _, s := range append([]string{t.Label, t.Query}, t.Aliases...) {
			res, err := p.Parse(s)
			if err != nil {
				return fmt.Errorf("period token %q: %w", s, err)
			}
			if res.Kind != KindPastNUnits || res.Days != t.Days {
				return fmt.Errorf("period token %q: parsed as %s/%d, want %s/%d",
					s, res.Kind, res.Days, KindPastNUnits, t.Days)
			}
		}
	}

	if _, ok := TokenByDays(DefaultTokenDays); !ok {
		return fmt.Errorf("default period of %d days has no token", DefaultTokenDays)
	}
	return nil
}
