package domain

import "strings"

// Denomination is a US coin. Its numeric value is the coin's worth in cents.
type Denomination int

const (
	Penny   Denomination = 1
	Nickel  Denomination = 5
	Dime    Denomination = 10
	Quarter Denomination = 25
)

// Denominations lists every coin in ascending value order.
var Denominations = [...]Denomination{Penny, Nickel, Dime, Quarter}

// Cents returns the coin's value in cents.
func (d Denomination) Cents() int { return int(d) }

// Key is the stable lowercase identifier used on the wire.
func (d Denomination) Key() string {
	switch d {
	case Penny:
		return "penny"
	case Nickel:
		return "nickel"
	case Dime:
		return "dime"
	case Quarter:
		return "quarter"
	default:
		return ""
	}
}

func (d Denomination) String() string { return d.Key() }

// Valid reports whether d is one of the four known coins.
func (d Denomination) Valid() bool { return d.index() >= 0 }

func (d Denomination) index() int {
	for i, v := range Denominations {
		if v == d {
			return i
		}
	}
	return -1
}

// ParseDenomination maps a wire key to its coin.
func ParseDenomination(key string) (Denomination, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	for _, d := range Denominations {
		if d.Key() == k {
			return d, nil
		}
	}
	return 0, ErrUnknownDenomination
}

// Selection holds how many coins of each denomination are selected,
// indexed in Denominations order.
type Selection [len(Denominations)]int

// Count returns the number of selected coins of d.
func (s Selection) Count(d Denomination) int {
	i := d.index()
	if i < 0 {
		return 0
	}
	return s[i]
}

// Total is the selection's value in cents.
func (s Selection) Total() int {
	total := 0
	for i, d := range Denominations {
		total += d.Cents() * s[i]
	}
	return total
}
