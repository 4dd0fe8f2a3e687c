package entity

import (
	"math"
	"strconv"
)

// Price is a fixed-point currency amount held as integer cents. It marshals
// as a JSON number carrying exactly two decimal places, so a stored 500
// renders as 5.00 on the wire.
type Price int64

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Price) UnmarshalJSON(b []byte) error {
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*p = Price(math.Round(f * 100))
	return nil
}

func (p Price) String() string {
	return strconv.FormatFloat(float64(p)/100, 'f', 2, 64)
}
