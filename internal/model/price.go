package model

// Price is an hourly price that may not have been published yet.
// Valid distinguishes "no value from the feed" from a legitimate price of 0,
// so a zero price is never treated as absent.
type Price struct {
	Value float64
	Valid bool
}

// PriceOf returns a present price.
func PriceOf(v float64) Price {
	return Price{Value: v, Valid: true}
}

// NoPrice returns an absent price placeholder.
func NoPrice() Price {
	return Price{}
}
