package ports

// QuoteMetrics receives one observation per completed quotation.
type QuoteMetrics interface {
	ObserveQuote(strategy, carrier string, freightValue float64)
}
