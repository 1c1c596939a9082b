package sawmill

type options struct {
	topN int
}

// Option configures a Sawmill instance.
type Option func(*options)

// WithTopN sets how many top paths and IPs a summary includes. Default: 10.
func WithTopN(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.topN = n
		}
	}
}

func defaultOptions() options {
	return options{topN: 10}
}
