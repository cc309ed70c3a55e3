package validation

// Config holds the validation defaults loaded from configuration.
type Config struct {
	// SampleCount is the number of records compared field by field.
	SampleCount int `mapstructure:"sample_count" default:"25"`
	// IgnoredMetaKeys are meta keys never compared (volatile editor state).
	IgnoredMetaKeys []string `mapstructure:"ignored_meta_keys" default:"_edit_lock,_edit_last,session_tokens"`
}

// Options is passed explicitly to every validator.
type Options struct {
	// SampleCount is the requested sample size; DefaultSampleCount when <= 0.
	SampleCount int
	// IgnoredMetaKeys are dropped by content readers before comparison.
	IgnoredMetaKeys []string
	// Strategy selects the sample; FirstN when nil.
	Strategy SampleStrategy
}

// Options converts the loaded configuration.
func (c Config) Options() Options {
	return Options{
		SampleCount:     c.SampleCount,
		IgnoredMetaKeys: c.IgnoredMetaKeys,
	}
}

// Sampler returns the configured strategy or FirstN.
func (o Options) Sampler() SampleStrategy {
	if o.Strategy == nil {
		return FirstN{}
	}
	return o.Strategy
}
