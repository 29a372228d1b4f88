package sacred

// EngineOption configures an Engine during creation.
//
// Example:
//
//	eng := sacred.NewEngine(surface,
//		sacred.WithSettings(mySettings))
type EngineOption func(*Engine)

// WithSettings sets the initial settings tree. Without this option the
// engine starts from DefaultSettings.
func WithSettings(s Settings) EngineOption {
	return func(e *Engine) {
		e.settings = *s.Normalize()
	}
}

// WithNoiseField injects a pre-built noise field, sharing one field
// between engines or substituting a test double.
func WithNoiseField(n *NoiseField) EngineOption {
	return func(e *Engine) {
		e.noise = n
	}
}
