package slotroute

// Option configures Route via functional arguments.
type Option func(*routeConfig)

// routeConfig holds Route's tunable behaviour. Route starts from
// defaultRouteConfig; the zero value has the preflight check disabled.
type routeConfig struct {
	preflightCapacityCheck bool
	vertexToSlot           map[string]string
}

// defaultRouteConfig returns the configuration Route uses when no Option
// overrides it: the preflight capacity check runs by default, and bridge
// endpoints are treated as slot names directly (no logical-vertex
// projection).
func defaultRouteConfig() routeConfig {
	return routeConfig{
		preflightCapacityCheck: true,
	}
}

// WithPreflightCapacityCheck enables or disables the pre-solve check that
// rejects an input whose forced per-edge width already exceeds capacity,
// before the LP is ever formulated. Enabled by default.
func WithPreflightCapacityCheck(enabled bool) Option {
	return func(c *routeConfig) {
		c.preflightCapacityCheck = enabled
	}
}

// WithVertexToSlot supplies a logical-vertex-name to slot-name projection,
// for callers whose bridge list names logical graph vertices instead of
// slot names directly.
func WithVertexToSlot(m map[string]string) Option {
	return func(c *routeConfig) {
		c.vertexToSlot = m
	}
}
