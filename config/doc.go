// Package config loads the observability configuration from the environment
// or from YAML. Absence of the jaeger endpoint or the stats server selects the
// no-op variant of the corresponding facade.
package config
