/*
Package metrics is the statistics facade of the server. Application code
creates Counter, Gauge and Timing handles over a Sink and never talks to a
metrics backend directly.

A Sink is either active, forwarding to a statsd daemon over UDP, or disabled,
accepting every call and doing nothing. CreateSink picks the variant once
from configuration:

	sink, err := metrics.CreateSink("statsd:8125", []string{"env:prod"})
	requests := metrics.NewCounter(sink, "requests", "collection:blocks")
	requests.Increment()

Every handle prepends the sink's configured tags to its own tags.
*/
package metrics
