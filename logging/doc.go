/*
Package logging provides the two logging surfaces of the server.

The first is structured leveled logging: a Logger wraps zap and exposes just
the APIs needed to instrument the service, with request and component loggers
carried on context.

The second is the debug telemetry channel. A Gate owns the debug and error
sinks of a process; channels created from it write single-line, tab-delimited
records of the form

	<epochMillis>\t<channel>\t<arg1>\t<arg2>...

Arguments that are not strings are encoded as JSON of their loggable
projection (see Loggable and Project). Once the gate is stopped every
emission becomes a no-op for the rest of the process lifetime.
*/
package logging
