/*
Package tracing extends context with the request scoped values shared by the
logging, metrics and opentracing packages: request id, operation id and an
already resolved parent span. Services differ in how they obtain these values,
so this package is the extensibility point; it also provides http middleware
that fills in the request id and operation id from incoming requests.
*/
package tracing
