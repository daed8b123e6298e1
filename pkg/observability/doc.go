/*
Package observability exposes simulation metrics to Prometheus.

Metrics are fed by domain.LifecycleHooks, so any engine configured with
Metrics.Hooks() is measured without further wiring.
*/
package observability
