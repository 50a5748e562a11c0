// Package slotmetrics instruments signal slots with Prometheus collectors:
// an invocation counter and a latency histogram, labelled by signal and slot.
//
// Instrumentation is opt-in per slot through signal.Wrap:
//
//	m, err := slotmetrics.New(prometheus.DefaultRegisterer, slotmetrics.WithNamespace("app"))
//	if err != nil {
//		return err
//	}
//	click.Connect(signal.Wrap(onClick, slotmetrics.Middleware[int](m, "click")))
package slotmetrics
