// Package telemetry exposes Prometheus metrics for tsp solves.
//
// A Collector owns a private registry, so several collectors (for example one
// per test) never clash on registration. Wire it into a solve with:
//
//	c := telemetry.NewCollector("eutsp")
//	res, err := tsp.Solve(ctx, cm, tsp.WithSwapHook(c.SwapHook()))
//	c.ObserveResult(res, err)
package telemetry
