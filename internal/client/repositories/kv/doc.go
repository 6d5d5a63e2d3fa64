// Package kv is the local persistence adapter: a durable key/value store that
// every other client component treats as the record of truth.
//
// Values are opaque bytes; GetJSON and SetJSON add the JSON convention used
// for domain entities. Get returns (nil, nil) for a missing key so callers
// can treat absence and corruption the same way.
//
//	repo := kv.NewSQLiteRepository(db)
//	_ = kv.SetJSON(ctx, repo, "safety_plan.current", plan)
//	plan, err := kv.GetJSON[models.SafetyPlan](ctx, repo, "safety_plan.current")
package kv
