// Package resource limits how much work batch searches may run at once.
//
// A Controller combines two limits:
//
//   - Concurrency: a weighted semaphore caps the number of in-flight lookups.
//   - Throughput: a token bucket caps lookups per second.
//
//	rc := resource.NewController(resource.Config{
//	    MaxConcurrency: 4,
//	    LookupsPerSec:  10_000,
//	})
//
//	if err := rc.Acquire(ctx); err != nil {
//	    return err
//	}
//	defer rc.Release()
//
// All methods handle a nil Controller gracefully - they become no-ops.
package resource
