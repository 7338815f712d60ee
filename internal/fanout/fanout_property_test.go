package fanout_test

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/fanwait/internal/fanout"
)

// TestRun_CompletionSet_PropertyBased checks that for any N the run reports
// every ordinal in [0, N) exactly once, whatever the interleaving.
func TestRun_CompletionSet_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("every ordinal is reported exactly once", prop.ForAll(
		func(n int) bool {
			var c collector
			res, err := fanout.Run(context.Background(), n, 0, &c, fanout.Options{})
			if err != nil {
				t.Logf("Run(%d) failed: %v", n, err)
				return false
			}
			return res.Units == n && isPermutation(c.sorted(), n)
		},
		gen.IntRange(0, 200),
	))

	properties.Property("bounded runs report the same set", prop.ForAll(
		func(n, limit int) bool {
			var c collector
			_, err := fanout.Run(context.Background(), n, 0, &c, fanout.Options{Limit: limit})
			return err == nil && isPermutation(c.sorted(), n)
		},
		gen.IntRange(0, 60),
		gen.IntRange(-2, 8),
	))

	properties.TestingRun(t)
}
