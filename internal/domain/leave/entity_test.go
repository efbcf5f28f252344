package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Only pending requests may move; a decided request stays decided.
func TestStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusPending, false},
		{StatusApproved, StatusRejected, false},
		{StatusApproved, StatusPending, false},
		{StatusApproved, StatusApproved, false},
		{StatusRejected, StatusApproved, false},
		{StatusRejected, StatusPending, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, c.from.CanTransitionTo(c.to),
			"%s -> %s", c.from, c.to)
	}
}
