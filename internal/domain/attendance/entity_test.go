package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDerivedStatus(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name string
		att  Attendance
		want string
	}{
		{
			name: "no timestamps derives absent",
			att:  Attendance{},
			want: StatusAbsent,
		},
		{
			name: "check-in only derives present",
			att:  Attendance{TimeIn: &now},
			want: StatusPresent,
		},
		{
			name: "check-in and check-out derives present",
			att:  Attendance{TimeIn: &now, TimeOut: &now},
			want: StatusPresent,
		},
		{
			name: "stored status wins over derivation",
			att:  Attendance{Status: "HALF_DAY", TimeIn: &now},
			want: "HALF_DAY",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.att.DerivedStatus())
		})
	}
}
