package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
}

func TestLeaveOverlaps(t *testing.T) {
	existing := LeaveRequest{StartDate: day(10), EndDate: day(14)}

	cases := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"identical range", day(10), day(14), true},
		{"contained range", day(11), day(12), true},
		{"containing range", day(8), day(20), true},
		{"shared start boundary day", day(14), day(18), true},
		{"shared end boundary day", day(5), day(10), true},
		{"single shared day", day(14), day(14), true},
		{"adjacent before", day(5), day(9), false},
		{"adjacent after", day(15), day(20), false},
		{"disjoint", day(1), day(3), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, existing.Overlaps(tc.start, tc.end))
		})
	}
}

func TestValidLeaveType(t *testing.T) {
	assert.True(t, ValidLeaveType(LeaveSick))
	assert.True(t, ValidLeaveType(LeaveCasual))
	assert.True(t, ValidLeaveType(LeaveAnnual))
	assert.False(t, ValidLeaveType(LeaveType("SABBATICAL")))
	assert.False(t, ValidLeaveType(LeaveType("")))
}

func TestPrincipalAuthority(t *testing.T) {
	p := Principal{Subject: "admin", Role: "ADMIN"}
	assert.Equal(t, "ROLE_ADMIN", p.Authority())
	assert.Equal(t, "ADMIN", CanonicalRole("ROLE_ADMIN"))
	assert.Equal(t, "ADMIN", CanonicalRole("ADMIN"))
}
