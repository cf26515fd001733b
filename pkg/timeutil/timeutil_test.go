package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pinToday(t *testing.T, year, month, day int) {
	t.Helper()
	orig := Now
	Now = func() time.Time { return time.Date(year, time.Month(month), day, 15, 30, 0, 0, time.UTC) }
	t.Cleanup(func() { Now = orig })
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2021-10-20")
	require.NoError(t, err)
	assert.Equal(t, Date(2021, 10, 20), d)
	assert.Equal(t, "2021-10-20", FormatDate(d))

	for _, bad := range []string{"20/10/2021", "2021-13-01", "", "2021-02-30"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatDue(t *testing.T) {
	pinToday(t, 2021, 10, 20)

	tests := []struct {
		deadline time.Time
		want     string
	}{
		{Date(2021, 10, 20), "due today"},
		{Date(2021, 10, 21), "due tomorrow"},
		{Date(2021, 10, 25), "due in 5 days"},
		{Date(2021, 10, 19), "overdue by 1 day"},
		{Date(2021, 10, 1), "overdue by 19 days"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDue(tt.deadline))
	}
	assert.True(t, IsOverdue(Date(2021, 10, 19)))
	assert.False(t, IsOverdue(Date(2021, 10, 20)))
}
