package payroll_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/payroll-engine/generic"
	"github.com/warp/payroll-engine/payroll"
)

func TestWorkingDays_Indices(t *testing.T) {
	days := payroll.WorkingDays{payroll.Friday, payroll.Monday, payroll.Wednesday}
	set := days.Indices()

	assert.Equal(t, []int{1, 3, 5}, set.Indices())
	assert.True(t, set.Has(time.Monday))
	assert.False(t, set.Has(time.Sunday))
	assert.Equal(t, 3, set.Len())
}

func TestWorkingDays_Indices_SundayIsZero(t *testing.T) {
	set := payroll.WorkingDays{payroll.Sunday, payroll.Saturday}.Indices()
	assert.Equal(t, []int{0, 6}, set.Indices())
}

func TestWorkingDays_Indices_DropsUnknownLabels(t *testing.T) {
	days := payroll.WorkingDays{"Monday", "Funday", "monday", ""}
	set := days.Indices()

	assert.Equal(t, []int{1}, set.Indices(), "labels are case-sensitive and unknown ones are dropped")
	assert.Equal(t, []payroll.WeekdayLabel{"Funday", "monday", ""}, days.Unknown())
}

func TestWorkingDays_RoundTrip(t *testing.T) {
	days := payroll.ParseWorkingDays("Monday,Wednesday,Friday")
	assert.Equal(t, payroll.WorkingDays{payroll.Monday, payroll.Wednesday, payroll.Friday}, days)
	assert.Equal(t, "Monday,Wednesday,Friday", days.String())

	// Order as supplied is preserved
	shuffled := payroll.WorkingDays{payroll.Saturday, payroll.Tuesday}
	assert.Equal(t, shuffled, payroll.ParseWorkingDays(shuffled.String()))
}

func TestParseWorkingDays_TrimsAndDropsEmpty(t *testing.T) {
	assert.Equal(t,
		payroll.WorkingDays{payroll.Monday, payroll.Friday},
		payroll.ParseWorkingDays(" Monday , ,Friday,"))
	assert.Empty(t, payroll.ParseWorkingDays(""))
	assert.Empty(t, payroll.ParseWorkingDays(" , "))
}

func TestWorkingDaysFromIndices(t *testing.T) {
	days, err := payroll.WorkingDaysFromIndices([]int{5, 1, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, payroll.WorkingDays{payroll.Friday, payroll.Monday, payroll.Wednesday}, days)

	_, err = payroll.WorkingDaysFromIndices([]int{7})
	assert.ErrorIs(t, err, generic.ErrInvalidInput)
}

func TestLabelFor(t *testing.T) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		got, ok := payroll.LabelFor(d).Index()
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}
}
