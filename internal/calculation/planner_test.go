package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func TestComputeContribution_GoalInReach(t *testing.T) {
	plan, err := ComputeContribution(d(130000), d(10000), d(23500), 26, 20)
	require.NoError(t, err)

	assert.True(t, plan.RemainingAmount.Equal(d(13500)), "remaining amount: got %s", plan.RemainingAmount)
	assert.True(t, plan.RemainingGrossPay.Equal(d(100000)), "remaining gross pay: got %s", plan.RemainingGrossPay)
	assert.True(t, plan.RequiredPercent.Equal(d(13.5)), "required percent: got %s", plan.RequiredPercent)
	assert.True(t, plan.PerCheck.Equal(d(675)), "per check: got %s", plan.PerCheck)
	assert.False(t, plan.GoalMet())
}

func TestComputeContribution_GoalExceeded(t *testing.T) {
	plan, err := ComputeContribution(d(130000), d(25000), d(23500), 26, 20)
	require.NoError(t, err)

	assert.True(t, plan.RemainingAmount.Equal(d(-1500)), "remaining amount: got %s", plan.RemainingAmount)
	assert.True(t, plan.RequiredPercent.IsZero(), "required percent should be zero, got %s", plan.RequiredPercent)
	assert.True(t, plan.PerCheck.IsZero(), "per check should be zero, got %s", plan.PerCheck)
	assert.True(t, plan.GoalMet())
}

func TestComputeContribution_GoalExactlyMet(t *testing.T) {
	plan, err := ComputeContribution(d(90000), d(23500), d(23500), 26, 5)
	require.NoError(t, err)

	assert.True(t, plan.RemainingAmount.IsZero())
	assert.True(t, plan.RequiredPercent.IsZero())
	assert.True(t, plan.PerCheck.IsZero())
}

func TestComputeContribution_NoRemainingPay(t *testing.T) {
	// zero salary leaves nothing to contribute from even though the goal is unmet
	plan, err := ComputeContribution(decimal.Zero, d(1000), d(23500), 26, 10)
	require.NoError(t, err)

	assert.True(t, plan.RemainingAmount.Equal(d(22500)))
	assert.True(t, plan.RemainingGrossPay.IsZero())
	assert.True(t, plan.RequiredPercent.IsZero())
	assert.True(t, plan.PerCheck.IsZero())
}

func TestComputeContribution_NegativeSalary(t *testing.T) {
	plan, err := ComputeContribution(d(-52000), d(0), d(23500), 26, 13)
	require.NoError(t, err)

	assert.True(t, plan.RemainingGrossPay.Equal(d(-26000)))
	assert.True(t, plan.RequiredPercent.IsZero())
	assert.True(t, plan.PerCheck.IsZero())
}

func TestComputeContribution_RequiredPercentNotCapped(t *testing.T) {
	// $10,400 salary over 26 periods = $400/period; 2 periods left = $800 of pay
	plan, err := ComputeContribution(d(10400), d(0), d(1600), 26, 2)
	require.NoError(t, err)

	assert.True(t, plan.RequiredPercent.Equal(d(200)), "got %s", plan.RequiredPercent)
	assert.True(t, plan.PerCheck.Equal(d(800)), "got %s", plan.PerCheck)
}

func TestComputeContribution_RemainingGrossPayIsLinear(t *testing.T) {
	base, err := ComputeContribution(d(130000), d(0), d(23500), 26, 1)
	require.NoError(t, err)

	for _, periods := range []int{1, 2, 7, 13, 26} {
		plan, err := ComputeContribution(d(130000), d(0), d(23500), 26, periods)
		require.NoError(t, err)
		expected := base.RemainingGrossPay.Mul(decimal.NewFromInt(int64(periods)))
		assert.True(t, plan.RemainingGrossPay.Equal(expected),
			"periods %d: expected %s, got %s", periods, expected, plan.RemainingGrossPay)
	}
}

func TestComputeContribution_YTDAtOrAboveGoalAlwaysZero(t *testing.T) {
	cases := []struct {
		salary    float64
		ytd, goal float64
		total     int
		remaining int
	}{
		{130000, 23500, 23500, 26, 20},
		{50000, 40000, 23500, 12, 3},
		{0, 10, 0, 52, 52},
		{250000, 31000, 31000, 24, 1},
	}

	for _, tc := range cases {
		plan, err := ComputeContribution(d(tc.salary), d(tc.ytd), d(tc.goal), tc.total, tc.remaining)
		require.NoError(t, err)
		assert.True(t, plan.RequiredPercent.IsZero(), "case %+v", tc)
		assert.True(t, plan.PerCheck.IsZero(), "case %+v", tc)
	}
}

func TestComputeContribution_RejectsNonPositivePeriods(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		remaining int
	}{
		{"zero total periods", 0, 10},
		{"negative total periods", -26, 10},
		{"zero remaining periods", 26, 0},
		{"negative remaining periods", 26, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeContribution(d(130000), d(0), d(23500), tt.total, tt.remaining)
			require.Error(t, err)
			assert.True(t, IsDomainError(err), "expected DomainError, got %T", err)
		})
	}
}
