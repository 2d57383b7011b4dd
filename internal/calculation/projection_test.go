package calculation

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fireplan/fire-calculator/internal/domain"
)

func TestFullFITarget(t *testing.T) {
	target := FullFITarget(decimal.NewFromInt(40000))
	assert.True(t, target.Equal(decimal.NewFromInt(1000000)), "got %s", target)
}

func TestCoastFITarget(t *testing.T) {
	expenses := decimal.NewFromInt(40000)

	t.Run("whole years to retirement", func(t *testing.T) {
		target := CoastFITarget(expenses,
			decimal.NewFromFloat(0.07), decimal.NewFromInt(60), decimal.NewFromInt(30))

		expected := 1000000.0 / math.Pow(1.07, 30)
		diff := target.Sub(decimal.NewFromFloat(expected)).Abs()
		assert.True(t, diff.LessThan(decimal.NewFromInt(1)),
			"expected ~%.2f, got %s", expected, target.StringFixed(2))
	})

	t.Run("fractional years to retirement", func(t *testing.T) {
		target := CoastFITarget(expenses,
			decimal.NewFromFloat(0.07), decimal.NewFromFloat(58.5), decimal.NewFromInt(30))

		expected := 1000000.0 / math.Pow(1.07, 28.5)
		diff := target.Sub(decimal.NewFromFloat(expected)).Abs()
		assert.True(t, diff.LessThan(decimal.NewFromInt(1)),
			"expected ~%.2f, got %s", expected, target.StringFixed(2))
	})

	t.Run("zero growth means coast equals full FI", func(t *testing.T) {
		target := CoastFITarget(expenses,
			decimal.Zero, decimal.NewFromInt(60), decimal.NewFromInt(30))
		assert.True(t, target.Equal(decimal.NewFromInt(1000000)), "got %s", target)
	})

	t.Run("coast target is below full FI with positive growth", func(t *testing.T) {
		target := CoastFITarget(expenses,
			decimal.NewFromFloat(0.07), decimal.NewFromInt(60), decimal.NewFromInt(30))
		assert.True(t, target.LessThan(decimal.NewFromInt(1000000)))
	})
}

func TestMilestoneTargets(t *testing.T) {
	input := &domain.PlannerInput{
		AnnualExpenses: decimal.NewFromInt(40000),
		ExpectedReturn: decimal.NewFromFloat(0.07),
		RetirementAge:  decimal.NewFromInt(60),
		CurrentAge:     decimal.NewFromInt(30),
	}

	targets := MilestoneTargets(input)
	require.Len(t, targets, 5)

	assert.True(t, targets[domain.MilestoneBaristaFI].Equal(decimal.NewFromInt(500000)))
	assert.True(t, targets[domain.MilestoneLeanFI].Equal(decimal.NewFromInt(750000)))
	assert.True(t, targets[domain.MilestoneFullFI].Equal(decimal.NewFromInt(1000000)))
	assert.True(t, targets[domain.MilestoneFatFI].Equal(decimal.NewFromInt(1500000)))
	assert.True(t, targets[domain.MilestoneCoastFI].LessThan(targets[domain.MilestoneBaristaFI]))
}

func TestProject(t *testing.T) {
	targets := map[domain.MilestoneKind]decimal.Decimal{
		domain.MilestoneFullFI: decimal.NewFromInt(1000000),
	}

	t.Run("growth then contribution each year", func(t *testing.T) {
		points, milestones := Project(
			decimal.NewFromInt(50000), decimal.NewFromInt(10000),
			decimal.NewFromFloat(0.05), 50, targets)

		require.Len(t, points, 50)
		assert.Equal(t, 1, points[0].Year)
		assert.Equal(t, 50, points[49].Year)

		// 50000 * 1.05 + 10000
		assert.True(t, points[0].Balance.Equal(decimal.NewFromInt(62500)),
			"year 1 balance: got %s", points[0].Balance.StringFixed(2))

		// balance_n = 250000 * 1.05^n - 200000 first crosses 1M in year 33
		milestone := milestones[domain.MilestoneFullFI]
		require.Equal(t, domain.MilestoneAchievedAtYear, milestone.Status.State)
		assert.Equal(t, 33, milestone.Status.Year)
	})

	t.Run("balances strictly increase with positive growth", func(t *testing.T) {
		points, _ := Project(
			decimal.NewFromInt(50000), decimal.NewFromInt(10000),
			decimal.NewFromFloat(0.05), 50, targets)

		for i := 1; i < len(points); i++ {
			assert.True(t, points[i].Balance.GreaterThan(points[i-1].Balance),
				"balance did not grow between year %d and %d", points[i-1].Year, points[i].Year)
		}
	})

	t.Run("year one crossing is achieved immediately", func(t *testing.T) {
		_, milestones := Project(
			decimal.NewFromInt(2000000), decimal.Zero,
			decimal.NewFromFloat(0.05), 50, targets)

		milestone := milestones[domain.MilestoneFullFI]
		assert.Equal(t, domain.MilestoneAchievedImmediately, milestone.Status.State)
		assert.Zero(t, milestone.Status.Year)
		assert.True(t, milestone.Status.Achieved())
	})

	t.Run("unreachable target stays unmet", func(t *testing.T) {
		_, milestones := Project(
			decimal.NewFromInt(1000), decimal.Zero,
			decimal.Zero, 50, targets)

		milestone := milestones[domain.MilestoneFullFI]
		assert.Equal(t, domain.MilestoneUnmet, milestone.Status.State)
		assert.False(t, milestone.Status.Achieved())
	})

	t.Run("achieved years follow target order", func(t *testing.T) {
		input := &domain.PlannerInput{
			AnnualExpenses: decimal.NewFromInt(40000),
			ExpectedReturn: decimal.NewFromFloat(0.07),
			RetirementAge:  decimal.NewFromInt(60),
			CurrentAge:     decimal.NewFromInt(30),
		}
		allTargets := MilestoneTargets(input)

		_, milestones := Project(
			decimal.NewFromInt(50000), decimal.NewFromInt(30000),
			decimal.NewFromFloat(0.07), 50, allTargets)

		require.Len(t, milestones, 5)

		// Coast through fat FI, sorted ascending by target
		kinds := domain.AllMilestoneKinds()
		for i := 1; i < len(kinds); i++ {
			prev, curr := milestones[kinds[i-1]], milestones[kinds[i]]
			assert.True(t, prev.Target.LessThan(curr.Target),
				"%s target not below %s", kinds[i-1], kinds[i])

			require.True(t, prev.Status.Achieved(), "%s not achieved", kinds[i-1])
			require.True(t, curr.Status.Achieved(), "%s not achieved", kinds[i])
			assert.LessOrEqual(t, prev.Status.Year, curr.Status.Year,
				"%s achieved after %s despite lower target", kinds[i-1], kinds[i])
		}
	})

	t.Run("opening above every target achieves all immediately", func(t *testing.T) {
		input := &domain.PlannerInput{
			AnnualExpenses: decimal.NewFromInt(40000),
			ExpectedReturn: decimal.NewFromFloat(0.07),
			RetirementAge:  decimal.NewFromInt(60),
			CurrentAge:     decimal.NewFromInt(30),
		}
		allTargets := MilestoneTargets(input)

		// Fat FI is the largest target at 1.5M
		_, milestones := Project(
			decimal.NewFromInt(2000000), decimal.Zero,
			decimal.NewFromFloat(0.07), 50, allTargets)

		for _, kind := range domain.AllMilestoneKinds() {
			milestone := milestones[kind]
			assert.Equal(t, domain.MilestoneAchievedImmediately, milestone.Status.State,
				"%s not achieved immediately", kind)
			assert.Zero(t, milestone.Status.Year)
		}
	})

	t.Run("first crossing is frozen", func(t *testing.T) {
		// Balance dips below the target after crossing it: a negative
		// contribution larger than growth pulls the balance back down
		shrinkTargets := map[domain.MilestoneKind]decimal.Decimal{
			domain.MilestoneFullFI: decimal.NewFromInt(100),
		}
		points, milestones := Project(
			decimal.NewFromInt(200), decimal.NewFromInt(-50),
			decimal.Zero, 5, shrinkTargets)

		milestone := milestones[domain.MilestoneFullFI]
		assert.Equal(t, domain.MilestoneAchievedImmediately, milestone.Status.State)
		assert.True(t, points[4].Balance.LessThan(milestone.Target))
	})
}
