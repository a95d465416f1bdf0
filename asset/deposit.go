package asset

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/budgetsim/budget"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Deposit is an interest-bearing deposit. Interest compounds on the fixed
// simulation periods of its cadence (every day, 7th day or 30th day held)
// at annual-rate/periods-per-year, crediting straight into the deposit's
// value. No interest accrues on the acquisition day.
//
// Liquidity is restricted two ways: the deposit refuses liquidation until
// minPeriods interest periods have been credited, and a boundary-restricted
// deposit is sellable only on days that are exact multiples of its
// compounding cadence.
type Deposit struct {
	principal   decimal.Decimal
	value       decimal.Decimal
	rate        decimal.Decimal // annual rate in percent
	compounding budget.Recurrence
	minPeriods  int
	boundary    bool
	age         int
	periods     int
}

// NewDeposit opens a deposit of principal at an annual percentage rate.
func NewDeposit(principal, annualRatePct decimal.Decimal, compounding budget.Recurrence, minPeriods int, boundaryOnly bool) *Deposit {
	return &Deposit{
		principal:   principal,
		value:       principal,
		rate:        annualRatePct,
		compounding: compounding,
		minPeriods:  minPeriods,
		boundary:    boundaryOnly,
	}
}

func (d *Deposit) Name() string {
	return fmt.Sprintf("deposit %s%% %s", d.rate, strings.ToLower(string(d.compounding)))
}

func (d *Deposit) Value() decimal.Decimal     { return d.value }
func (d *Deposit) Principal() decimal.Decimal { return d.principal }
func (d *Deposit) Age() int                   { return d.age }

// Periods is the number of interest periods credited so far.
func (d *Deposit) Periods() int { return d.periods }

// Step advances the deposit by one day, crediting a period of interest when
// the day count since acquisition lands on a compounding boundary.
func (d *Deposit) Step() {
	if d.age > 0 && d.age%d.compounding.Days() == 0 {
		d.capitalize()
	}
	d.age++
}

func (d *Deposit) capitalize() {
	periods := decimal.NewFromInt(int64(d.compounding.PeriodsPerYear()))
	perPeriod := d.rate.Div(hundred).Div(periods)
	d.value = d.value.Mul(one.Add(perPeriod))
	d.periods++
}

func (d *Deposit) Sellable() bool {
	if d.periods < d.minPeriods {
		return false
	}
	return !d.boundary || d.age%d.compounding.Days() == 0
}

func (d *Deposit) Reset() {
	d.value = d.principal
	d.age = 0
	d.periods = 0
}

func (d *Deposit) String() string {
	return fmt.Sprintf("%s: %s", d.Name(), d.value)
}
