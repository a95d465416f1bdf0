package report

import (
	"fmt"
	"io"
	"text/template"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Display formats an amount in the given ISO currency, falling back to
// USD for unknown codes.
func Display(d decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		cur = money.GetCurrency(money.USD)
	}
	minor := d.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

func funcs(currency string) template.FuncMap {
	return template.FuncMap{
		"money": func(d decimal.Decimal) string { return Display(d, currency) },
		"pct":   func(d decimal.Decimal) string { return d.StringFixed(1) },
	}
}

const summaryTemplate = `Simulation {{.StartDate.Format "2006-01-02"}} to {{.EndDate.Format "2006-01-02"}} ({{.Days}} days)

  Start balance:    {{money .StartBalance}}
  Final balance:    {{money .FinalBalance}}
  Final assets:     {{money .FinalAssets}}
  Final net worth:  {{money .FinalNetWorth}}

  Income:           {{money .Income}}
  Expenses:         {{money .Expenses}}
  Net cash flow:    {{money .NetCashFlow}}
  Interest earned:  {{money .Interest}}

  Buys:             {{.Buys}} ({{money .Invested}} invested)
  Sells:            {{.Sells}} ({{money .Divested}} divested)

  Lowest balance:   {{money .MinBalance}} on {{.MinBalanceDate.Format "2006-01-02"}}
  Max drawdown:     {{money .MaxDrawdown}} ({{pct .MaxDrawdownPct}}%)
`

const monthlyTemplate = `{{printf "%-7s" "Month"}}  {{printf "%14s" "Income"}}  {{printf "%14s" "Expenses"}}  {{printf "%14s" "Net"}}
{{range .}}{{.Month.Format "2006-01"}}  {{printf "%14s" (money .Income)}}  {{printf "%14s" (money .Expenses)}}  {{printf "%14s" (money .Net)}}
{{end}}`

// Render writes the plain-text summary table.
func Render(w io.Writer, s Summary, currency string) error {
	t, err := template.New("summary").Funcs(funcs(currency)).Parse(summaryTemplate)
	if err != nil {
		return fmt.Errorf("parse summary template: %w", err)
	}
	if err := t.Execute(w, s); err != nil {
		return fmt.Errorf("render summary: %w", err)
	}
	return nil
}

// RenderMonthly writes the month-by-month cashflow table.
func RenderMonthly(w io.Writer, months []MonthlyCashflow, currency string) error {
	t, err := template.New("monthly").Funcs(funcs(currency)).Parse(monthlyTemplate)
	if err != nil {
		return fmt.Errorf("parse monthly template: %w", err)
	}
	if err := t.Execute(w, months); err != nil {
		return fmt.Errorf("render monthly: %w", err)
	}
	return nil
}
