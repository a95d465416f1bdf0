// Package journal persists finished simulation runs for later
// inspection. Two backends are provided: CSV files for spreadsheet
// work and SQLite for querying past runs. Both receive the same flat
// records, produced from a sim.Result by Record.
package journal

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/budgetsim/budget"
	"github.com/rustyeddy/budgetsim/sim"
)

// RunRecord summarizes one simulation run.
type RunRecord struct {
	RunID        string
	Created      time.Time
	Scenario     string
	StartDate    time.Time
	EndDate      time.Time
	Days         int
	StartBalance decimal.Decimal
	FinalBalance decimal.Decimal
	FinalAssets  decimal.Decimal
	Events       int
	Trades       int
}

// EventRecord is one budget transaction applied during a run.
type EventRecord struct {
	RunID    string
	Date     time.Time
	Category string
	Type     budget.TransactionType
	Amount   decimal.Decimal
}

// TradeRecord is one asset purchase or sale.
type TradeRecord struct {
	RunID string
	Date  time.Time
	Asset string
	Side  sim.Side
	Value decimal.Decimal
}

// DayRecord is one sample of the daily balance and asset-value series.
type DayRecord struct {
	RunID      string
	Day        int
	Date       time.Time
	Balance    decimal.Decimal
	AssetValue decimal.Decimal
}

type Journal interface {
	RecordRun(RunRecord) error
	RecordEvent(EventRecord) error
	RecordTrade(TradeRecord) error
	RecordDay(DayRecord) error
	Close() error
}

// Record writes a finished run to j: the summary row first, then every
// event, trade and daily sample in simulation order.
func Record(j Journal, runID, scenario string, created time.Time, res *sim.Result) error {
	run := RunRecord{
		RunID:        runID,
		Created:      created,
		Scenario:     scenario,
		StartDate:    res.StartDate,
		EndDate:      res.EndDate,
		Days:         res.Days(),
		StartBalance: res.StartBalance,
		FinalBalance: res.FinalBalance(),
		FinalAssets:  res.FinalAssetValue(),
		Events:       len(res.Events),
		Trades:       len(res.Trades),
	}
	if err := j.RecordRun(run); err != nil {
		return fmt.Errorf("record run %s: %w", runID, err)
	}

	for _, ev := range res.Events {
		rec := EventRecord{
			RunID:    runID,
			Date:     ev.Date,
			Category: ev.Category,
			Type:     ev.Type,
			Amount:   ev.Amount,
		}
		if err := j.RecordEvent(rec); err != nil {
			return fmt.Errorf("record event %s %s: %w", ev.Date.Format(budget.DateLayout), ev.Category, err)
		}
	}

	for _, tr := range res.Trades {
		rec := TradeRecord{
			RunID: runID,
			Date:  tr.Date,
			Asset: tr.Asset,
			Side:  tr.Side,
			Value: tr.Value,
		}
		if err := j.RecordTrade(rec); err != nil {
			return fmt.Errorf("record trade %s %s: %w", tr.Date.Format(budget.DateLayout), tr.Asset, err)
		}
	}

	for day := 0; day < res.Days(); day++ {
		rec := DayRecord{
			RunID:      runID,
			Day:        day,
			Date:       res.Date(day),
			Balance:    res.BalanceAt(day),
			AssetValue: res.AssetValueAt(day),
		}
		if err := j.RecordDay(rec); err != nil {
			return fmt.Errorf("record day %d: %w", day, err)
		}
	}

	return nil
}
