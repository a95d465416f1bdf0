package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rustyeddy/budgetsim/budget"
)

// CSV writes one file per record kind into a directory: runs.csv,
// events.csv, trades.csv and daily.csv. Rows are flushed as they are
// recorded so a partial run still leaves readable files.
type CSV struct {
	runs   *csv.Writer
	events *csv.Writer
	trades *csv.Writer
	days   *csv.Writer
	files  []*os.File
}

func NewCSV(dir string) (*CSV, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	j := &CSV{}

	var err error
	j.runs, err = j.open(filepath.Join(dir, "runs.csv"), []string{
		"run_id", "created", "scenario", "start_date", "end_date", "days",
		"start_balance", "final_balance", "final_assets", "events", "trades",
	})
	if err != nil {
		return nil, err
	}
	j.events, err = j.open(filepath.Join(dir, "events.csv"), []string{
		"run_id", "date", "category", "type", "amount",
	})
	if err != nil {
		return nil, err
	}
	j.trades, err = j.open(filepath.Join(dir, "trades.csv"), []string{
		"run_id", "date", "asset", "side", "value",
	})
	if err != nil {
		return nil, err
	}
	j.days, err = j.open(filepath.Join(dir, "daily.csv"), []string{
		"run_id", "day", "date", "balance", "asset_value",
	})
	if err != nil {
		return nil, err
	}

	return j, nil
}

func (j *CSV) open(path string, header []string) (*csv.Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	j.files = append(j.files, f)

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return w, nil
}

func (j *CSV) RecordRun(r RunRecord) error {
	return write(j.runs, []string{
		r.RunID,
		r.Created.Format(time.RFC3339),
		r.Scenario,
		r.StartDate.Format(budget.DateLayout),
		r.EndDate.Format(budget.DateLayout),
		strconv.Itoa(r.Days),
		r.StartBalance.String(),
		r.FinalBalance.String(),
		r.FinalAssets.String(),
		strconv.Itoa(r.Events),
		strconv.Itoa(r.Trades),
	})
}

func (j *CSV) RecordEvent(e EventRecord) error {
	return write(j.events, []string{
		e.RunID,
		e.Date.Format(budget.DateLayout),
		e.Category,
		string(e.Type),
		e.Amount.String(),
	})
}

func (j *CSV) RecordTrade(t TradeRecord) error {
	return write(j.trades, []string{
		t.RunID,
		t.Date.Format(budget.DateLayout),
		t.Asset,
		string(t.Side),
		t.Value.String(),
	})
}

func (j *CSV) RecordDay(d DayRecord) error {
	return write(j.days, []string{
		d.RunID,
		strconv.Itoa(d.Day),
		d.Date.Format(budget.DateLayout),
		d.Balance.String(),
		d.AssetValue.String(),
	})
}

func (j *CSV) Close() error {
	for _, w := range []*csv.Writer{j.runs, j.events, j.trades, j.days} {
		w.Flush()
		if err := w.Error(); err != nil {
			return err
		}
	}
	for _, f := range j.files {
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

func write(w *csv.Writer, row []string) error {
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
