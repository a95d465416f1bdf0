package journal

import (
	"database/sql"
	"fmt"
)

// GetRun returns a single run summary by ID.
func (j *SQLite) GetRun(runID string) (RunRecord, error) {
	var rec RunRecord

	row := j.db.QueryRow(`
		SELECT run_id, created, scenario, start_date, end_date, days, start_balance, final_balance, final_assets, events, trades
		FROM runs
		WHERE run_id = ?`, runID)

	err := row.Scan(
		&rec.RunID,
		&rec.Created,
		&rec.Scenario,
		&rec.StartDate,
		&rec.EndDate,
		&rec.Days,
		&rec.StartBalance,
		&rec.FinalBalance,
		&rec.FinalAssets,
		&rec.Events,
		&rec.Trades,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return RunRecord{}, fmt.Errorf("run %q not found", runID)
		}
		return RunRecord{}, err
	}
	return rec, nil
}

// ListRuns returns every recorded run, newest first.
func (j *SQLite) ListRuns() ([]RunRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, created, scenario, start_date, end_date, days, start_balance, final_balance, final_assets, events, trades
		FROM runs
		ORDER BY created DESC, run_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		if err := rows.Scan(
			&rec.RunID,
			&rec.Created,
			&rec.Scenario,
			&rec.StartDate,
			&rec.EndDate,
			&rec.Days,
			&rec.StartBalance,
			&rec.FinalBalance,
			&rec.FinalAssets,
			&rec.Events,
			&rec.Trades,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListEventsByRun returns a run's budget events in simulation order.
func (j *SQLite) ListEventsByRun(runID string) ([]EventRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, date, category, type, amount
		FROM events
		WHERE run_id = ?
		ORDER BY rowid ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EventRecord
	for rows.Next() {
		var rec EventRecord
		if err := rows.Scan(
			&rec.RunID,
			&rec.Date,
			&rec.Category,
			&rec.Type,
			&rec.Amount,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTradesByRun returns a run's trades in simulation order, so sells
// on a given date appear before that date's buys.
func (j *SQLite) ListTradesByRun(runID string) ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, date, asset, side, value
		FROM trades
		WHERE run_id = ?
		ORDER BY rowid ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		var rec TradeRecord
		if err := rows.Scan(
			&rec.RunID,
			&rec.Date,
			&rec.Asset,
			&rec.Side,
			&rec.Value,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListDaysByRun returns a run's daily series ordered by day index.
func (j *SQLite) ListDaysByRun(runID string) ([]DayRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, day, date, balance, asset_value
		FROM days
		WHERE run_id = ?
		ORDER BY day ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DayRecord
	for rows.Next() {
		var rec DayRecord
		if err := rows.Scan(
			&rec.RunID,
			&rec.Day,
			&rec.Date,
			&rec.Balance,
			&rec.AssetValue,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
