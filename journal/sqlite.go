package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite keeps every run in one database file. Past runs stay
// queryable through the List and Get helpers in query.go.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, created, scenario, start_date, end_date, days, start_balance, final_balance, final_assets, events, trades)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Created, r.Scenario, r.StartDate, r.EndDate, r.Days,
		r.StartBalance, r.FinalBalance, r.FinalAssets, r.Events, r.Trades,
	)
	return err
}

func (j *SQLite) RecordEvent(e EventRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO events
		(run_id, date, category, type, amount)
		VALUES (?, ?, ?, ?, ?)`,
		e.RunID, e.Date, e.Category, e.Type, e.Amount,
	)
	return err
}

func (j *SQLite) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(run_id, date, asset, side, value)
		VALUES (?, ?, ?, ?, ?)`,
		t.RunID, t.Date, t.Asset, t.Side, t.Value,
	)
	return err
}

func (j *SQLite) RecordDay(d DayRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO days
		(run_id, day, date, balance, asset_value)
		VALUES (?, ?, ?, ?, ?)`,
		d.RunID, d.Day, d.Date, d.Balance, d.AssetValue,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
