package journal

// Monetary columns are TEXT, not REAL: decimal strings round-trip
// exactly through SQLite, floating point would not.
const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created DATETIME NOT NULL,
	scenario TEXT NOT NULL,
	start_date DATETIME NOT NULL,
	end_date DATETIME NOT NULL,
	days INTEGER NOT NULL,
	start_balance TEXT NOT NULL,
	final_balance TEXT NOT NULL,
	final_assets TEXT NOT NULL,
	events INTEGER NOT NULL,
	trades INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS events (
	run_id TEXT NOT NULL,
	date DATETIME NOT NULL,
	category TEXT NOT NULL,
	type TEXT NOT NULL,
	amount TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS trades (
	run_id TEXT NOT NULL,
	date DATETIME NOT NULL,
	asset TEXT NOT NULL,
	side TEXT NOT NULL,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS days (
	run_id TEXT NOT NULL,
	day INTEGER NOT NULL,
	date DATETIME NOT NULL,
	balance TEXT NOT NULL,
	asset_value TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_events_run ON events(run_id);
CREATE INDEX IF NOT EXISTS idx_trades_run ON trades(run_id);
CREATE INDEX IF NOT EXISTS idx_days_run ON days(run_id, day);
`
