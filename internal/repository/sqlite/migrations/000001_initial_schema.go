package migrations

// initialSchema creates the session record and the cached board snapshot.
// The session table is constrained to a single row; token and user are one
// record so they can only be stored and cleared together.
var initialSchema = Migration{
	Version: 1,
	Up: `
	CREATE TABLE IF NOT EXISTS session (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		token TEXT NOT NULL,
		user_id TEXT NOT NULL,
		fullname TEXT NOT NULL,
		email TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS task_cache (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		priority TEXT NOT NULL,
		deadline TEXT,
		position INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_task_cache_position ON task_cache(position);
	`,
	Down: `
	DROP INDEX IF EXISTS idx_task_cache_position;
	DROP TABLE IF EXISTS task_cache;
	DROP TABLE IF EXISTS session;
	`,
}
