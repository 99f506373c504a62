package database

const postgresSchema = `
CREATE TABLE IF NOT EXISTS staffs (
	id         UUID PRIMARY KEY,
	name       VARCHAR(100) NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS attendances (
	id         UUID PRIMARY KEY,
	date       DATE NOT NULL,
	employee   VARCHAR(100) NOT NULL,
	status     VARCHAR(20) NOT NULL DEFAULT '',
	reason     TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (date, employee)
);

CREATE INDEX IF NOT EXISTS idx_attendances_employee ON attendances (employee);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS staffs (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS attendances (
	id         TEXT PRIMARY KEY,
	date       TEXT NOT NULL,
	employee   TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT '',
	reason     TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (date, employee)
);

CREATE INDEX IF NOT EXISTS idx_attendances_employee ON attendances (employee);
`
