package persistence

// Schema is the full DDL for the service, applied by cmd/migrate.
// inventory_log is append-only: rows are only ever inserted.
const Schema = `
CREATE TABLE IF NOT EXISTS products (
	id         UUID PRIMARY KEY,
	name       VARCHAR(200) NOT NULL,
	stock      INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
	in_stock   BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS inventory_log (
	id         UUID PRIMARY KEY,
	product_id UUID NOT NULL REFERENCES products(id),
	change     INTEGER NOT NULL CHECK (change <> 0),
	type       VARCHAR(20) NOT NULL CHECK (type IN ('restock', 'purchase', 'manual')),
	note       TEXT,
	admin_id   UUID,
	order_id   UUID,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_inventory_log_product_created
	ON inventory_log (product_id, created_at DESC);

CREATE TABLE IF NOT EXISTS admin_users (
	id         UUID PRIMARY KEY,
	email      VARCHAR(200) NOT NULL UNIQUE,
	password   VARCHAR(200) NOT NULL,
	role       VARCHAR(50) NOT NULL DEFAULT 'admin',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`
