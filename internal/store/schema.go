package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS collections (
    name        TEXT PRIMARY KEY,
    data        TEXT NOT NULL,
    updated_at  TEXT NOT NULL
);
`
