package store

// Schema creates the tables the service depends on. Uniqueness of every
// natural key and referential integrity between entities live here; the
// repositories translate constraint violations into domain errors.
// Foreign keys are RESTRICT on delete: removing a row that is still
// referenced is rejected, never cascaded.
const Schema = `
CREATE TABLE IF NOT EXISTS banks (
    id      BIGSERIAL PRIMARY KEY,
    code    INTEGER NOT NULL,
    name    TEXT NOT NULL,
    tax_id  TEXT NOT NULL,
    CONSTRAINT banks_code_key   UNIQUE (code),
    CONSTRAINT banks_tax_id_key UNIQUE (tax_id)
);

CREATE TABLE IF NOT EXISTS branches (
    id      BIGSERIAL PRIMARY KEY,
    number  INTEGER NOT NULL,
    name    TEXT NOT NULL,
    bank_id BIGINT NOT NULL,
    CONSTRAINT branches_number_key  UNIQUE (number),
    CONSTRAINT branches_bank_id_fkey FOREIGN KEY (bank_id)
        REFERENCES banks (id) ON DELETE RESTRICT
);

CREATE TABLE IF NOT EXISTS customers (
    id     BIGSERIAL PRIMARY KEY,
    tax_id TEXT NOT NULL,
    name   TEXT NOT NULL,
    CONSTRAINT customers_tax_id_key UNIQUE (tax_id)
);

CREATE TABLE IF NOT EXISTS accounts (
    id          BIGSERIAL PRIMARY KEY,
    number      INTEGER NOT NULL,
    balance     NUMERIC(15,2) NOT NULL DEFAULT 0,
    customer_id BIGINT NOT NULL,
    branch_id   BIGINT NOT NULL,
    CONSTRAINT accounts_number_key UNIQUE (number),
    CONSTRAINT accounts_balance_check CHECK (balance >= 0),
    CONSTRAINT accounts_customer_id_fkey FOREIGN KEY (customer_id)
        REFERENCES customers (id) ON DELETE RESTRICT,
    CONSTRAINT accounts_branch_id_fkey FOREIGN KEY (branch_id)
        REFERENCES branches (id) ON DELETE RESTRICT
);
`
