package store

const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, username, password_hash;`

	findUserByUsername = `SELECT user_id, username, password_hash
    FROM users
    WHERE username = $1;`

	createItem = `INSERT INTO items (name, price)
    VALUES ($1, $2)
    RETURNING id, name, price;`

	getItemByID = `SELECT id, name, price
    FROM items
    WHERE id = $1;`

	updateItem = `UPDATE items
    SET name = $1, price = $2
    WHERE id = $3;`

	deleteItem = `DELETE FROM items
    WHERE id = $1;`

	createLot = `INSERT INTO lots (number, quantity, expiry_date, item_id)
    VALUES ($1, $2, $3, $4)
    RETURNING id, number, quantity, expiry_date, item_id;`

	getLots = `SELECT id, number, quantity, expiry_date, item_id
    FROM lots
    ORDER BY id;`

	getLotByID = `SELECT id, number, quantity, expiry_date, item_id
    FROM lots
    WHERE id = $1;`

	updateLot = `UPDATE lots
    SET number = $1, quantity = $2, expiry_date = $3, item_id = $4
    WHERE id = $5;`

	deleteLot = `DELETE FROM lots
    WHERE id = $1;`
)

// createSQLiteSchema bootstraps the SQLite backend at connect time. The
// PostgreSQL backend uses goose migrations instead. lots.item_id carries no
// REFERENCES constraint: deleting an item leaves its lots in place, which
// existing clients rely on.
const createSQLiteSchema = `
CREATE TABLE IF NOT EXISTS users (
    user_id       INTEGER PRIMARY KEY AUTOINCREMENT,
    username      TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS items (
    id    INTEGER PRIMARY KEY AUTOINCREMENT,
    name  TEXT NOT NULL,
    price REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS lots (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    number      TEXT NOT NULL,
    quantity    INTEGER NOT NULL,
    expiry_date DATE NOT NULL,
    item_id     INTEGER NOT NULL
);`
