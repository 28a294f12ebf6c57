package main

import (
	"database/sql"
	"errors"
	"log"
	"os"

	"furnistore-be/internal/config"
	"furnistore-be/internal/db"
	"furnistore-be/internal/user"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id       BIGSERIAL PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		full_name     TEXT NOT NULL DEFAULT '',
		phone         TEXT NOT NULL DEFAULT '',
		address       TEXT NOT NULL DEFAULT '',
		role          TEXT NOT NULL DEFAULT 'Member' CHECK (role IN ('Member', 'Admin')),
		is_active     BOOLEAN NOT NULL DEFAULT TRUE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS categories (
		category_id        BIGSERIAL PRIMARY KEY,
		category_name      TEXT NOT NULL,
		description        TEXT NOT NULL DEFAULT '',
		parent_category_id BIGINT REFERENCES categories(category_id),
		image_url          TEXT NOT NULL DEFAULT '',
		is_active          BOOLEAN NOT NULL DEFAULT TRUE,
		created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS products (
		product_id     BIGSERIAL PRIMARY KEY,
		product_name   TEXT NOT NULL,
		product_code   TEXT NOT NULL UNIQUE,
		category_id    BIGINT NOT NULL REFERENCES categories(category_id),
		price          NUMERIC(14,2) NOT NULL CHECK (price >= 0),
		description    TEXT NOT NULL DEFAULT '',
		material       TEXT NOT NULL DEFAULT '',
		color          TEXT NOT NULL DEFAULT '',
		dimensions     TEXT NOT NULL DEFAULT '',
		weight         TEXT NOT NULL DEFAULT '',
		brand          TEXT NOT NULL DEFAULT '',
		stock_quantity INTEGER NOT NULL DEFAULT 0 CHECK (stock_quantity >= 0),
		image_urls     TEXT[] NOT NULL DEFAULT '{}',
		is_active      BOOLEAN NOT NULL DEFAULT TRUE,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS carts (
		cart_id    BIGSERIAL PRIMARY KEY,
		user_id    BIGINT NOT NULL UNIQUE REFERENCES users(user_id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS cart_items (
		cart_item_id BIGSERIAL PRIMARY KEY,
		cart_id      BIGINT NOT NULL REFERENCES carts(cart_id) ON DELETE CASCADE,
		product_id   BIGINT NOT NULL REFERENCES products(product_id),
		quantity     INTEGER NOT NULL CHECK (quantity > 0),
		added_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (cart_id, product_id)
	)`,

	`CREATE TABLE IF NOT EXISTS orders (
		order_id         BIGSERIAL PRIMARY KEY,
		order_code       TEXT NOT NULL UNIQUE,
		user_id          BIGINT NOT NULL REFERENCES users(user_id),
		order_date       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		total_amount     NUMERIC(14,2) NOT NULL CHECK (total_amount >= 0),
		shipping_fee     NUMERIC(14,2) NOT NULL DEFAULT 0,
		shipping_address TEXT NOT NULL,
		payment_method   TEXT NOT NULL DEFAULT 'Cash'
			CHECK (payment_method IN ('Cash', 'BankTransfer')),
		payment_status   TEXT NOT NULL DEFAULT 'Pending'
			CHECK (payment_status IN ('Pending', 'Paid', 'Failed', 'Refunded')),
		status           TEXT NOT NULL DEFAULT 'Pending'
			CHECK (status IN ('Pending', 'Confirmed', 'Packaging', 'Shipping',
				'Completed', 'Cancelled', 'Returned')),
		notes            TEXT NOT NULL DEFAULT '',
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS order_items (
		order_item_id BIGSERIAL PRIMARY KEY,
		order_id      BIGINT NOT NULL REFERENCES orders(order_id) ON DELETE CASCADE,
		product_id    BIGINT NOT NULL REFERENCES products(product_id),
		quantity      INTEGER NOT NULL CHECK (quantity > 0),
		unit_price    NUMERIC(14,2) NOT NULL CHECK (unit_price >= 0)
	)`,

	`CREATE TABLE IF NOT EXISTS inventory_logs (
		log_id         BIGSERIAL PRIMARY KEY,
		product_id     BIGINT NOT NULL REFERENCES products(product_id),
		change_type    TEXT NOT NULL CHECK (change_type IN ('In', 'Out')),
		quantity       INTEGER NOT NULL CHECK (quantity > 0),
		old_stock      INTEGER NOT NULL,
		new_stock      INTEGER NOT NULL,
		reason         TEXT NOT NULL DEFAULT '',
		reference_type TEXT NOT NULL DEFAULT '',
		reference_id   BIGINT,
		changed_by     BIGINT NOT NULL REFERENCES users(user_id),
		changed_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS reviews (
		review_id   BIGSERIAL PRIMARY KEY,
		order_id    BIGINT NOT NULL REFERENCES orders(order_id),
		product_id  BIGINT NOT NULL REFERENCES products(product_id),
		user_id     BIGINT NOT NULL REFERENCES users(user_id),
		rating      INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
		comment     TEXT NOT NULL DEFAULT '',
		is_approved BOOLEAN NOT NULL DEFAULT TRUE,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (order_id, product_id, user_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_date ON orders(order_date)`,
	`CREATE INDEX IF NOT EXISTS idx_inventory_logs_product ON inventory_logs(product_id)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_product ON reviews(product_id)`,
}

// seedAdmin inserts the administrator account if it does not exist yet.
// Registration only ever creates Member rows, so this is the single way
// an Admin account comes into existence.
func seedAdmin(database *sql.DB, username, email, password string) error {
	hash, err := user.HashPassword(password)
	if err != nil {
		return err
	}

	var userID int64
	err = database.QueryRow(`
		INSERT INTO users (username, password_hash, email, full_name, role)
		VALUES ($1, $2, $3, 'Administrator', 'Admin')
		ON CONFLICT (username) DO NOTHING
		RETURNING user_id`,
		username, hash, email,
	).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}

	_, err = database.Exec(
		`INSERT INTO carts (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`,
		userID,
	)
	return err
}

func main() {
	cfg := config.LoadConfig()
	database := db.InitDB(cfg)
	defer database.Close()

	for _, stmt := range statements {
		if _, err := database.Exec(stmt); err != nil {
			log.Fatalf("Migration failed: %v\nstatement: %s", err, stmt)
		}
	}

	if password := os.Getenv("ADMIN_PASSWORD"); password != "" {
		username := os.Getenv("ADMIN_USERNAME")
		if username == "" {
			username = "admin"
		}
		email := os.Getenv("ADMIN_EMAIL")
		if email == "" {
			email = "admin@furnistore.local"
		}
		if err := seedAdmin(database, username, email, password); err != nil {
			log.Fatalf("Admin seed failed: %v", err)
		}
		log.Printf("Admin account %q ready", username)
	} else {
		log.Println("ADMIN_PASSWORD not set, skipping admin seed")
	}

	log.Println("Migration completed")
}
