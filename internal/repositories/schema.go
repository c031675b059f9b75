package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/townlink/internal/logger"
	"github.com/sbilibin2017/townlink/internal/models"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS businesses (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		location TEXT NOT NULL,
		description TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		website TEXT NOT NULL DEFAULT '',
		hours TEXT NOT NULL DEFAULT '',
		image TEXT NOT NULL DEFAULT '` + models.DefaultBusinessImage + `',
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		CONSTRAINT businesses_coordinates_check CHECK ((latitude IS NULL) = (longitude IS NULL))
	);`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id BIGSERIAL PRIMARY KEY,
		business_id BIGINT NOT NULL,
		user_id BIGINT,
		reviewer_name TEXT NOT NULL,
		body TEXT NOT NULL,
		rating SMALLINT NOT NULL CHECK (rating BETWEEN 1 AND 5),
		review_date TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		CONSTRAINT reviews_business_id_fkey FOREIGN KEY (business_id) REFERENCES businesses(id) ON DELETE CASCADE,
		CONSTRAINT reviews_user_id_fkey FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE SET NULL
	);`,
	`CREATE INDEX IF NOT EXISTS reviews_business_id_idx ON reviews (business_id);`,
}

// Bootstrap creates the users, businesses and reviews tables when they do not exist yet.
func Bootstrap(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Log.Errorw("failed to apply schema statement", "error", err)
			return err
		}
	}
	logger.Log.Info("database schema is up to date")
	return nil
}
