package migrations

import (
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(upInit, downInit)
}

func upInit(tx *sql.Tx) error {
	_, err := tx.Exec(`
	CREATE TABLE submissions (
		id SERIAL PRIMARY KEY,
		post_id VARCHAR NOT NULL UNIQUE,
		submission_fullname VARCHAR NOT NULL,
		submission_permalink VARCHAR NOT NULL,
		comment_fullname VARCHAR,
		comment_permalink VARCHAR,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`)
	if err != nil {
		return err
	}
	return nil
}

func downInit(tx *sql.Tx) error {
	_, err := tx.Exec(`
	DROP TABLE submissions;
	`)
	if err != nil {
		return err
	}
	return nil
}
