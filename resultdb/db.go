// Copyright 2024 The DD2356 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resultdb records computed benchmark statistics in a SQL
// database so runs can be compared across cluster sessions.
package resultdb

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"text/template"

	"github.com/robinho46/DD2356-High-Performance-Computing/pingpong"
	"github.com/robinho46/DD2356-High-Performance-Computing/timestat"
)

// A DB stores timing summaries and fit results in an underlying SQL
// database. Methods on DB may be called from multiple goroutines.
type DB struct {
	sql *sql.DB
	// insert statements, prepared once at open
	insertSummary *sql.Stmt
	insertFit     *sql.Stmt
}

// OpenSQL opens a results database; driverName and dataSourceName are
// passed through to sql.Open. sqlite3 and mysql get matching schema
// syntax; any other engine receives the MySQL form and may or may not
// accept it.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		return nil, err
	}
	if err := d.prepareStatements(); err != nil {
		return nil, err
	}
	return d, nil
}

// The two engines disagree on auto-increment syntax, so the CREATE
// statements come from a template executed with . set to a one-entry
// map keyed by the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Summaries (
	SummaryID {{if .sqlite3}}INTEGER PRIMARY KEY AUTOINCREMENT{{else}}SERIAL PRIMARY KEY AUTO_INCREMENT{{end}},
	Label VARCHAR(255),
	N INT,
	Mean DOUBLE,
	StdDev DOUBLE,
	MinTime DOUBLE,
	MaxTime DOUBLE
);
CREATE TABLE IF NOT EXISTS Fits (
	FitID {{if .sqlite3}}INTEGER PRIMARY KEY AUTOINCREMENT{{else}}SERIAL PRIMARY KEY AUTO_INCREMENT{{end}},
	Mode VARCHAR(32),
	Bandwidth DOUBLE,
	Latency DOUBLE,
	Slope DOUBLE,
	Intercept DOUBLE,
	N INT
);
`))

// createTables creates the Summaries and Fits tables if they are
// missing, issuing one statement per Exec since drivers reject
// multi-statement strings.
func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %v", err)
		}
	}
	return nil
}

// prepareStatements readies the insert statements reused on every
// record.
func (db *DB) prepareStatements() error {
	var err error
	db.insertSummary, err = db.sql.Prepare("INSERT INTO Summaries(Label, N, Mean, StdDev, MinTime, MaxTime) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	db.insertFit, err = db.sql.Prepare("INSERT INTO Fits(Mode, Bandwidth, Latency, Slope, Intercept, N) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	return nil
}

// RecordSummary stores a timing summary under label (typically a
// thread count).
func (db *DB) RecordSummary(ctx context.Context, label string, s timestat.Summary) error {
	_, err := db.insertSummary.ExecContext(ctx, label, s.N, s.Mean, s.StdDev, s.Min, s.Max)
	return err
}

// RecordFit stores a fit result for the given communication mode.
func (db *DB) RecordFit(ctx context.Context, mode pingpong.Mode, r *pingpong.Result) error {
	_, err := db.insertFit.ExecContext(ctx, mode.String(), r.Bandwidth, r.Latency, r.Slope, r.Intercept, r.N)
	return err
}

// A SummaryRecord is a stored timing summary together with its label.
type SummaryRecord struct {
	Label   string
	Summary timestat.Summary
}

// Summaries returns the stored summaries for label in insertion
// order. An empty label returns every record.
func (db *DB) Summaries(ctx context.Context, label string) ([]SummaryRecord, error) {
	q := "SELECT Label, N, Mean, StdDev, MinTime, MaxTime FROM Summaries"
	var args []interface{}
	if label != "" {
		q += " WHERE Label = ?"
		args = append(args, label)
	}
	q += " ORDER BY SummaryID"
	rows, err := db.sql.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []SummaryRecord
	for rows.Next() {
		var r SummaryRecord
		if err := rows.Scan(&r.Label, &r.Summary.N, &r.Summary.Mean, &r.Summary.StdDev, &r.Summary.Min, &r.Summary.Max); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Close releases the prepared statements and the connection.
func (db *DB) Close() error {
	if err := db.insertSummary.Close(); err != nil {
		return err
	}
	if err := db.insertFit.Close(); err != nil {
		return err
	}
	return db.sql.Close()
}
