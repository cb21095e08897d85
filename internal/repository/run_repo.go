package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"oil_heating/internal/models"

	"github.com/google/uuid"
)

type RunSQLite struct {
	db *sql.DB
}

func NewRunSQLite(db *sql.DB) *RunSQLite { return &RunSQLite{db: db} }

var _ RunRepo = (*RunSQLite)(nil)

const (
	insertRunSQL = `INSERT INTO runs (id, occurred_at, kind, user_id, message, inputs, summary) VALUES (?, ?, ?, ?, ?, ?, ?)`
	selectRunSQL = `SELECT id, occurred_at, kind, user_id, message, inputs, summary FROM runs`

	defaultListLimit = 500
)

// Append stores a run. Missing RunID and OccurredAt are filled in; the stored ID is returned.
func (r *RunSQLite) Append(ctx context.Context, run models.Run) (string, error) {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}
	if run.OccurredAt.IsZero() {
		run.OccurredAt = time.Now().UTC()
	} else {
		run.OccurredAt = run.OccurredAt.UTC()
	}

	inputs, err := json.Marshal(run.Inputs)
	if err != nil {
		return "", fmt.Errorf("marshal run inputs: %w", err)
	}
	var summary *string
	if run.Summary != nil {
		b, err := json.Marshal(run.Summary)
		if err != nil {
			return "", fmt.Errorf("marshal run summary: %w", err)
		}
		s := string(b)
		summary = &s
	}
	var userID *int
	if run.UserID != 0 {
		userID = &run.UserID
	}

	if _, err := r.db.ExecContext(ctx, insertRunSQL,
		run.RunID,
		run.OccurredAt,
		models.NormalizeRunKind(run.Kind),
		userID,
		run.Description,
		string(inputs),
		summary,
	); err != nil {
		return "", fmt.Errorf("insert run %s: %w", run.RunID, err)
	}
	return run.RunID, nil
}

// Get returns a run by ID, or (nil, nil) when it does not exist.
func (r *RunSQLite) Get(ctx context.Context, id string) (*models.Run, error) {
	rows, err := r.db.QueryContext(ctx, selectRunSQL+" WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("select run %s: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	run, err := scanRun(rows)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// List returns runs filtered by [From, To] (inclusive), kind and user, ordered ASC.
func (r *RunSQLite) List(ctx context.Context, f RunFilter) ([]models.Run, error) {
	var (
		conds []string
		args  []any
	)
	if !f.From.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, f.From.UTC())
	}
	if !f.To.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, f.To.UTC())
	}
	if kind := models.NormalizeRunKind(f.Kind); kind != "" {
		conds = append(conds, "kind = ?")
		args = append(args, kind)
	}
	if f.UserID != 0 {
		conds = append(conds, "user_id = ?")
		args = append(args, f.UserID)
	}

	q := selectRunSQL
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	q += " ORDER BY occurred_at ASC LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Run, 0, 64)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanRun(rows *sql.Rows) (models.Run, error) {
	var (
		run        models.Run
		userID     sql.NullInt64
		inputsStr  string
		summaryStr sql.NullString
	)
	if err := rows.Scan(&run.RunID, &run.OccurredAt, &run.Kind, &userID, &run.Description, &inputsStr, &summaryStr); err != nil {
		return models.Run{}, err
	}
	run.OccurredAt = run.OccurredAt.UTC()
	run.UserID = int(userID.Int64)

	if err := json.Unmarshal([]byte(inputsStr), &run.Inputs); err != nil {
		return models.Run{}, fmt.Errorf("decode inputs of run %s: %w", run.RunID, err)
	}
	if summaryStr.Valid && summaryStr.String != "" {
		var v any
		if err := json.Unmarshal([]byte(summaryStr.String), &v); err == nil {
			run.Summary = v
		} else {
			run.Summary = summaryStr.String // keep raw if malformed
		}
	}
	return run, nil
}
