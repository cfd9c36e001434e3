// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for privileged changes
// (role changes, deactivations, deletions made by administrators).
package audit

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/tripnarrator/internal/adapter/postgres"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new audit repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

const auditColumns = `id, actor_id, entity_type, entity_id, action, changes, created_at`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
	}

	row := q.QueryRow(ctx,
		`INSERT INTO audit_log (`+auditColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+auditColumns,
		record.ID, record.ActorID, string(record.EntityType), record.EntityID,
		string(record.Action), changesJSON, record.CreatedAt,
	)

	rec, err := scanRecord(row)
	if err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}
	return rec, nil
}

// Log creates an audit record without returning it.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByEntity returns the change history for a specific entity, ordered by
// created_at DESC, limited to `limit` records.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+auditColumns+`
		 FROM audit_log
		 WHERE entity_type = $1 AND entity_id = $2
		 ORDER BY created_at DESC
		 LIMIT $3`,
		string(entityType), entityID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}
	defer rows.Close()

	return collect(rows)
}

// GetByActor returns records written by one actor, newest first.
func (r *Repo) GetByActor(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+auditColumns+`
		 FROM audit_log
		 WHERE actor_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		actorID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("get audit_records by actor: %w", err)
	}
	defer rows.Close()

	return collect(rows)
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func collect(rows pgx.Rows) ([]domain.AuditRecord, error) {
	records := make([]domain.AuditRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit_records: %w", err)
	}
	return records, nil
}

func scanRecord(row pgx.Row) (domain.AuditRecord, error) {
	var (
		rec        domain.AuditRecord
		entityType string
		action     string
		changes    []byte
	)
	if err := row.Scan(&rec.ID, &rec.ActorID, &entityType, &rec.EntityID, &action, &changes, &rec.CreatedAt); err != nil {
		return domain.AuditRecord{}, err
	}
	rec.EntityType = domain.EntityType(entityType)
	rec.Action = domain.AuditAction(action)

	rec.Changes = make(map[string]any)
	if len(changes) > 0 {
		if err := json.Unmarshal(changes, &rec.Changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", rec.ID, err)
		}
	}
	return rec, nil
}
