package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/wifiattend/attendance-server/internal/domain/leave"
	"github.com/wifiattend/attendance-server/internal/pkg/database"
)

var requestTables = map[leave.Kind]string{
	leave.KindLeave:      "leave_requests",
	leave.KindPermission: "permission_requests",
}

type requestRepositoryImpl struct {
	db    *database.DB
	kind  leave.Kind
	table string
}

// NewRequestRepository returns the repository backing kind's table.
func NewRequestRepository(db *database.DB, kind leave.Kind) (leave.RequestRepository, error) {
	table, ok := requestTables[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", leave.ErrInvalidKind, kind)
	}
	return &requestRepositoryImpl{db: db, kind: kind, table: table}, nil
}

// Kind implements leave.RequestRepository.
func (r *requestRepositoryImpl) Kind() leave.Kind {
	return r.kind
}

func (r *requestRepositoryImpl) selectQuery() string {
	return fmt.Sprintf(`
		SELECT lr.id, lr.employee_id, lr.reason, lr.status, lr.reviewed_by, lr.reviewed_at,
			   lr.rejection_reason, lr.created_at, lr.updated_at, e.full_name
		FROM %s lr
		JOIN employees e ON e.id = lr.employee_id`, r.table)
}

func (r *requestRepositoryImpl) scan(row pgx.Row) (leave.Request, error) {
	req := leave.Request{Kind: r.kind}
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.Reason, &req.Status, &req.ReviewedBy, &req.ReviewedAt,
		&req.RejectionReason, &req.CreatedAt, &req.UpdatedAt, &req.EmployeeName,
	)
	return req, err
}

func (r *requestRepositoryImpl) query(ctx context.Context, sql string, args ...interface{}) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.table, err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		req, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", r.table, err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// Create implements leave.RequestRepository.
func (r *requestRepositoryImpl) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO %s (employee_id, reason, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id, created_at, updated_at
	`, r.table)

	createdAt := req.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	created := req
	created.Kind = r.kind
	err := q.QueryRow(ctx, query, req.EmployeeID, req.Reason, req.Status, createdAt).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to insert into %s: %w", r.table, err)
	}
	return created, nil
}

// GetByID implements leave.RequestRepository.
func (r *requestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	req, err := r.scan(q.QueryRow(ctx, r.selectQuery()+" WHERE lr.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get %s row: %w", r.table, err)
	}
	return req, nil
}

// ListByEmployee implements leave.RequestRepository.
func (r *requestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Request, error) {
	return r.query(ctx, r.selectQuery()+" WHERE lr.employee_id = $1 ORDER BY lr.created_at DESC", employeeID)
}

// List implements leave.RequestRepository.
func (r *requestRepositoryImpl) List(ctx context.Context, filter leave.RequestFilter) ([]leave.Request, error) {
	if filter.Status != nil {
		return r.query(ctx, r.selectQuery()+" WHERE lr.status = $1 ORDER BY lr.created_at DESC", *filter.Status)
	}
	return r.query(ctx, r.selectQuery()+" ORDER BY lr.created_at DESC")
}

// UpdateStatus implements leave.RequestRepository.
func (r *requestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.RequestStatus, reviewedBy string, reviewedAt time.Time, rejectionReason *string) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $2, reviewed_by = $3, reviewed_at = $4, rejection_reason = $5, updated_at = NOW()
		WHERE id = $1 AND status = 'Pending'
	`, r.table)

	tag, err := q.Exec(ctx, query, id, status, reviewedBy, reviewedAt, rejectionReason)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", r.table, err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return leave.ErrRequestAlreadyProcessed
	}
	return nil
}

// CountByStatus implements leave.RequestRepository.
func (r *requestRepositoryImpl) CountByStatus(ctx context.Context, employeeID string) (leave.StatusCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT
			COUNT(*) FILTER (WHERE status = 'Pending'),
			COUNT(*) FILTER (WHERE status = 'Approved'),
			COUNT(*) FILTER (WHERE status = 'Rejected')
		FROM %s
		WHERE employee_id = $1
	`, r.table)

	var counts leave.StatusCounts
	if err := q.QueryRow(ctx, query, employeeID).Scan(&counts.Pending, &counts.Approved, &counts.Rejected); err != nil {
		return leave.StatusCounts{}, fmt.Errorf("failed to count %s: %w", r.table, err)
	}
	return counts, nil
}

// ListApprovedInRange implements leave.RequestRepository.
func (r *requestRepositoryImpl) ListApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Request, error) {
	return r.query(ctx, r.selectQuery()+`
		WHERE lr.employee_id = $1 AND lr.status = 'Approved' AND lr.created_at BETWEEN $2 AND $3
		ORDER BY lr.created_at`, employeeID, from, to)
}

// CountApprovedInRange implements leave.RequestRepository.
func (r *requestRepositoryImpl) CountApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT COUNT(*) FROM %s
		WHERE employee_id = $1 AND status = 'Approved' AND created_at BETWEEN $2 AND $3
	`, r.table)

	var count int
	if err := q.QueryRow(ctx, query, employeeID, from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count approved %s: %w", r.table, err)
	}
	return count, nil
}
