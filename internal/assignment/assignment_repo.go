package assignment

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

//go:generate mockgen -source=assignment_repo.go -destination=mock/assignment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	InsertPhysical(ctx context.Context, rows []PhysicalAssignment) error
	CountPhysicalByEmployeeAndAssets(ctx context.Context, companyID, employeeID uint, assetIDs []uint) (int64, error)
	RefreshAssetStatuses(ctx context.Context, companyID uint, assetIDs []uint) error
	FindOldestPhysicalID(ctx context.Context, companyID, employeeID, assetID uint) (uint, error)
	DeletePhysicalByID(ctx context.Context, id uint) error
	RestockAsset(ctx context.Context, companyID, assetID uint) error
	ReassignPhysical(ctx context.Context, rowID, newEmployeeID uint) error
	ListPhysicalViews(ctx context.Context, companyID uint) ([]PhysicalAssignmentView, error)
	ListPhysicalViewsByEmployee(ctx context.Context, companyID, employeeID uint) ([]PhysicalAssignmentView, error)

	InsertSoftware(ctx context.Context, rows []SoftwareAssignment) error
	DeleteSoftware(ctx context.Context, companyID, softwareAssetID, employeeID uint) (int64, error)
	ListSoftwareViews(ctx context.Context, companyID uint) ([]SoftwareAssignmentView, error)
	ListSoftwareViewsByEmployee(ctx context.Context, companyID, employeeID uint) ([]SoftwareAssignmentView, error)

	HasAssignmentsForEmployee(ctx context.Context, companyID, employeeID uint) (bool, error)
}

type repository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// WithTx binds the repository to an open transaction so ledger writes commit
// or roll back together with the stock update and the outbox row.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

type queryer interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

func (r *repository) q() queryer {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *repository) InsertPhysical(ctx context.Context, rows []PhysicalAssignment) error {
	if len(rows) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`
        INSERT INTO physical_assignments (company_id, asset_id, employee_id, assigned_date)
        VALUES `)

	args := make([]any, 0, len(rows)*4)
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 4
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4)
		args = append(args, row.CompanyID, row.AssetID, row.EmployeeID, row.AssignedDate)
	}

	_, err := r.q().ExecContext(ctx, sb.String(), args...)
	return err
}

// CountPhysicalByEmployeeAndAssets membaca ulang ledger di dalam transaksi
// yang sama; dipakai sebagai verifikasi setelah insert.
func (r *repository) CountPhysicalByEmployeeAndAssets(ctx context.Context, companyID, employeeID uint, assetIDs []uint) (int64, error) {
	placeholders, args := inClause(3, assetIDs)
	query := fmt.Sprintf(`
        SELECT COUNT(*)
        FROM physical_assignments
        WHERE company_id = $1 AND employee_id = $2 AND asset_id IN (%s)
    `, placeholders)

	args = append([]any{companyID, employeeID}, args...)

	var count int64
	err := r.q().QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

// RefreshAssetStatuses menurunkan ulang status dari quantity untuk asset
// yang baru saja disentuh ledger.
func (r *repository) RefreshAssetStatuses(ctx context.Context, companyID uint, assetIDs []uint) error {
	placeholders, args := inClause(2, assetIDs)
	query := fmt.Sprintf(`
        UPDATE physical_assets
        SET status = CASE WHEN quantity <= 0 THEN 'Unavailable' ELSE 'Available' END,
            updated_at = NOW()
        WHERE company_id = $1 AND id IN (%s)
    `, placeholders)

	args = append([]any{companyID}, args...)
	_, err := r.q().ExecContext(ctx, query, args...)
	return err
}

// FindOldestPhysicalID returns the lowest-id ledger row for the pair; with
// duplicate holdings that is the row unassign and transfer operate on.
func (r *repository) FindOldestPhysicalID(ctx context.Context, companyID, employeeID, assetID uint) (uint, error) {
	query := `
        SELECT id
        FROM physical_assignments
        WHERE company_id = $1 AND employee_id = $2 AND asset_id = $3
        ORDER BY id ASC
        LIMIT 1
    `

	var id uint
	err := r.q().QueryRowContext(ctx, query, companyID, employeeID, assetID).Scan(&id)
	return id, err
}

func (r *repository) DeletePhysicalByID(ctx context.Context, id uint) error {
	_, err := r.q().ExecContext(ctx, `DELETE FROM physical_assignments WHERE id = $1`, id)
	return err
}

func (r *repository) RestockAsset(ctx context.Context, companyID, assetID uint) error {
	query := `
        UPDATE physical_assets
        SET quantity = quantity + 1,
            status = CASE WHEN quantity + 1 <= 0 THEN 'Unavailable' ELSE 'Available' END,
            updated_at = NOW()
        WHERE company_id = $1 AND id = $2
    `
	_, err := r.q().ExecContext(ctx, query, companyID, assetID)
	return err
}

func (r *repository) ReassignPhysical(ctx context.Context, rowID, newEmployeeID uint) error {
	query := `
        UPDATE physical_assignments
        SET employee_id = $2
        WHERE id = $1
    `
	_, err := r.q().ExecContext(ctx, query, rowID, newEmployeeID)
	return err
}

const physicalViewSelect = `
        SELECT pa.id, pa.asset_id, a.asset_tag, a.asset_name,
               pa.employee_id, e.employee_name, pa.assigned_date
        FROM physical_assignments pa
        JOIN physical_assets a ON a.id = pa.asset_id AND a.company_id = pa.company_id
        JOIN employees e ON e.id = pa.employee_id AND e.company_id = pa.company_id
`

func (r *repository) ListPhysicalViews(ctx context.Context, companyID uint) ([]PhysicalAssignmentView, error) {
	query := physicalViewSelect + `
        WHERE pa.company_id = $1
        ORDER BY pa.id
    `
	return r.scanPhysicalViews(ctx, query, companyID)
}

func (r *repository) ListPhysicalViewsByEmployee(ctx context.Context, companyID, employeeID uint) ([]PhysicalAssignmentView, error) {
	query := physicalViewSelect + `
        WHERE pa.company_id = $1 AND pa.employee_id = $2
        ORDER BY pa.id
    `
	return r.scanPhysicalViews(ctx, query, companyID, employeeID)
}

func (r *repository) scanPhysicalViews(ctx context.Context, query string, args ...any) ([]PhysicalAssignmentView, error) {
	rows, err := r.q().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]PhysicalAssignmentView, 0)
	for rows.Next() {
		var v PhysicalAssignmentView
		if err := rows.Scan(
			&v.ID,
			&v.AssetID,
			&v.AssetTag,
			&v.AssetName,
			&v.EmployeeID,
			&v.EmployeeName,
			&v.AssignedDate,
		); err != nil {
			return nil, err
		}
		views = append(views, v)
	}

	return views, rows.Err()
}

func (r *repository) InsertSoftware(ctx context.Context, rows []SoftwareAssignment) error {
	if len(rows) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`
        INSERT INTO software_assignments (company_id, software_asset_id, employee_id, assigned_date)
        VALUES `)

	args := make([]any, 0, len(rows)*4)
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 4
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4)
		args = append(args, row.CompanyID, row.SoftwareAssetID, row.EmployeeID, row.AssignedDate)
	}

	_, err := r.q().ExecContext(ctx, sb.String(), args...)
	return err
}

func (r *repository) DeleteSoftware(ctx context.Context, companyID, softwareAssetID, employeeID uint) (int64, error) {
	query := `
        DELETE FROM software_assignments
        WHERE company_id = $1 AND software_asset_id = $2 AND employee_id = $3
    `
	res, err := r.q().ExecContext(ctx, query, companyID, softwareAssetID, employeeID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const softwareViewSelect = `
        SELECT sa.software_asset_id, s.software_name,
               sa.employee_id, e.employee_name, sa.assigned_date
        FROM software_assignments sa
        JOIN software_assets s ON s.id = sa.software_asset_id AND s.company_id = sa.company_id
        JOIN employees e ON e.id = sa.employee_id AND e.company_id = sa.company_id
`

func (r *repository) ListSoftwareViews(ctx context.Context, companyID uint) ([]SoftwareAssignmentView, error) {
	query := softwareViewSelect + `
        WHERE sa.company_id = $1
        ORDER BY sa.software_asset_id, sa.employee_id
    `
	return r.scanSoftwareViews(ctx, query, companyID)
}

func (r *repository) ListSoftwareViewsByEmployee(ctx context.Context, companyID, employeeID uint) ([]SoftwareAssignmentView, error) {
	query := softwareViewSelect + `
        WHERE sa.company_id = $1 AND sa.employee_id = $2
        ORDER BY sa.software_asset_id
    `
	return r.scanSoftwareViews(ctx, query, companyID, employeeID)
}

func (r *repository) scanSoftwareViews(ctx context.Context, query string, args ...any) ([]SoftwareAssignmentView, error) {
	rows, err := r.q().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]SoftwareAssignmentView, 0)
	for rows.Next() {
		var v SoftwareAssignmentView
		if err := rows.Scan(
			&v.SoftwareAssetID,
			&v.SoftwareName,
			&v.EmployeeID,
			&v.EmployeeName,
			&v.AssignedDate,
		); err != nil {
			return nil, err
		}
		views = append(views, v)
	}

	return views, rows.Err()
}

func (r *repository) HasAssignmentsForEmployee(ctx context.Context, companyID, employeeID uint) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM physical_assignments WHERE company_id = $1 AND employee_id = $2
            UNION ALL
            SELECT 1 FROM software_assignments WHERE company_id = $1 AND employee_id = $2
        )
    `

	var held bool
	err := r.q().QueryRowContext(ctx, query, companyID, employeeID).Scan(&held)
	return held, err
}

func inClause(start int, ids []uint) (string, []any) {
	parts := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("$%d", start+i)
		args[i] = id
	}
	return strings.Join(parts, ", "), args
}
