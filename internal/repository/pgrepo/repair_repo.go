package pgrepo

import (
	"context"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/fsdevblog/storefront/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const repairColumns = `id, created_at, updated_at, customer_id, name, phone, email, device, issue,
	status::text, estimated_cost, notes`

type RepairRepository struct {
	conn uow.DBTX
}

func NewRepairRepository(conn uow.DBTX) *RepairRepository {
	return &RepairRepository{conn: conn}
}

func (r *RepairRepository) Create(ctx context.Context, args repoargs.CreateRepair) (*domain.RepairRequest, error) {
	row := r.conn.QueryRow(ctx,
		`INSERT INTO repair_requests (customer_id, name, phone, email, device, issue)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+repairColumns,
		args.CustomerID, args.Name, args.Phone, args.Email, args.Device, args.Issue,
	)
	repair, err := scanRepair(row)
	if err != nil {
		return nil, convertErr(err, "creating repair request for `%s`", args.Phone)
	}
	return repair, nil
}

func (r *RepairRepository) FindByID(ctx context.Context, id int64) (*domain.RepairRequest, error) {
	repair, err := scanRepair(r.conn.QueryRow(ctx, `SELECT `+repairColumns+` FROM repair_requests WHERE id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "finding repair request %d", id)
	}
	return repair, nil
}

func (r *RepairRepository) List(ctx context.Context, filter repoargs.RepairFilter) ([]domain.RepairRequest, error) {
	b := newQueryBuilder()
	if filter.Status != "" {
		b.where("status = $%d::repair_status", string(filter.Status))
	}
	page, pageErr := b.paginateSQL(filter.Pagination)
	if pageErr != nil {
		return nil, convertErr(pageErr, "listing repair requests")
	}

	rows, err := r.conn.Query(ctx,
		`SELECT `+repairColumns+` FROM repair_requests`+b.whereSQL()+` ORDER BY created_at DESC, id DESC`+page,
		b.args...,
	)
	if err != nil {
		return nil, convertErr(err, "listing repair requests")
	}
	repairs, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RepairRequest, error) {
		repair, scanErr := scanRepair(row)
		if scanErr != nil {
			return domain.RepairRequest{}, scanErr
		}
		return *repair, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "listing repair requests")
	}
	return repairs, nil
}

// Update меняет только переданные (не nil) поля.
func (r *RepairRepository) Update(
	ctx context.Context,
	id int64,
	args repoargs.UpdateRepair,
) (*domain.RepairRequest, error) {
	row := r.conn.QueryRow(ctx,
		`UPDATE repair_requests SET
			status = COALESCE($2::repair_status, status),
			estimated_cost = COALESCE($3, estimated_cost),
			notes = COALESCE($4, notes),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+repairColumns,
		id, stringPtr(args.Status), args.EstimatedCost, args.Notes,
	)
	repair, err := scanRepair(row)
	if err != nil {
		return nil, convertErr(err, "updating repair request %d", id)
	}
	return repair, nil
}

func (r *RepairRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn.Exec(ctx, `DELETE FROM repair_requests WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting repair request %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting repair request %d", id)
	}
	return nil
}

func scanRepair(row pgx.Row) (*domain.RepairRequest, error) {
	var repair domain.RepairRequest
	err := row.Scan(
		&repair.ID,
		&repair.CreatedAt,
		&repair.UpdatedAt,
		&repair.CustomerID,
		&repair.Name,
		&repair.Phone,
		&repair.Email,
		&repair.Device,
		&repair.Issue,
		&repair.Status,
		&repair.EstimatedCost,
		&repair.Notes,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &repair, nil
}
