package units

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
	"github.com/velalaser/VLL-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий каталога юнитов сети
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория юнитов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var unitColumns = []string{
	"id",
	"external_id",
	"name",
	"slug",
	"active",
	"street",
	"number",
	"city",
	"state",
	"postal_code",
	"latitude",
	"longitude",
	"complement",
	"phone",
	"whatsapp",
	"instagram",
	"created_at",
	"updated_at",
}

// List возвращает все активные юниты сети.
// При onlyBookable=true отбираются только юниты, подключённые
// к внешней системе бронирования (external_id заполнен).
func (r *Repository) List(ctx context.Context, onlyBookable bool) ([]*domain.Unit, error) {
	builder := psqlbuilder.Select(unitColumns...).
		From("units").
		Where(squirrel.Eq{"active": true}).
		OrderBy("name ASC")

	if onlyBookable {
		builder = builder.Where(squirrel.NotEq{"external_id": nil})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Unit, 0)
	for rows.Next() {
		unit, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, unit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return result, nil
}

// GetByID возвращает юнит по внутреннему ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Unit, error) {
	query, args, err := psqlbuilder.Select(unitColumns...).
		From("units").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("%w: GetByID - iterate rows: %v", ErrExecQuery, err)
		}
		return nil, ErrUnitNotFound
	}

	return scanUnit(rows)
}

func scanUnit(rows *sql.Rows) (*domain.Unit, error) {
	var (
		unit       domain.Unit
		externalID sql.NullString
		createdAt  sql.NullTime
		updatedAt  sql.NullTime
	)

	err := rows.Scan(
		&unit.ID,
		&externalID,
		&unit.Name,
		&unit.Slug,
		&unit.Active,
		&unit.Address.Street,
		&unit.Address.Number,
		&unit.Address.City,
		&unit.Address.State,
		&unit.Address.PostalCode,
		&unit.Address.Latitude,
		&unit.Address.Longitude,
		&unit.Address.Complement,
		&unit.Phone,
		&unit.WhatsApp,
		&unit.Instagram,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scan unit: %v", ErrScanRow, err)
	}

	if externalID.Valid {
		unit.ExternalID = externalID.String
		unit.Bookable = externalID.String != ""
	}
	unit.CreatedAt = createdAt.Time
	unit.UpdatedAt = updatedAt.Time

	return &unit, nil
}
