package yacht

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/harbourline/yacht-booking-service/internal/domain"
	"github.com/harbourline/yacht-booking-service/pkg/dbmetrics"
	"github.com/harbourline/yacht-booking-service/pkg/psqlbuilder"
)

// Repository read-only репозиторий каталога яхт.
// Записи каталога мутируются только workflow'ами владельца/админа,
// которые живут вне этого сервиса
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

var yachtColumns = []string{
	"id",
	"owner_id",
	"name",
	"yacht_type",
	"location",
	"pickup_at",
	"capacity",
	"sailing_peak_rate",
	"sailing_non_peak_rate",
	"anchoring_peak_rate",
	"anchoring_non_peak_rate",
	"addons",
	"availability",
	"created_at",
	"updated_at",
}

// GetByID получает яхту по ID
// Результат не кэшируется между запросами: каждое бронирование считается
// от текущего состояния каталога, изменения цен владельцем применяются сразу
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Yacht, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(yachtColumns...).
		From("yachts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	yachts, err := r.scanYachts(rows)
	if err != nil {
		return nil, err
	}
	if len(yachts) == 0 {
		return nil, ErrYachtNotFound
	}

	return yachts[0], nil
}

// Search подбирает доступные яхты под критерии клиента:
// локация, тип, вместимость не меньше запрошенной.
// Проверка пересечений с календарем выполняется отдельно, per-candidate
func (r *Repository) Search(ctx context.Context, criteria domain.YachtSearchCriteria) ([]*domain.Yacht, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(yachtColumns...).
		From("yachts").
		Where(squirrel.Eq{"availability": true}).
		Where(squirrel.GtOrEq{"capacity": criteria.PeopleNo}).
		OrderBy("id ASC")

	if criteria.Location != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"location": criteria.Location})
	}
	if criteria.YachtType != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"yacht_type": criteria.YachtType})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Search - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	yachts, err := r.scanYachts(rows)
	if err != nil {
		return nil, err
	}

	// Фильтр по услугам: яхта подходит, если предлагает хотя бы одну
	// из запрошенных (addons хранятся в JSONB, фильтруем на приложении)
	if len(criteria.Addons) > 0 {
		filtered := make([]*domain.Yacht, 0, len(yachts))
		for _, y := range yachts {
			if offersAnyAddon(y, criteria.Addons) {
				filtered = append(filtered, y)
			}
		}
		yachts = filtered
	}

	return yachts, nil
}

func offersAnyAddon(y *domain.Yacht, addons []domain.AddonService) bool {
	for _, service := range addons {
		if _, ok := y.AddonRate(service); ok {
			return true
		}
	}
	return false
}

// scanYachts сканирует результаты запроса в слайс яхт
func (r *Repository) scanYachts(rows *sql.Rows) ([]*domain.Yacht, error) {
	yachts := make([]*domain.Yacht, 0)

	for rows.Next() {
		var yacht domain.Yacht
		var addons []byte
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&yacht.ID,
			&yacht.OwnerID,
			&yacht.Name,
			&yacht.YachtType,
			&yacht.Location,
			&yacht.PickupAt,
			&yacht.Capacity,
			&yacht.Price.Sailing.PeakTime,
			&yacht.Price.Sailing.NonPeakTime,
			&yacht.Price.Anchoring.PeakTime,
			&yacht.Price.Anchoring.NonPeakTime,
			&addons,
			&yacht.Availability,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanYachts - scan row: %v", ErrScanRow, err)
		}

		if len(addons) > 0 {
			if err := json.Unmarshal(addons, &yacht.Addons); err != nil {
				return nil, fmt.Errorf("%w: scanYachts - unmarshal addons: %v", ErrScanRow, err)
			}
		}

		yacht.CreatedAt = createdAt.Time
		yacht.UpdatedAt = updatedAt.Time

		yachts = append(yachts, &yacht)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanYachts - rows error: %v", ErrScanRow, err)
	}

	return yachts, nil
}
