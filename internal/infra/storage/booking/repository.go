package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/harbourline/yacht-booking-service/internal/domain"
	"github.com/harbourline/yacht-booking-service/pkg/dbmetrics"
	"github.com/harbourline/yacht-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var bookingColumns = []string{
	"id",
	"user_id",
	"agent_id",
	"yacht_id",
	"location",
	"package_label",
	"sailing_hours",
	"anchorage_hours",
	"start_date",
	"end_date",
	"people_no",
	"capacity",
	"yacht_name",
	"yacht_type",
	"customer_name",
	"customer_phone",
	"customer_email",
	"special_event",
	"special_request",
	"addons",
	"package_amount",
	"addon_cost",
	"gst_amount",
	"total_amount",
	"payment_status",
	"ride_status",
	"status",
	"razorpay_order_id",
	"is_agent_booking",
	"created_at",
	"updated_at",
}

// Create создает новое бронирование и возвращает его с присвоенным ID.
// Заказ платежного шлюза на этом этапе еще не создан (razorpay_order_id пуст);
// он проставляется через SetOrderRef внутри той же транзакции.
//
// Вызывается только внутри сериализуемой транзакции usecase'а создания
// бронирования - проверка пересечений и вставка должны быть одной единицей
// работы, иначе возможен double-booking
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	addons, err := json.Marshal(booking.Addons)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal addons: %v", ErrEncodeAddons, err)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"agent_id",
			"yacht_id",
			"location",
			"package_label",
			"sailing_hours",
			"anchorage_hours",
			"start_date",
			"end_date",
			"people_no",
			"capacity",
			"yacht_name",
			"yacht_type",
			"customer_name",
			"customer_phone",
			"customer_email",
			"special_event",
			"special_request",
			"addons",
			"package_amount",
			"addon_cost",
			"gst_amount",
			"total_amount",
			"payment_status",
			"ride_status",
			"status",
			"razorpay_order_id",
			"is_agent_booking",
		).
		Values(
			booking.UserID,
			booking.AgentID,
			booking.YachtID,
			booking.Location,
			booking.PackageLabel,
			booking.SailingHours,
			booking.AnchorHours,
			booking.StartDate,
			booking.EndDate,
			booking.PeopleNo,
			booking.Capacity,
			booking.YachtName,
			booking.YachtType,
			booking.CustomerName,
			booking.CustomerPhone,
			booking.CustomerEmail,
			booking.SpecialEvent,
			booking.SpecialRequest,
			addons,
			booking.PackageAmount,
			booking.AddonCost,
			booking.GstAmount,
			booking.TotalAmount,
			booking.PaymentStatus,
			booking.RideStatus,
			booking.Status,
			booking.RazorpayOrderID,
			booking.IsAgentBooking,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		// Цепочка ошибки драйвера сохраняется: txmanager распознает по ней
		// SQLSTATE конфликта (40001, 23P01) при проигрыше в гонке за окно
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// SetOrderRef проставляет ссылку на заказ платежного шлюза.
// Выполняется в той же транзакции, что и Create: откат транзакции при
// недоступности шлюза не оставляет бронирования без заказа
func (r *Repository) SetOrderRef(ctx context.Context, id int64, orderID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("razorpay_order_id", orderID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetOrderRef - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetOrderRef - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetOrderRef - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// FindOverlapping возвращает подтвержденные бронирования яхты,
// пересекающиеся с интервалом [start, end).
// Граничные случаи пересечением не считаются: бронирование, заканчивающееся
// ровно в момент начала запрошенного окна, не конфликтует.
//
// Внутри транзакции добавляет FOR UPDATE - блокировка строк на время
// check-then-insert последовательности usecase'а создания бронирования
func (r *Repository) FindOverlapping(ctx context.Context, yachtID int64, interval domain.Interval) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"yacht_id": yachtID}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		Where(squirrel.Lt{"start_date": interval.End}).
		Where(squirrel.Gt{"end_date": interval.Start}).
		OrderBy("start_date ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
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

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}

	return bookings[0], nil
}

// GetByUserID получает историю бронирований пользователя.
// Списки бронирований пользователя и владельца - производные read-only
// представления (запрос по индексу), а не избыточно поддерживаемые массивы
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("start_date DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateTotalAndOrder обновляет итоговую сумму и ссылку на заказ шлюза.
// Используется ревалидацией промокода: новая сумма и замененный заказ
// применяются одним UPDATE - либо целиком, либо никак
func (r *Repository) UpdateTotalAndOrder(ctx context.Context, id int64, totalAmount float64, orderID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("total_amount", totalAmount).
		Set("razorpay_order_id", orderID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateTotalAndOrder - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateTotalAndOrder - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateTotalAndOrder - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var addons []byte
		var startDate, endDate time.Time
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.AgentID,
			&booking.YachtID,
			&booking.Location,
			&booking.PackageLabel,
			&booking.SailingHours,
			&booking.AnchorHours,
			&startDate,
			&endDate,
			&booking.PeopleNo,
			&booking.Capacity,
			&booking.YachtName,
			&booking.YachtType,
			&booking.CustomerName,
			&booking.CustomerPhone,
			&booking.CustomerEmail,
			&booking.SpecialEvent,
			&booking.SpecialRequest,
			&addons,
			&booking.PackageAmount,
			&booking.AddonCost,
			&booking.GstAmount,
			&booking.TotalAmount,
			&booking.PaymentStatus,
			&booking.RideStatus,
			&booking.Status,
			&booking.RazorpayOrderID,
			&booking.IsAgentBooking,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		if len(addons) > 0 {
			if err := json.Unmarshal(addons, &booking.Addons); err != nil {
				return nil, fmt.Errorf("%w: scanBookings - unmarshal addons: %v", ErrScanRow, err)
			}
		}

		booking.StartDate = startDate
		booking.EndDate = endDate
		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
