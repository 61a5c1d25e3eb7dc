package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m-andrianov/BRB-BookingService/internal/domain"
	"github.com/m-andrianov/BRB-BookingService/pkg/dbmetrics"
	"github.com/m-andrianov/BRB-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий каталога услуг и пакетов.
// Каталог в этом сервисе только читается; управление им живёт в админке.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListServices возвращает все услуги каталога в порядке отображения
func (r *Repository) ListServices(ctx context.Context) ([]domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "duration_minutes", "price").
		From("services").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]domain.Service, 0)
	for rows.Next() {
		var svc domain.Service
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.DurationMinutes, &svc.Price); err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - iterate rows: %v", ErrExecQuery, err)
	}

	return services, nil
}

// ListPackages возвращает все пакеты каталога в порядке отображения
func (r *Repository) ListPackages(ctx context.Context) ([]domain.ServicePackage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "duration_minutes", "price", "service_ids").
		From("packages").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListPackages - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPackages - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	packages := make([]domain.ServicePackage, 0)
	for rows.Next() {
		var pkg domain.ServicePackage
		var serviceIDs pq.Int64Array
		if err := rows.Scan(&pkg.ID, &pkg.Name, &pkg.DurationMinutes, &pkg.Price, &serviceIDs); err != nil {
			return nil, fmt.Errorf("%w: ListPackages - scan row: %v", ErrScanRow, err)
		}
		pkg.ServiceIDs = []int64(serviceIDs)
		packages = append(packages, pkg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPackages - iterate rows: %v", ErrExecQuery, err)
	}

	return packages, nil
}

// GetService возвращает услугу по id
func (r *Repository) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "duration_minutes", "price").
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(&svc.ID, &svc.Name, &svc.DurationMinutes, &svc.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("%w: GetService - scan row: %v", ErrScanRow, err)
	}

	return &svc, nil
}

// GetPackage возвращает пакет по id
func (r *Repository) GetPackage(ctx context.Context, id int64) (*domain.ServicePackage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "duration_minutes", "price", "service_ids").
		From("packages").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetPackage - build select query: %v", ErrBuildQuery, err)
	}

	var pkg domain.ServicePackage
	var serviceIDs pq.Int64Array
	err = executor.QueryRowContext(ctx, query, args...).Scan(&pkg.ID, &pkg.Name, &pkg.DurationMinutes, &pkg.Price, &serviceIDs)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("%w: GetPackage - scan row: %v", ErrScanRow, err)
	}
	pkg.ServiceIDs = []int64(serviceIDs)

	return &pkg, nil
}
