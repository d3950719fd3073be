package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/seo-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/seo-manager-api/internal/domain"
)

const (
	datasourcesTable = "datasources d"
)

type DatasourceRepository interface {
	GetByID(datasourceID string) (*domain.Datasource, error)
	ListByCustomer(customerID string) ([]*domain.Datasource, error)
	ListActive() ([]*domain.Datasource, error)
	Create(ds *domain.Datasource) error
	Deactivate(datasourceID string) error
	Delete(datasourceID string) error
}

type datasourceRepository struct {
	conn *postgres.Connection
}

func NewDatasourceRepository(conn *postgres.Connection) DatasourceRepository {
	return &datasourceRepository{
		conn: conn,
	}
}

func (r *datasourceRepository) GetByID(datasourceID string) (*domain.Datasource, error) {
	return r.getDatasource(squirrel.Eq{"d.id": datasourceID})
}

func (r *datasourceRepository) getDatasource(whereClause map[string]interface{}) (*domain.Datasource, error) {
	query, args, err := squirrel.
		Select("d.id, d.customer_id, d.provider, d.active, d.created_at, d.updated_at").
		From(datasourcesTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	ds := &domain.Datasource{}
	err = row.Scan(&ds.ID, &ds.CustomerID, &ds.Provider, &ds.Active, &ds.CreatedAt, &ds.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear datasource: %w", err)
	}

	return ds, nil
}

func (r *datasourceRepository) ListByCustomer(customerID string) ([]*domain.Datasource, error) {
	return r.listDatasources(squirrel.Eq{"d.customer_id": customerID})
}

func (r *datasourceRepository) ListActive() ([]*domain.Datasource, error) {
	return r.listDatasources(squirrel.Eq{"d.active": true})
}

func (r *datasourceRepository) listDatasources(whereClause map[string]interface{}) ([]*domain.Datasource, error) {
	query, args, err := squirrel.
		Select("d.id, d.customer_id, d.provider, d.active, d.created_at, d.updated_at").
		From(datasourcesTable).
		Where(whereClause).
		OrderBy("d.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	datasources := make([]*domain.Datasource, 0)
	for rows.Next() {
		ds := &domain.Datasource{}
		if err := rows.Scan(&ds.ID, &ds.CustomerID, &ds.Provider, &ds.Active, &ds.CreatedAt, &ds.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear datasources: %w", err)
		}
		datasources = append(datasources, ds)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return datasources, nil
}

func (r *datasourceRepository) Create(ds *domain.Datasource) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("datasources").
		Columns("id", "customer_id", "provider", "active").
		Values(ds.ID, ds.CustomerID, ds.Provider, ds.Active).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// Deactivate aplica o soft delete (active=false), política padrão para datasources
func (r *datasourceRepository) Deactivate(datasourceID string) error {
	query, args, err := squirrel.StatementBuilder.
		Update("datasources").
		Set("active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": datasourceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// Delete remove a linha de fato; usado apenas quando a política da entidade é HARD
func (r *datasourceRepository) Delete(datasourceID string) error {
	query, args, err := squirrel.
		Delete("datasources").
		Where(squirrel.Eq{"id": datasourceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
