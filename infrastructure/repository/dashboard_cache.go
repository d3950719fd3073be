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
	dashboardCacheTable = "dashboard_cache dc"
)

type DashboardCacheRepository interface {
	GetByKey(datasourceID, resourceID, startDate, endDate string) (*domain.DashboardCacheEntry, error)
	SaveOrUpdate(entry *domain.DashboardCacheEntry) error
}

type dashboardCacheRepository struct {
	conn *postgres.Connection
}

func NewDashboardCacheRepository(conn *postgres.Connection) DashboardCacheRepository {
	return &dashboardCacheRepository{
		conn: conn,
	}
}

// GetByKey busca a entrada exata para a chave composta (datasource, recurso,
// início, fim). Ausência de linha não é erro: retorna nil para o chamador tratar
// como cache miss.
func (r *dashboardCacheRepository) GetByKey(datasourceID, resourceID, startDate, endDate string) (*domain.DashboardCacheEntry, error) {
	query, args, err := squirrel.
		Select("dc.id, dc.datasource_id, dc.resource_id, dc.provider, dc.start_date, dc.end_date, dc.payload, dc.created_at, dc.updated_at").
		From(dashboardCacheTable).
		Where(squirrel.Eq{
			"dc.datasource_id": datasourceID,
			"dc.resource_id":   resourceID,
			"dc.start_date":    startDate,
			"dc.end_date":      endDate,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	entry := &domain.DashboardCacheEntry{}
	err = row.Scan(
		&entry.ID,
		&entry.DatasourceID,
		&entry.ResourceID,
		&entry.Provider,
		&entry.StartDate,
		&entry.EndDate,
		&entry.Payload,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear entrada do cache: %w", err)
	}

	return entry, nil
}

// SaveOrUpdate grava o payload calculado; conflito na chave composta sobrescreve
// o payload e atualiza o timestamp (last-write-wins)
func (r *dashboardCacheRepository) SaveOrUpdate(entry *domain.DashboardCacheEntry) error {
	query := squirrel.StatementBuilder.
		Insert("dashboard_cache").
		Columns("datasource_id", "resource_id", "provider", "start_date", "end_date", "payload").
		Values(
			entry.DatasourceID,
			entry.ResourceID,
			entry.Provider,
			entry.StartDate,
			entry.EndDate,
			entry.Payload,
		).
		Suffix(`
			ON CONFLICT (datasource_id, resource_id, start_date, end_date) DO UPDATE SET
				provider = EXCLUDED.provider,
				payload = EXCLUDED.payload,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
