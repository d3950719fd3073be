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
	mangoolsBindingsTable = "mangools_tracking_bindings mtb"
	gaBindingsTable       = "ga_property_bindings gpb"
	semrushBindingsTable  = "semrush_domain_bindings sdb"
)

// BindingRepository resolve e mantém a identidade do recurso de cada provedor
// vinculado a um datasource. Cada datasource tem no máximo um vínculo; um recurso
// (tracking, propriedade, domínio) pode estar vinculado a no máximo um datasource
// ativo no sistema inteiro.
type BindingRepository interface {
	GetMangoolsBinding(datasourceID string) (*domain.MangoolsTrackingBinding, error)
	GetGABinding(datasourceID string) (*domain.GAPropertyBinding, error)
	GetSemrushBinding(datasourceID string) (*domain.SemrushDomainBinding, error)

	ListAttachedMangoolsTrackings() (map[string]struct{}, error)
	ListAttachedGAProperties() (map[string]struct{}, error)
	ListAttachedSemrushDomains() (map[string]struct{}, error)

	SaveMangoolsBinding(binding *domain.MangoolsTrackingBinding) error
	SaveGABinding(binding *domain.GAPropertyBinding) error
	SaveSemrushBinding(binding *domain.SemrushDomainBinding) error

	DeactivateByDatasource(datasourceID string) error
}

type bindingRepository struct {
	conn *postgres.Connection
}

func NewBindingRepository(conn *postgres.Connection) BindingRepository {
	return &bindingRepository{
		conn: conn,
	}
}

func (r *bindingRepository) GetMangoolsBinding(datasourceID string) (*domain.MangoolsTrackingBinding, error) {
	query, args, err := squirrel.
		Select("mtb.datasource_id, mtb.tracking_id, mtb.domain, mtb.active, mtb.created_at").
		From(mangoolsBindingsTable).
		Where(squirrel.Eq{"mtb.datasource_id": datasourceID, "mtb.active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	binding := &domain.MangoolsTrackingBinding{}
	err = row.Scan(&binding.DatasourceID, &binding.TrackingID, &binding.Domain, &binding.Active, &binding.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear vínculo do Mangools: %w", err)
	}

	return binding, nil
}

func (r *bindingRepository) GetGABinding(datasourceID string) (*domain.GAPropertyBinding, error) {
	query, args, err := squirrel.
		Select("gpb.datasource_id, gpb.property_id, gpb.property_name, gpb.timezone, gpb.currency, gpb.active, gpb.created_at").
		From(gaBindingsTable).
		Where(squirrel.Eq{"gpb.datasource_id": datasourceID, "gpb.active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	binding := &domain.GAPropertyBinding{}
	err = row.Scan(
		&binding.DatasourceID,
		&binding.PropertyID,
		&binding.PropertyName,
		&binding.Timezone,
		&binding.Currency,
		&binding.Active,
		&binding.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear vínculo do Google Analytics: %w", err)
	}

	return binding, nil
}

func (r *bindingRepository) GetSemrushBinding(datasourceID string) (*domain.SemrushDomainBinding, error) {
	query, args, err := squirrel.
		Select("sdb.datasource_id, sdb.domain, sdb.active, sdb.created_at").
		From(semrushBindingsTable).
		Where(squirrel.Eq{"sdb.datasource_id": datasourceID, "sdb.active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	binding := &domain.SemrushDomainBinding{}
	err = row.Scan(&binding.DatasourceID, &binding.Domain, &binding.Active, &binding.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear vínculo do SEMrush: %w", err)
	}

	return binding, nil
}

func (r *bindingRepository) ListAttachedMangoolsTrackings() (map[string]struct{}, error) {
	return r.listAttached(mangoolsBindingsTable, "mtb.tracking_id", "mtb.active")
}

func (r *bindingRepository) ListAttachedGAProperties() (map[string]struct{}, error) {
	return r.listAttached(gaBindingsTable, "gpb.property_id", "gpb.active")
}

func (r *bindingRepository) ListAttachedSemrushDomains() (map[string]struct{}, error) {
	return r.listAttached(semrushBindingsTable, "sdb.domain", "sdb.active")
}

// listAttached devolve o conjunto de recursos já vinculados, usado pela checagem
// de unicidade do attach
func (r *bindingRepository) listAttached(table, column, activeColumn string) (map[string]struct{}, error) {
	query, args, err := squirrel.
		Select(column).
		From(table).
		Where(squirrel.Eq{activeColumn: true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	attached := make(map[string]struct{})
	for rows.Next() {
		var resource string
		if err := rows.Scan(&resource); err != nil {
			return nil, fmt.Errorf("erro ao escanear recurso vinculado: %w", err)
		}
		attached[resource] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return attached, nil
}

func (r *bindingRepository) SaveMangoolsBinding(binding *domain.MangoolsTrackingBinding) error {
	query := squirrel.StatementBuilder.
		Insert("mangools_tracking_bindings").
		Columns("datasource_id", "tracking_id", "domain", "active").
		Values(binding.DatasourceID, binding.TrackingID, binding.Domain, binding.Active).
		Suffix(`
			ON CONFLICT (datasource_id) DO UPDATE SET
				tracking_id = EXCLUDED.tracking_id,
				domain = EXCLUDED.domain,
				active = EXCLUDED.active
		`).
		PlaceholderFormat(squirrel.Dollar)

	return r.execBinding(query)
}

func (r *bindingRepository) SaveGABinding(binding *domain.GAPropertyBinding) error {
	query := squirrel.StatementBuilder.
		Insert("ga_property_bindings").
		Columns("datasource_id", "property_id", "property_name", "timezone", "currency", "active").
		Values(
			binding.DatasourceID,
			binding.PropertyID,
			binding.PropertyName,
			binding.Timezone,
			binding.Currency,
			binding.Active,
		).
		Suffix(`
			ON CONFLICT (datasource_id) DO UPDATE SET
				property_id = EXCLUDED.property_id,
				property_name = EXCLUDED.property_name,
				timezone = EXCLUDED.timezone,
				currency = EXCLUDED.currency,
				active = EXCLUDED.active
		`).
		PlaceholderFormat(squirrel.Dollar)

	return r.execBinding(query)
}

func (r *bindingRepository) SaveSemrushBinding(binding *domain.SemrushDomainBinding) error {
	query := squirrel.StatementBuilder.
		Insert("semrush_domain_bindings").
		Columns("datasource_id", "domain", "active").
		Values(binding.DatasourceID, binding.Domain, binding.Active).
		Suffix(`
			ON CONFLICT (datasource_id) DO UPDATE SET
				domain = EXCLUDED.domain,
				active = EXCLUDED.active
		`).
		PlaceholderFormat(squirrel.Dollar)

	return r.execBinding(query)
}

func (r *bindingRepository) execBinding(query squirrel.InsertBuilder) error {
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

// DeactivateByDatasource aplica soft delete em todos os vínculos do datasource,
// acompanhando a política de remoção de datasources
func (r *bindingRepository) DeactivateByDatasource(datasourceID string) error {
	for _, table := range []string{"mangools_tracking_bindings", "ga_property_bindings", "semrush_domain_bindings"} {
		query, args, err := squirrel.StatementBuilder.
			Update(table).
			Set("active", false).
			Where(squirrel.Eq{"datasource_id": datasourceID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err = r.conn.Exec(query, args...); err != nil {
			return fmt.Errorf("erro ao executar a query: %w", err)
		}
	}

	return nil
}
