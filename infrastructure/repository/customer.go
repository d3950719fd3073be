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
	customersTable = "customers c"
)

type CustomerRepository interface {
	GetByID(customerID string) (*domain.Customer, error)
	List() ([]*domain.Customer, error)
	Create(customer *domain.Customer) error
	Update(customer *domain.Customer) error
	Delete(customerID string) error
}

type customerRepository struct {
	conn *postgres.Connection
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) GetByID(customerID string) (*domain.Customer, error) {
	query, args, err := squirrel.
		Select("c.id, c.name, c.company, c.email, c.active, c.created_at, c.updated_at").
		From(customersTable).
		Where(squirrel.Eq{"c.id": customerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	customer := &domain.Customer{}
	err = row.Scan(
		&customer.ID,
		&customer.Name,
		&customer.Company,
		&customer.Email,
		&customer.Active,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear customer: %w", err)
	}

	return customer, nil
}

func (r *customerRepository) List() ([]*domain.Customer, error) {
	query, args, err := squirrel.
		Select("c.id, c.name, c.company, c.email, c.active, c.created_at, c.updated_at").
		From(customersTable).
		OrderBy("c.name ASC").
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

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		customer := &domain.Customer{}
		err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Company,
			&customer.Email,
			&customer.Active,
			&customer.CreatedAt,
			&customer.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear customers: %w", err)
		}
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return customers, nil
}

func (r *customerRepository) Create(customer *domain.Customer) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("customers").
		Columns("id", "name", "company", "email", "active").
		Values(customer.ID, customer.Name, customer.Company, customer.Email, customer.Active).
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

func (r *customerRepository) Update(customer *domain.Customer) error {
	query, args, err := squirrel.StatementBuilder.
		Update("customers").
		Set("name", customer.Name).
		Set("company", customer.Company).
		Set("email", customer.Email).
		Set("active", customer.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": customer.ID}).
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

// Delete remove o customer de fato: a política para customers é HARD
func (r *customerRepository) Delete(customerID string) error {
	query, args, err := squirrel.
		Delete("customers").
		Where(squirrel.Eq{"id": customerID}).
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
