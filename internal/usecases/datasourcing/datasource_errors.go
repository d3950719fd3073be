package datasourcing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de datasources
var (
	// Erros de validação
	ErrDatasourceIDRequired  = errors.New("datasource ID is required")
	ErrDatasourceNotFound    = errors.New("datasource not found")
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrInvalidProvider       = errors.New("invalid provider")
	ErrBindingRequired       = errors.New("binding payload is required")
	ErrResourceAlreadyBound  = errors.New("resource already attached to another datasource")
	ErrProviderBindingExists = errors.New("datasource already has a binding for its provider")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrFetchDatasources  = errors.New("error fetching datasources from database")

	// Erros de criação
	ErrGenerateID = errors.New("error generating datasource ID")
)

// DatasourceError é um erro com contexto adicional para datasources
type DatasourceError struct {
	Err          error  // Erro base
	Code         string // Código de erro para API
	DatasourceID string // ID do datasource envolvido (quando aplicável)
	Details      string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DatasourceError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DatasourceError) Unwrap() error {
	return e.Err
}

// NewDatasourceError cria um novo DatasourceError
func NewDatasourceError(err error, code string, details string) *DatasourceError {
	return &DatasourceError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewDatasourceErrorWithID cria um novo DatasourceError com ID do datasource
func NewDatasourceErrorWithID(err error, code string, datasourceID string, details string) *DatasourceError {
	return &DatasourceError{
		Err:          err,
		Code:         code,
		DatasourceID: datasourceID,
		Details:      details,
	}
}
