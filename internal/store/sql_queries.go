package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	secretsTable  = "secrets"
	columnName    = "name"
	columnSecret  = "secret"
	countAllNames = "COUNT(*)"
)

// buildCountSecretsByNameQuery counts rows named name.
func buildCountSecretsByNameQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.
		Select(countAllNames).
		From(secretsTable).
		Where(sq.Eq{columnName: name}).
		ToSql()
}

// buildInsertSecretQuery stores one ciphertext block under name.
func buildInsertSecretQuery(b sq.StatementBuilderType, name string, ciphertext []byte) (string, []any, error) {
	return b.
		Insert(secretsTable).
		Columns(columnName, columnSecret).
		Values(name, ciphertext).
		ToSql()
}

// buildSelectSecretQuery selects the ciphertext of the first row named name.
func buildSelectSecretQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.
		Select(columnSecret).
		From(secretsTable).
		Where(sq.Eq{columnName: name}).
		Limit(1).
		ToSql()
}

// buildDeleteSecretQuery removes every row named name.
func buildDeleteSecretQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.
		Delete(secretsTable).
		Where(sq.Eq{columnName: name}).
		ToSql()
}

// buildSelectSecretNamesQuery lists all names in lexical order.
func buildSelectSecretNamesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.
		Select(columnName).
		From(secretsTable).
		OrderBy(columnName).
		ToSql()
}
