package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var buscaEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeBusca escapa os metacaracteres de LIKE para que a busca do usuário
// seja tratada como texto literal dentro do padrão ILIKE.
func escapeBusca(s string) string {
	return buscaEscaper.Replace(s)
}

// isUniqueViolation verifica se o erro é violação de constraint única (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isForeignKeyViolation verifica se o erro é violação de chave estrangeira (23503).
// É o que o banco devolve quando um DELETE atinge um registro protegido por pedidos.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
