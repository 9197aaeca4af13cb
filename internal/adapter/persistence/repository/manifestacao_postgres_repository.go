package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"ouvidoria/internal/domain/entities"
	"ouvidoria/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// ManifestacoesSchema creates the table and its protocol index when missing.
const ManifestacoesSchema = `
CREATE TABLE IF NOT EXISTS manifestacoes (
	id               TEXT PRIMARY KEY,
	protocolo        TEXT NOT NULL UNIQUE,
	nome             TEXT NOT NULL,
	email            TEXT NOT NULL,
	telefone         TEXT NOT NULL,
	tipo             TEXT NOT NULL,
	status           TEXT NOT NULL,
	assunto          TEXT NOT NULL DEFAULT '',
	descricao        TEXT NOT NULL,
	endereco         TEXT NOT NULL,
	observacoes      TEXT NOT NULL DEFAULT '',
	data_criacao     TIMESTAMPTZ NOT NULL,
	data_atualizacao TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS manifestacoes_status_idx ON manifestacoes (status);
CREATE INDEX IF NOT EXISTS manifestacoes_data_criacao_idx ON manifestacoes (data_criacao DESC);
`

const manifestacaoColumns = `id, protocolo, nome, email, telefone, tipo, status, assunto, descricao, endereco,
	observacoes, data_criacao, data_atualizacao`

// PgxQuerier is the subset of *pgxpool.Pool used by the repository.
type PgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ManifestacaoPostgresRepository struct {
	db PgxQuerier
}

var _ interfaces.IManifestacaoRepository = (*ManifestacaoPostgresRepository)(nil)

func NewManifestacaoPostgresRepository(db PgxQuerier) *ManifestacaoPostgresRepository {
	return &ManifestacaoPostgresRepository{db: db}
}

// EnsureSchema applies ManifestacoesSchema.
func (r *ManifestacaoPostgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, ManifestacoesSchema)
	return err
}

func (r *ManifestacaoPostgresRepository) Create(ctx context.Context, m entities.Manifestacao) (entities.Manifestacao, error) {
	_, err := r.db.Exec(ctx, `
		INSERT INTO manifestacoes (`+manifestacaoColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		m.ID, m.Protocolo, m.Nome, m.Email, m.Telefone, string(m.Tipo), string(m.Status),
		m.Assunto, m.Descricao, m.Endereco, m.Observacoes, m.DataCriacao.UTC(), m.DataAtualizacao,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return entities.Manifestacao{}, ErrDuplicateID
		}
		return entities.Manifestacao{}, err
	}
	return m, nil
}

func (r *ManifestacaoPostgresRepository) GetByID(ctx context.Context, id string) (entities.Manifestacao, error) {
	return r.getOne(ctx, `SELECT `+manifestacaoColumns+` FROM manifestacoes WHERE id = $1`, id)
}

func (r *ManifestacaoPostgresRepository) GetByProtocolo(ctx context.Context, protocolo string) (entities.Manifestacao, error) {
	return r.getOne(ctx, `SELECT `+manifestacaoColumns+` FROM manifestacoes WHERE protocolo = $1`, protocolo)
}

// getOne runs a single-row query; no row yields a zero Manifestacao.
func (r *ManifestacaoPostgresRepository) getOne(ctx context.Context, sql string, args ...any) (entities.Manifestacao, error) {
	m, err := scanManifestacao(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Manifestacao{}, nil
		}
		return entities.Manifestacao{}, err
	}
	return m, nil
}

// List filters in SQL; ordering and paging are left to the use case.
func (r *ManifestacaoPostgresRepository) List(ctx context.Context, f entities.Filtros) ([]entities.Manifestacao, error) {
	where, args := buildManifestacaoWhere(f)
	rows, err := r.db.Query(ctx, `SELECT `+manifestacaoColumns+` FROM manifestacoes `+where+` ORDER BY data_criacao DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.Manifestacao{}
	for rows.Next() {
		m, err := scanManifestacao(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *ManifestacaoPostgresRepository) UpdateStatus(ctx context.Context, id string, upd entities.AtualizarStatus, at time.Time) (entities.Manifestacao, error) {
	return r.getOne(ctx, `
		UPDATE manifestacoes SET status = $1, observacoes = $2, data_atualizacao = $3
		WHERE id = $4
		RETURNING `+manifestacaoColumns,
		string(upd.Status), upd.Observacoes, at.UTC(), id,
	)
}

// buildManifestacaoWhere composes the WHERE clause and its positional args.
func buildManifestacaoWhere(f entities.Filtros) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	if f.Status != "" {
		args = append(args, string(f.Status))
		clauses = append(clauses, "status = $"+itoa(len(args)))
	}
	if f.Tipo != "" {
		args = append(args, string(f.Tipo))
		clauses = append(clauses, "tipo = $"+itoa(len(args)))
	}
	if e := strings.TrimSpace(f.Email); e != "" {
		args = append(args, strings.ToLower(e))
		clauses = append(clauses, "LOWER(email) = $"+itoa(len(args)))
	}
	if p := entities.NormalizeProtocolo(f.Protocolo); p != "" {
		args = append(args, "%"+p+"%")
		clauses = append(clauses, "protocolo LIKE $"+itoa(len(args)))
	}
	if f.DataInicio != nil {
		args = append(args, f.DataInicio.UTC())
		clauses = append(clauses, "data_criacao >= $"+itoa(len(args)))
	}
	if f.DataFim != nil {
		args = append(args, f.DataFim.UTC())
		clauses = append(clauses, "data_criacao <= $"+itoa(len(args)))
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}

func scanManifestacao(row pgx.Row) (entities.Manifestacao, error) {
	var (
		m      entities.Manifestacao
		tipo   string
		status string
	)
	err := row.Scan(
		&m.ID, &m.Protocolo, &m.Nome, &m.Email, &m.Telefone, &tipo, &status,
		&m.Assunto, &m.Descricao, &m.Endereco, &m.Observacoes, &m.DataCriacao, &m.DataAtualizacao,
	)
	if err != nil {
		return entities.Manifestacao{}, err
	}
	m.Tipo = entities.TipoManifestacao(tipo)
	m.Status = entities.StatusManifestacao(status)
	m.DataCriacao = m.DataCriacao.UTC()
	if m.DataAtualizacao != nil {
		t := m.DataAtualizacao.UTC()
		m.DataAtualizacao = &t
	}
	return m, nil
}

func itoa(i int) string { return strconv.Itoa(i) }
