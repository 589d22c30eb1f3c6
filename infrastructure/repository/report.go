// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/digital-grade-api/infrastructure/database/postgres"
	"github.com/vfg2006/digital-grade-api/internal/domain"
)

//go:generate mockgen -source=report.go -destination=mocks/mock_report.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const reportTable = "digital_grade_report"

// ReportTableDDL cria a tabela de relatórios e os índices de busca
const ReportTableDDL = `
CREATE TABLE IF NOT EXISTS digital_grade_report (
	id            VARCHAR(32) PRIMARY KEY,
	cache_key     VARCHAR(64) NOT NULL,
	business_name VARCHAR(200) NOT NULL,
	overall_grade SMALLINT NOT NULL,
	grade_letter  CHAR(1) NOT NULL,
	payload       JSONB NOT NULL,
	generated_at  TIMESTAMPTZ NOT NULL,
	expires_at    TIMESTAMPTZ NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_digital_grade_report_cache_key ON digital_grade_report (cache_key, generated_at DESC);
CREATE INDEX IF NOT EXISTS idx_digital_grade_report_business ON digital_grade_report (LOWER(business_name), generated_at DESC);
CREATE INDEX IF NOT EXISTS idx_digital_grade_report_expires_at ON digital_grade_report (expires_at);
`

type ReportRepository interface {
	Save(ctx context.Context, report *domain.DigitalGradeReport) error
	GetByID(ctx context.Context, id string) (*domain.DigitalGradeReport, error)
	GetLatestByCacheKey(ctx context.Context, cacheKey string) (*domain.DigitalGradeReport, error)
	GetLatestByBusinessName(ctx context.Context, businessName string) (*domain.DigitalGradeReport, error)
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type reportRepository struct {
	conn postgres.Queryer
}

func NewReportRepository(conn postgres.Queryer) ReportRepository {
	return &reportRepository{
		conn: conn,
	}
}

// Save grava o relatório. Relatórios são imutáveis: um id repetido não sobrescreve o existente.
func (r *reportRepository) Save(ctx context.Context, report *domain.DigitalGradeReport) error {
	query, args, err := buildSaveQuery(report)
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "erro ao salvar relatório %s", report.ID)
	}
	return nil
}

func (r *reportRepository) GetByID(ctx context.Context, id string) (*domain.DigitalGradeReport, error) {
	return r.getOne(ctx, selectReport().Where(squirrel.Eq{"id": id}))
}

func (r *reportRepository) GetLatestByCacheKey(ctx context.Context, cacheKey string) (*domain.DigitalGradeReport, error) {
	return r.getOne(ctx, selectReport().
		Where(squirrel.Eq{"cache_key": cacheKey}).
		OrderBy("generated_at DESC").
		Limit(1))
}

// GetLatestByBusinessName busca o relatório mais recente do negócio, sem diferenciar maiúsculas
func (r *reportRepository) GetLatestByBusinessName(ctx context.Context, businessName string) (*domain.DigitalGradeReport, error) {
	return r.getOne(ctx, selectReport().
		Where(squirrel.Expr("LOWER(business_name) = LOWER(?)", strings.TrimSpace(businessName))).
		OrderBy("generated_at DESC").
		Limit(1))
}

// DeleteExpiredBefore remove relatórios expirados antes do corte e devolve quantos foram removidos
func (r *reportRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(reportTable).
		Where(squirrel.Lt{"expires_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao remover relatórios expirados")
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao contar relatórios removidos")
	}
	return deleted, nil
}

func (r *reportRepository) getOne(ctx context.Context, builder squirrel.SelectBuilder) (*domain.DigitalGradeReport, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var payload []byte
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao buscar relatório")
	}

	return decodeReport(payload)
}

func selectReport() squirrel.SelectBuilder {
	return squirrel.
		Select("payload").
		From(reportTable).
		PlaceholderFormat(squirrel.Dollar)
}

func buildSaveQuery(report *domain.DigitalGradeReport) (string, []interface{}, error) {
	payload, err := encodeReport(report)
	if err != nil {
		return "", nil, err
	}

	query, args, err := squirrel.
		Insert(reportTable).
		Columns(
			"id",
			"cache_key",
			"business_name",
			"overall_grade",
			"grade_letter",
			"payload",
			"generated_at",
			"expires_at",
		).
		Values(
			report.ID,
			report.CacheKey,
			report.Subject.BusinessName,
			report.OverallGrade,
			string(report.GradeLetter),
			string(payload),
			report.GeneratedAt,
			report.ExpiresAt,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}
	return query, args, nil
}

func encodeReport(report *domain.DigitalGradeReport) ([]byte, error) {
	payload, err := json.Marshal(report)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar relatório")
	}
	return payload, nil
}

func decodeReport(payload []byte) (*domain.DigitalGradeReport, error) {
	var report domain.DigitalGradeReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar relatório")
	}
	return &report, nil
}
