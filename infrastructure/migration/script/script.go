package main

import (
	"context"
	"database/sql"
	"os"
	"sort"
	"time"

	"github.com/vfg2006/digital-grade-api/infrastructure/database/postgres"
	"github.com/vfg2006/digital-grade-api/infrastructure/repository"
	"github.com/vfg2006/digital-grade-api/internal/config"
	"github.com/vfg2006/digital-grade-api/pkg/log"
)

const migrationTableDDL = `
CREATE TABLE IF NOT EXISTS schema_migration (
	version    INTEGER PRIMARY KEY,
	name       VARCHAR(100) NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

type migration struct {
	Version int
	Name    string
	SQL     string
}

var migrations = []migration{
	{Version: 1, Name: "create_digital_grade_report", SQL: repository.ReportTableDDL},
}

// pending devolve as migrações ainda não aplicadas, em ordem de versão
func pending(all []migration, applied map[int]bool) []migration {
	out := make([]migration, 0, len(all))
	for _, m := range all {
		if !applied[m.Version] {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out
}

func appliedVersions(ctx context.Context, conn postgres.Queryer) (map[int]bool, error) {
	rows, err := conn.QueryContext(ctx, "SELECT version FROM schema_migration")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := map[int]bool{}
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

func apply(ctx context.Context, conn *postgres.Connection, m migration) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, "INSERT INTO schema_migration (version, name) VALUES ($1, $2)", m.Version, m.Name)
		return err
	})
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao carregar configuração")
	}
	log.Setup(cfg.App.LogLevel)
	log.L.Info("Iniciando script de migração...")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()
	log.L.Info("Conexão com o banco de dados estabelecida com sucesso")

	if _, err := conn.ExecContext(ctx, migrationTableDDL); err != nil {
		log.L.WithError(err).Fatal("Erro ao criar tabela de controle de migrações")
	}

	applied, err := appliedVersions(ctx, conn)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao consultar migrações aplicadas")
	}

	todo := pending(migrations, applied)
	if len(todo) == 0 {
		log.L.Info("Nenhuma migração pendente")
		return
	}

	startTime := time.Now()
	for _, m := range todo {
		logger := log.L.WithFields(log.Fields{"version": m.Version, "name": m.Name})
		if err := apply(ctx, conn, m); err != nil {
			logger.WithError(err).Error("Erro ao aplicar migração, transação revertida")
			os.Exit(1)
		}
		logger.Info("Migração aplicada")
	}

	log.L.Infof("%d migrações aplicadas em %v", len(todo), time.Since(startTime))
}
