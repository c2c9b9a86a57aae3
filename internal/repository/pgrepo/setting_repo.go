package pgrepo

import (
	"context"
	"encoding/json"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type SettingRepository struct {
	conn uow.DBTX
}

func NewSettingRepository(conn uow.DBTX) *SettingRepository {
	return &SettingRepository{conn: conn}
}

func (s *SettingRepository) List(ctx context.Context) ([]domain.Setting, error) {
	rows, err := s.conn.Query(ctx, `SELECT key, value, updated_at FROM settings ORDER BY key`)
	if err != nil {
		return nil, convertErr(err, "listing settings")
	}
	settings, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Setting, error) {
		var setting domain.Setting
		scanErr := row.Scan(&setting.Key, &setting.Value, &setting.UpdatedAt)
		return setting, scanErr
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "listing settings")
	}
	return settings, nil
}

func (s *SettingRepository) Get(ctx context.Context, key string) (*domain.Setting, error) {
	var setting domain.Setting
	err := s.conn.QueryRow(ctx, `SELECT key, value, updated_at FROM settings WHERE key = $1`, key).
		Scan(&setting.Key, &setting.Value, &setting.UpdatedAt)
	if err != nil {
		return nil, convertErr(err, "getting setting `%s`", key)
	}
	return &setting, nil
}

// Upsert создает настройку или перезаписывает значение существующей.
func (s *SettingRepository) Upsert(ctx context.Context, key string, value json.RawMessage) (*domain.Setting, error) {
	var setting domain.Setting
	err := s.conn.QueryRow(ctx,
		`INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
		RETURNING key, value, updated_at`,
		key, value,
	).Scan(&setting.Key, &setting.Value, &setting.UpdatedAt)
	if err != nil {
		return nil, convertErr(err, "saving setting `%s`", key)
	}
	return &setting, nil
}

func (s *SettingRepository) Delete(ctx context.Context, key string) error {
	tag, err := s.conn.Exec(ctx, `DELETE FROM settings WHERE key = $1`, key)
	if err != nil {
		return convertErr(err, "deleting setting `%s`", key)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting setting `%s`", key)
	}
	return nil
}
