package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/fsdevblog/storefront/pkg/uow"
)

const maxSettingKeyLen = 100

// SettingService хранилище настроек магазина в виде ключ - произвольный JSON.
type SettingService struct {
	settingRepo SettingRepository
}

func NewSettingService(u uow.UOW) (*SettingService, error) {
	settingRepo, err := uow.GetRepositoryAs[SettingRepository](u, uow.RepositoryName(repoargs.SettingRepoName))
	if err != nil {
		return nil, err
	}
	return &SettingService{settingRepo: settingRepo}, nil
}

func (s *SettingService) List(ctx context.Context) ([]domain.Setting, error) {
	return s.settingRepo.List(ctx) //nolint:wrapcheck
}

func (s *SettingService) Get(ctx context.Context, key string) (*domain.Setting, error) {
	return s.settingRepo.Get(ctx, key) //nolint:wrapcheck
}

func (s *SettingService) Put(ctx context.Context, key string, value json.RawMessage) (*domain.Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" || len(key) > maxSettingKeyLen {
		return nil, domain.NewValidationError("key", "must be 1-100 characters")
	}
	if len(value) == 0 || !json.Valid(value) {
		return nil, domain.NewValidationError("value", "must be valid JSON")
	}
	return s.settingRepo.Upsert(ctx, key, value) //nolint:wrapcheck
}

func (s *SettingService) Delete(ctx context.Context, key string) error {
	return s.settingRepo.Delete(ctx, key) //nolint:wrapcheck
}
