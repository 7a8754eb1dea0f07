package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cotfact/internal/domain/entities"
	"cotfact/internal/usecase/interfaces"
)

var (
	ErrInvalidOwnerID      = errors.New("invalid owner id")
	ErrCompanyInfoNotFound = errors.New("company info not found")
	ErrPreferencesNotFound = errors.New("template preferences not found")
)

// ISettingsUseCase manages the per-owner singleton settings rows.

type ISettingsUseCase interface {
	GetCompanyInfo(ctx context.Context, ownerID string) (entities.CompanyInfo, error)
	SaveCompanyInfo(ctx context.Context, info entities.CompanyInfo) (entities.CompanyInfo, error)
	GetTemplatePreferences(ctx context.Context, ownerID string) (entities.TemplatePreferences, error)
	SaveTemplatePreferences(ctx context.Context, prefs entities.TemplatePreferences) (entities.TemplatePreferences, error)
}

type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

func (u *SettingsUseCase) GetCompanyInfo(ctx context.Context, ownerID string) (entities.CompanyInfo, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.CompanyInfo{}, ErrInvalidOwnerID
	}

	info, err := u.repo.GetCompanyInfo(ctx, ownerID)
	if err != nil {
		return entities.CompanyInfo{}, err
	}
	if info.OwnerID == "" {
		return entities.CompanyInfo{}, ErrCompanyInfoNotFound
	}
	return info, nil
}

// SaveCompanyInfo upserts the owner's company row. The preceding read only
// preserves fields the caller left empty; the write itself is a full put.
func (u *SettingsUseCase) SaveCompanyInfo(ctx context.Context, info entities.CompanyInfo) (entities.CompanyInfo, error) {
	info.OwnerID = strings.TrimSpace(info.OwnerID)
	if info.OwnerID == "" {
		return entities.CompanyInfo{}, ErrInvalidOwnerID
	}

	existing, err := u.repo.GetCompanyInfo(ctx, info.OwnerID)
	if err != nil {
		return entities.CompanyInfo{}, err
	}
	if existing.OwnerID != "" && info.LogoURL == "" {
		info.LogoURL = existing.LogoURL
	}

	info.UpdatedAt = time.Now().UTC()
	return u.repo.PutCompanyInfo(ctx, info)
}

func (u *SettingsUseCase) GetTemplatePreferences(ctx context.Context, ownerID string) (entities.TemplatePreferences, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.TemplatePreferences{}, ErrInvalidOwnerID
	}

	prefs, err := u.repo.GetTemplatePreferences(ctx, ownerID)
	if err != nil {
		return entities.TemplatePreferences{}, err
	}
	if prefs.OwnerID == "" {
		return entities.TemplatePreferences{}, ErrPreferencesNotFound
	}
	return prefs, nil
}

func (u *SettingsUseCase) SaveTemplatePreferences(ctx context.Context, prefs entities.TemplatePreferences) (entities.TemplatePreferences, error) {
	prefs.OwnerID = strings.TrimSpace(prefs.OwnerID)
	if prefs.OwnerID == "" {
		return entities.TemplatePreferences{}, ErrInvalidOwnerID
	}

	prefs.UpdatedAt = time.Now().UTC()
	return u.repo.PutTemplatePreferences(ctx, prefs)
}
