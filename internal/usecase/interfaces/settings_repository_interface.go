package interfaces

import (
	"context"

	"cotfact/internal/domain/entities"
)

//go:generate mockgen -source=settings_repository_interface.go -destination=mocks/settings_repository_mock.go -package=mock_interfaces

// ISettingsRepository abstracts persistence for the per-owner singleton
// settings rows (company info, template preferences).
//
// Both rows are written with a read-then-upsert; the window between the read
// and the write is acceptable because each row has a single writer in
// practice.

type ISettingsRepository interface {
	GetCompanyInfo(ctx context.Context, ownerID string) (entities.CompanyInfo, error)
	PutCompanyInfo(ctx context.Context, info entities.CompanyInfo) (entities.CompanyInfo, error)
	GetTemplatePreferences(ctx context.Context, ownerID string) (entities.TemplatePreferences, error)
	PutTemplatePreferences(ctx context.Context, prefs entities.TemplatePreferences) (entities.TemplatePreferences, error)
}
