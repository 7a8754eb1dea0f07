package usecase

import (
	"context"
	"errors"
	"testing"

	"cotfact/internal/domain/entities"
	mock_interfaces "cotfact/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSettingsUseCase_CompanyInfo(t *testing.T) {
	t.Run("empty owner id", func(t *testing.T) {
		uc := NewSettingsUseCase(nil)
		if _, err := uc.GetCompanyInfo(context.Background(), "  "); !errors.Is(err, ErrInvalidOwnerID) {
			t.Fatalf("expected ErrInvalidOwnerID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)

		repo.EXPECT().GetCompanyInfo(gomock.Any(), "owner-1").Return(entities.CompanyInfo{}, nil)

		if _, err := uc.GetCompanyInfo(context.Background(), "owner-1"); !errors.Is(err, ErrCompanyInfoNotFound) {
			t.Fatalf("expected ErrCompanyInfoNotFound, got %v", err)
		}
	})

	t.Run("save keeps the stored logo when the payload omits it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)

		repo.EXPECT().GetCompanyInfo(gomock.Any(), "owner-1").Return(entities.CompanyInfo{
			OwnerID: "owner-1", Name: "Old Name", LogoURL: "https://cdn.example/logo.png",
		}, nil)
		repo.EXPECT().PutCompanyInfo(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, info entities.CompanyInfo) (entities.CompanyInfo, error) { return info, nil })

		got, err := uc.SaveCompanyInfo(context.Background(), entities.CompanyInfo{
			OwnerID: "owner-1", Name: "New Name", RUC: "123456-1-2026", DV: "45",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "New Name" || got.LogoURL != "https://cdn.example/logo.png" {
			t.Fatalf("unexpected saved row: %+v", got)
		}
		if got.UpdatedAt.IsZero() {
			t.Fatal("expected UpdatedAt to be set")
		}
	})

	t.Run("save creates the row on first write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)

		repo.EXPECT().GetCompanyInfo(gomock.Any(), "owner-1").Return(entities.CompanyInfo{}, nil)
		repo.EXPECT().PutCompanyInfo(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, info entities.CompanyInfo) (entities.CompanyInfo, error) { return info, nil })

		got, err := uc.SaveCompanyInfo(context.Background(), entities.CompanyInfo{OwnerID: "owner-1", Name: "Fresh Co"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "Fresh Co" {
			t.Fatalf("unexpected saved row: %+v", got)
		}
	})
}

func TestSettingsUseCase_TemplatePreferences(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)

		repo.EXPECT().GetTemplatePreferences(gomock.Any(), "owner-1").Return(entities.TemplatePreferences{}, nil)

		if _, err := uc.GetTemplatePreferences(context.Background(), "owner-1"); !errors.Is(err, ErrPreferencesNotFound) {
			t.Fatalf("expected ErrPreferencesNotFound, got %v", err)
		}
	})

	t.Run("save upserts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)

		repo.EXPECT().PutTemplatePreferences(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, prefs entities.TemplatePreferences) (entities.TemplatePreferences, error) {
				return prefs, nil
			})

		got, err := uc.SaveTemplatePreferences(context.Background(), entities.TemplatePreferences{
			OwnerID: "owner-1", PrimaryColor: "#1a2b3c", ShowLogo: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PrimaryColor != "#1a2b3c" || !got.ShowLogo || got.UpdatedAt.IsZero() {
			t.Fatalf("unexpected saved row: %+v", got)
		}
	})
}
