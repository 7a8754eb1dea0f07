package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"cotfact/internal/adapter/http/handlers/mocks"
	"cotfact/internal/domain/entities"
	"cotfact/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func settingsRouter(h *SettingsHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/settings/company", h.GetCompanyInfo)
	r.PUT("/v1/settings/company", h.SaveCompanyInfo)
	r.GET("/v1/settings/template", h.GetTemplatePreferences)
	r.PUT("/v1/settings/template", h.SaveTemplatePreferences)
	return r
}

func TestSettingsHandler_CompanyInfo(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unauthenticated requests use the default owner row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		r := settingsRouter(NewSettingsHandler(uc))

		uc.EXPECT().GetCompanyInfo(gomock.Any(), "default").Return(entities.CompanyInfo{
			OwnerID: "default", Name: "Mi Empresa", RUC: "123456-1-2026", DV: "45",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/settings/company", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("Mi Empresa")) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing row maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		r := settingsRouter(NewSettingsHandler(uc))

		uc.EXPECT().GetCompanyInfo(gomock.Any(), "default").Return(entities.CompanyInfo{}, usecase.ErrCompanyInfoNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/settings/company", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("save rejects a nameless payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		r := settingsRouter(NewSettingsHandler(uc))

		req := httptest.NewRequest(http.MethodPut, "/v1/settings/company", bytes.NewBufferString(`{"ruc":"1-2-3"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("save upserts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		r := settingsRouter(NewSettingsHandler(uc))

		uc.EXPECT().SaveCompanyInfo(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, info entities.CompanyInfo) (entities.CompanyInfo, error) {
				if info.OwnerID != "default" || info.Name != "Mi Empresa" {
					t.Fatalf("unexpected payload: %+v", info)
				}
				return info, nil
			})

		req := httptest.NewRequest(http.MethodPut, "/v1/settings/company", bytes.NewBufferString(`{"name":"Mi Empresa","ruc":"123456-1-2026","dv":"45"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestSettingsHandler_TemplatePreferences(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("save upserts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		r := settingsRouter(NewSettingsHandler(uc))

		uc.EXPECT().SaveTemplatePreferences(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, prefs entities.TemplatePreferences) (entities.TemplatePreferences, error) {
				return prefs, nil
			})

		req := httptest.NewRequest(http.MethodPut, "/v1/settings/template", bytes.NewBufferString(`{"primaryColor":"#1a2b3c","showLogo":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
