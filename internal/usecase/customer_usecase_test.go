package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"cotfact/internal/domain/entities"
	mock_interfaces "cotfact/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const customerID = "c5f4f9a0-6d2b-4a3e-9f1c-8e7d6b5a4c3d"

func directory() []entities.Customer {
	email := "sales@acme.example"
	return []entities.Customer{
		{ID: "1", Name: "Juan Pérez", Company: "Acme Corp", Location: "Panamá", Phone: "6000-0001", Email: &email, Type: entities.CustomerTypeBusiness},
		{ID: "2", Name: "María González", Company: "Globex", Location: "David", Phone: "6000-0002", Type: entities.CustomerTypePerson},
		{ID: "3", Name: "Carlos Ruiz", Company: "Initech", Location: "Colón", Phone: "6000-0003", Type: entities.CustomerTypeBusiness},
	}
}

func TestCustomerUseCase_Filter(t *testing.T) {
	t.Run("empty term returns the full list in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		all := directory()
		repo.EXPECT().List(gomock.Any()).Return(all, nil)

		got, err := uc.Filter(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got, all) {
			t.Fatalf("expected unmodified list, got %+v", got)
		}
	})

	t.Run("matches company case-insensitively", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(directory(), nil)

		got, err := uc.Filter(context.Background(), "ACME")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Company != "Acme Corp" {
			t.Fatalf("expected the Acme customer, got %+v", got)
		}
	})

	t.Run("matches across email and phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(directory(), nil).Times(2)

		byEmail, err := uc.Filter(context.Background(), "sales@")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(byEmail) != 1 || byEmail[0].ID != "1" {
			t.Fatalf("expected match by email, got %+v", byEmail)
		}

		byPhone, err := uc.Filter(context.Background(), "6000-0002")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(byPhone) != 1 || byPhone[0].ID != "2" {
			t.Fatalf("expected match by phone, got %+v", byPhone)
		}
	})

	t.Run("no match yields an empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(directory(), nil)

		got, err := uc.Filter(context.Background(), "umbrella")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected no matches, got %+v", got)
		}
	})
}

func TestCustomerUseCase_Create(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Customer{Name: "   "})
		if !errors.Is(err, ErrEmptyCustomerName) {
			t.Fatalf("expected ErrEmptyCustomerName, got %v", err)
		}
	})

	t.Run("defaults type to business and assigns an id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) { return c, nil })

		got, err := uc.Create(context.Background(), entities.Customer{Name: "Acme Corp"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" {
			t.Fatal("expected a generated id")
		}
		if got.Type != entities.CustomerTypeBusiness {
			t.Fatalf("expected business default, got %s", got.Type)
		}
		if got.Email != nil {
			t.Fatalf("expected no email, got %v", *got.Email)
		}
	})
}

func TestCustomerUseCase_Update(t *testing.T) {
	t.Run("empty patch", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		_, err := uc.Update(context.Background(), customerID, CustomerPatch{})
		if !errors.Is(err, ErrEmptyPatch) {
			t.Fatalf("expected ErrEmptyPatch, got %v", err)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		name := "Acme"
		_, err := uc.Update(context.Background(), "42", CustomerPatch{Name: &name})
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("blanking the name is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), customerID).Return(entities.Customer{ID: customerID, Name: "Acme"}, nil)

		blank := ""
		_, err := uc.Update(context.Background(), customerID, CustomerPatch{Name: &blank})
		if !errors.Is(err, ErrEmptyCustomerName) {
			t.Fatalf("expected ErrEmptyCustomerName, got %v", err)
		}
	})

	t.Run("merges only the provided fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), customerID).Return(entities.Customer{
			ID: customerID, Name: "Acme", Location: "Panamá", Type: entities.CustomerTypeBusiness,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) { return c, nil })

		phone := "6000-9999"
		got, err := uc.Update(context.Background(), customerID, CustomerPatch{Phone: &phone})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Phone != phone || got.Name != "Acme" || got.Location != "Panamá" {
			t.Fatalf("merge went wrong: %+v", got)
		}
	})

	t.Run("empty email patch clears the stored email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		email := "old@acme.example"
		repo.EXPECT().GetByID(gomock.Any(), customerID).Return(entities.Customer{
			ID: customerID, Name: "Acme", Email: &email, Type: entities.CustomerTypeBusiness,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) { return c, nil })

		blank := ""
		got, err := uc.Update(context.Background(), customerID, CustomerPatch{Email: &blank})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Email != nil {
			t.Fatalf("expected nil email, got %q", *got.Email)
		}
	})

	t.Run("customer deleted between read and write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), customerID).Return(entities.Customer{
			ID: customerID, Name: "Acme", Type: entities.CustomerTypeBusiness,
		}, nil)
		// Conditional-write miss surfaces as a zero value from the repository.
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Customer{}, nil)

		phone := "6000-9999"
		_, err := uc.Update(context.Background(), customerID, CustomerPatch{Phone: &phone})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})
}

func TestCustomerUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), customerID).Return(entities.Customer{}, nil)

		if err := uc.Delete(context.Background(), customerID); !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("deletes an existing customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), customerID).Return(entities.Customer{ID: customerID, Name: "Acme"}, nil)
		repo.EXPECT().Delete(gomock.Any(), customerID).Return(nil)

		if err := uc.Delete(context.Background(), customerID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
