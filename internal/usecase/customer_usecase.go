package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cotfact/internal/domain/entities"
	"cotfact/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrInvalidCustomerID = errors.New("invalid customer id")
	ErrEmptyCustomerName = errors.New("customer name cannot be empty")
)

// CustomerPatch is the merge-patch applied by Update.
type CustomerPatch struct {
	Name     *string
	Company  *string
	Location *string
	Phone    *string
	Email    *string
	Type     *entities.CustomerType
	Metadata map[string]string
}

func (p CustomerPatch) IsEmpty() bool {
	return p.Name == nil && p.Company == nil && p.Location == nil &&
		p.Phone == nil && p.Email == nil && p.Type == nil && p.Metadata == nil
}

// ICustomerUseCase exposes the customer directory operations.

type ICustomerUseCase interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	Filter(ctx context.Context, searchTerm string) ([]entities.Customer, error)
	Update(ctx context.Context, id string, patch CustomerPatch) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (u *CustomerUseCase) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	if strings.TrimSpace(c.Name) == "" {
		return entities.Customer{}, ErrEmptyCustomerName
	}
	if c.Type == "" {
		c.Type = entities.CustomerTypeBusiness
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	return u.repo.Create(ctx, c)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	return u.getByID(ctx, id)
}

// Filter returns the customers matching searchTerm with a case-insensitive
// substring match over name, company, location, email and phone. An empty
// term returns the full list in stored order.
func (u *CustomerUseCase) Filter(ctx context.Context, searchTerm string) ([]entities.Customer, error) {
	customers, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(searchTerm))
	if term == "" {
		return customers, nil
	}

	matched := make([]entities.Customer, 0, len(customers))
	for _, c := range customers {
		if customerMatches(c, term) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (u *CustomerUseCase) Update(ctx context.Context, id string, patch CustomerPatch) (entities.Customer, error) {
	if patch.IsEmpty() {
		return entities.Customer{}, ErrEmptyPatch
	}

	c, err := u.getByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return entities.Customer{}, ErrEmptyCustomerName
		}
		c.Name = *patch.Name
	}
	if patch.Company != nil {
		c.Company = *patch.Company
	}
	if patch.Location != nil {
		c.Location = *patch.Location
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Email != nil {
		// An empty string means "no email", same as the creation path.
		if *patch.Email == "" {
			c.Email = nil
		} else {
			c.Email = patch.Email
		}
	}
	if patch.Type != nil {
		c.Type = *patch.Type
	}
	if patch.Metadata != nil {
		c.Metadata = patch.Metadata
	}
	c.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}
	if updated.ID == "" {
		// Conditional-write miss: the row vanished between the read and the put.
		return entities.Customer{}, ErrCustomerNotFound
	}
	return updated, nil
}

func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.getByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func (u *CustomerUseCase) getByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func customerMatches(c entities.Customer, term string) bool {
	for _, field := range []string{c.Name, c.Company, c.Location, c.EmailValue(), c.Phone} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
