package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"tidyjacks/internal/domain"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

type customerModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email;uniqueIndex"`
	Phone     *string   `gorm:"column:phone"`
	Address   *string   `gorm:"column:address"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (customerModel) TableName() string { return "customers" }

func toDomainCustomer(m customerModel) *domain.Customer {
	c := &domain.Customer{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
	}
	if m.Phone != nil {
		c.Phone = *m.Phone
	}
	if m.Address != nil {
		c.Address = *m.Address
	}
	return c
}

func toCustomerModel(c *domain.Customer) customerModel {
	m := customerModel{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
	if c.Phone != "" {
		m.Phone = &c.Phone
	}
	if c.Address != "" {
		m.Address = &c.Address
	}
	return m
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	m := toCustomerModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCustomer(m)
	return nil
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	var m customerModel
	tx := r.db.WithContext(ctx).Where("email = ?", email).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainCustomer(m), nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var m customerModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCustomer(m), nil
}

// FindOrCreateByEmail returns the existing customer with that email, or
// inserts one. Two concurrent bookings for a brand-new email can race on
// the unique index; the loser retries the lookup.
func (r *CustomerRepository) FindOrCreateByEmail(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	existing, err := r.FindByEmail(ctx, c.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	if err := r.Create(ctx, c); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return r.FindByEmail(ctx, c.Email)
		}
		return nil, err
	}
	return c, nil
}

func (r *CustomerRepository) GetAll(ctx context.Context) ([]domain.Customer, error) {
	var ms []customerModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Customer, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainCustomer(m))
	}
	return out, nil
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&customerModel{}).Count(&n)
	return n, tx.Error
}
