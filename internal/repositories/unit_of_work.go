package repositories

import (
	"gorm.io/gorm"
)

// UnitOfWork runs a function against order and product repositories in a
// single atomic scope. The create-order path uses it so the order insert and
// its per-item stock decrements commit or roll back together.
type UnitOfWork interface {
	Do(fn func(orders OrderRepository, products ProductRepository) error) error
}

// GORMUnitOfWork implements UnitOfWork on top of a GORM transaction.
type GORMUnitOfWork struct {
	db *gorm.DB
}

// NewGORMUnitOfWork creates a new instance of GORMUnitOfWork.
func NewGORMUnitOfWork(db *gorm.DB) *GORMUnitOfWork {
	return &GORMUnitOfWork{
		db: db,
	}
}

// Do runs fn inside a database transaction, handing it repositories bound to
// the transaction. Any error from fn rolls the whole unit back.
func (u *GORMUnitOfWork) Do(fn func(orders OrderRepository, products ProductRepository) error) error {
	return u.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMOrderRepository(tx), NewGORMProductRepository(tx))
	})
}

// MockUnitOfWork implements UnitOfWork over fixed repositories with no
// transactional scope. Used with the in-memory repositories.
type MockUnitOfWork struct {
	orders   OrderRepository
	products ProductRepository
}

// NewMockUnitOfWork creates a new instance of MockUnitOfWork.
func NewMockUnitOfWork(orders OrderRepository, products ProductRepository) *MockUnitOfWork {
	return &MockUnitOfWork{
		orders:   orders,
		products: products,
	}
}

// Do invokes fn directly with the configured repositories.
func (u *MockUnitOfWork) Do(fn func(orders OrderRepository, products ProductRepository) error) error {
	return fn(u.orders, u.products)
}
