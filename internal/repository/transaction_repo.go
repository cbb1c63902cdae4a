package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"salon-agenda/internal/model"
)

// TransactionFilter narrows financial listings. Zero bounds are open.
type TransactionFilter struct {
	From   time.Time // inclusive date lower bound
	To     time.Time // inclusive date upper bound
	Type   string
	Offset int
	Limit  int
}

// TransactionSummary aggregates amounts over a period.
type TransactionSummary struct {
	Income  float64
	Expense float64
}

// TransactionRepository is the financial-record data-access interface.
type TransactionRepository interface {
	Create(ctx context.Context, tr *model.Transaction) error
	GetByID(ctx context.Context, id string) (*model.Transaction, error)
	List(ctx context.Context, filter TransactionFilter) ([]model.Transaction, int64, error)
	Update(ctx context.Context, tr *model.Transaction) error
	Delete(ctx context.Context, id string) error
	Summarize(ctx context.Context, from, to time.Time) (*TransactionSummary, error)
}

type transactionRepo struct {
	db *gorm.DB
}

// NewTransactionRepo creates a TransactionRepository instance.
func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) Create(ctx context.Context, tr *model.Transaction) error {
	return r.db.WithContext(ctx).Create(tr).Error
}

func (r *transactionRepo) GetByID(ctx context.Context, id string) (*model.Transaction, error) {
	var tr model.Transaction
	err := r.db.WithContext(ctx).
		Preload("Appointment").
		Where("transaction_id = ?", id).
		First(&tr).Error
	if err != nil {
		return nil, err
	}
	return &tr, nil
}

func (r *transactionRepo) List(ctx context.Context, filter TransactionFilter) ([]model.Transaction, int64, error) {
	var trs []model.Transaction
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Transaction{})
	if !filter.From.IsZero() {
		db = db.Where("date >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		db = db.Where("date <= ?", filter.To)
	}
	if filter.Type != "" {
		db = db.Where("type = ?", filter.Type)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Offset(filter.Offset).Limit(filter.Limit).
		Order("date DESC, created_at DESC").
		Find(&trs).Error
	return trs, total, err
}

func (r *transactionRepo) Update(ctx context.Context, tr *model.Transaction) error {
	return r.db.WithContext(ctx).Save(tr).Error
}

func (r *transactionRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("transaction_id = ?", id).
		Delete(&model.Transaction{}).Error
}

func (r *transactionRepo) Summarize(ctx context.Context, from, to time.Time) (*TransactionSummary, error) {
	type row struct {
		Type  string
		Total float64
	}

	db := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("type, COALESCE(SUM(amount), 0) AS total")
	if !from.IsZero() {
		db = db.Where("date >= ?", from)
	}
	if !to.IsZero() {
		db = db.Where("date <= ?", to)
	}

	var rows []row
	if err := db.Group("type").Find(&rows).Error; err != nil {
		return nil, err
	}

	summary := &TransactionSummary{}
	for _, r := range rows {
		switch r.Type {
		case model.TransactionIncome:
			summary.Income = r.Total
		case model.TransactionExpense:
			summary.Expense = r.Total
		}
	}
	return summary, nil
}
