package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"salon-agenda/internal/dto"
	"salon-agenda/internal/model"
	"salon-agenda/internal/repository"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionService covers the financial records surface.
type TransactionService interface {
	Create(ctx context.Context, req *dto.CreateTransactionRequest, callerID string) (*dto.TransactionResponse, error)
	GetByID(ctx context.Context, id string) (*dto.TransactionResponse, error)
	List(ctx context.Context, req *dto.TransactionListRequest) ([]dto.TransactionResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateTransactionRequest, callerID string) (*dto.TransactionResponse, error)
	Delete(ctx context.Context, id string) error
	Summarize(ctx context.Context, req *dto.TransactionSummaryRequest) (*dto.TransactionSummaryResponse, error)
}

type transactionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTransactionService creates a TransactionService instance.
func NewTransactionService(repo *repository.Repository, logger *zap.Logger) TransactionService {
	return &transactionService{repo: repo, logger: logger}
}

func (s *transactionService) Create(ctx context.Context, req *dto.CreateTransactionRequest, callerID string) (*dto.TransactionResponse, error) {
	if req.AppointmentID != nil {
		if _, err := s.repo.Appointment.GetByID(ctx, *req.AppointmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrAppointmentNotFound
			}
			return nil, err
		}
	}

	day, err := parseDay(req.Date)
	if err != nil {
		return nil, err
	}

	tr := &model.Transaction{
		AppointmentID: req.AppointmentID,
		Type:          req.Type,
		Amount:        req.Amount,
		Description:   req.Description,
		Date:          day,
	}
	tr.CreatedBy = &callerID
	tr.UpdatedBy = &callerID

	if err := s.repo.Transaction.Create(ctx, tr); err != nil {
		s.logger.Error("create transaction failed", zap.Error(err))
		return nil, err
	}
	return toTransactionResponse(tr), nil
}

func (s *transactionService) GetByID(ctx context.Context, id string) (*dto.TransactionResponse, error) {
	tr, err := s.repo.Transaction.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return toTransactionResponse(tr), nil
}

func (s *transactionService) List(ctx context.Context, req *dto.TransactionListRequest) ([]dto.TransactionResponse, int64, error) {
	from, to, err := parsePeriod(req.From, req.To)
	if err != nil {
		return nil, 0, err
	}

	trs, total, err := s.repo.Transaction.List(ctx, repository.TransactionFilter{
		From:   from,
		To:     to,
		Type:   req.Type,
		Offset: req.GetOffset(),
		Limit:  req.GetPageSize(),
	})
	if err != nil {
		s.logger.Error("list transactions failed", zap.Error(err))
		return nil, 0, err
	}

	out := make([]dto.TransactionResponse, 0, len(trs))
	for i := range trs {
		out = append(out, *toTransactionResponse(&trs[i]))
	}
	return out, total, nil
}

func (s *transactionService) Update(ctx context.Context, id string, req *dto.UpdateTransactionRequest, callerID string) (*dto.TransactionResponse, error) {
	tr, err := s.repo.Transaction.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}

	if req.Type != nil {
		tr.Type = *req.Type
	}
	if req.Amount != nil {
		tr.Amount = *req.Amount
	}
	if req.Description != nil {
		tr.Description = *req.Description
	}
	if req.Date != nil {
		day, err := parseDay(*req.Date)
		if err != nil {
			return nil, err
		}
		tr.Date = day
	}
	tr.UpdatedBy = &callerID

	if err := s.repo.Transaction.Update(ctx, tr); err != nil {
		s.logger.Error("update transaction failed", zap.Error(err))
		return nil, err
	}
	return toTransactionResponse(tr), nil
}

func (s *transactionService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Transaction.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTransactionNotFound
		}
		return err
	}
	return s.repo.Transaction.Delete(ctx, id)
}

func (s *transactionService) Summarize(ctx context.Context, req *dto.TransactionSummaryRequest) (*dto.TransactionSummaryResponse, error) {
	from, to, err := parsePeriod(req.From, req.To)
	if err != nil {
		return nil, err
	}

	summary, err := s.repo.Transaction.Summarize(ctx, from, to)
	if err != nil {
		s.logger.Error("summarize transactions failed", zap.Error(err))
		return nil, err
	}

	return &dto.TransactionSummaryResponse{
		From:    req.From,
		To:      req.To,
		Income:  summary.Income,
		Expense: summary.Expense,
		Balance: summary.Income - summary.Expense,
	}, nil
}

// parsePeriod parses optional "YYYY-MM-DD" bounds; empty strings stay open.
func parsePeriod(fromStr, toStr string) (from, to time.Time, err error) {
	if fromStr != "" {
		if from, err = parseDay(fromStr); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if toStr != "" {
		if to, err = parseDay(toStr); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return from, to, nil
}

func toTransactionResponse(tr *model.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:            tr.TransactionID,
		AppointmentID: tr.AppointmentID,
		Type:          tr.Type,
		Amount:        tr.Amount,
		Description:   tr.Description,
		Date:          tr.Date.Format("2006-01-02"),
		CreatedAt:     tr.CreatedAt.Format(time.RFC3339),
	}
}
