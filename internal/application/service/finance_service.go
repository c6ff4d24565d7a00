package service

import (
	"context"
	"sort"
	"time"

	"github.com/izaplantas/floricultura-api/internal/domain/entity"
	"github.com/izaplantas/floricultura-api/internal/domain/enum"
	"github.com/izaplantas/floricultura-api/internal/domain/repository"
	"github.com/izaplantas/floricultura-api/pkg/apperror"
	"github.com/izaplantas/floricultura-api/pkg/pagination"
	"github.com/izaplantas/floricultura-api/pkg/utils"
)

// FinanceService handles the finance ledger
type FinanceService struct {
	financeRepo repository.FinanceRepository
}

// NewFinanceService creates a new finance service
func NewFinanceService(financeRepo repository.FinanceRepository) *FinanceService {
	return &FinanceService{financeRepo: financeRepo}
}

// FinanceFilter contains filtering parameters for ledger listings
type FinanceFilter struct {
	Pagination *pagination.PaginationParams
	Type       string
}

// ListEntries lists ledger entries, most recent date first
func (s *FinanceService) ListEntries(ctx context.Context, filter *FinanceFilter) (*pagination.PaginatedResult[entity.FinanceEntry], error) {
	entries, err := s.financeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]entity.FinanceEntry, 0, len(entries))
	for i := range entries {
		if filter.Type != "" && string(entries[i].Type) != filter.Type {
			continue
		}
		matched = append(matched, entries[i])
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})

	params := filter.Pagination
	if params == nil {
		params = pagination.DefaultPagination()
	}
	return pagination.Paginate(matched, params), nil
}

// CreateEntryInput represents a manually recorded ledger entry
type CreateEntryInput struct {
	Type        string
	Description string
	Amount      float64
	Category    string
	Status      string
	Date        *time.Time
}

// CreateEntry records a manual income or expense entry
func (s *FinanceService) CreateEntry(ctx context.Context, input *CreateEntryInput) (*entity.FinanceEntry, error) {
	entryType := enum.EntryType(input.Type)
	if !entryType.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown entry type: " + input.Type)
	}

	status := enum.EntrySettlement(input.Status)
	if input.Status == "" {
		status = enum.EntrySettlementPaid
	} else if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown entry status: " + input.Status)
	}

	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Amount must be greater than zero")
	}

	category := input.Category
	if category == "" {
		category = "Geral"
	}

	date := time.Now().UTC()
	if input.Date != nil {
		date = *input.Date
	}

	entry := &entity.FinanceEntry{
		ID:          utils.NewID(),
		Type:        entryType,
		Description: input.Description,
		Amount:      entity.CentsFromDecimal(input.Amount),
		Category:    category,
		Date:        date,
		Status:      status,
	}

	if err := s.financeRepo.Append(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteEntry removes a ledger entry.
// Deleting an unknown ID succeeds quietly.
func (s *FinanceService) DeleteEntry(ctx context.Context, id string) error {
	return s.financeRepo.Delete(ctx, id)
}

// FinanceSummary aggregates the ledger
type FinanceSummary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// Summary totals income and expense across the whole ledger.
// Pending entries count the same as paid ones.
func (s *FinanceService) Summary(ctx context.Context) (*FinanceSummary, error) {
	entries, err := s.financeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return SummarizeEntries(entries), nil
}

// SummarizeEntries computes the income/expense/balance aggregate in cents
// before converting to decimals, keeping totals exact.
func SummarizeEntries(entries []entity.FinanceEntry) *FinanceSummary {
	var income, expense int64
	for i := range entries {
		switch entries[i].Type {
		case enum.EntryTypeIncome:
			income += entries[i].Amount
		case enum.EntryTypeExpense:
			expense += entries[i].Amount
		}
	}
	return &FinanceSummary{
		Income:  float64(income) / 100,
		Expense: float64(expense) / 100,
		Balance: float64(income-expense) / 100,
	}
}
