package service

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/premiafi/finance-terms/internal/config"
	"github.com/premiafi/finance-terms/internal/domain"
	"github.com/premiafi/finance-terms/internal/repository"
	customError "github.com/premiafi/finance-terms/pkg/errors"
	"github.com/premiafi/finance-terms/pkg/utils"
)

type FinanceTermService struct {
	repo      repository.FinanceTermRepository
	validator *validator.Validate
	config    *config.Config
}

func NewFinanceTermService(repo repository.FinanceTermRepository, config *config.Config) *FinanceTermService {
	return &FinanceTermService{
		repo:      repo,
		validator: validator.New(),
		config:    config,
	}
}

// Create validates the request, computes the downpayment and financed
// amount, and inserts a pending finance term
func (s *FinanceTermService) Create(ctx context.Context, request *domain.CreateFinanceTermsRequest) (*domain.FinanceTerm, error) {
	if err := s.validator.Struct(request); err != nil {
		return nil, customError.WrapPoliciesRequired()
	}

	totalPremium, totalTaxFee := utils.SumPolicies(request.InsurancePolicies)
	downpayment := utils.CalculateDownpayment(totalPremium, totalTaxFee, s.config.GetDownpaymentRate())
	amountFinanced := utils.CalculateAmountFinanced(totalPremium, totalTaxFee, downpayment)

	term := &domain.FinanceTerm{
		InsurancePolicies: request.InsurancePolicies,
		Downpayment:       downpayment,
		DueDate:           request.DueDate,
		AmountFinanced:    amountFinanced,
		Status:            domain.StatusPending,
	}

	if err := s.repo.Create(ctx, term); err != nil {
		return nil, customError.WrapStorageError(err)
	}

	return term, nil
}

// Agree sets the status to agreed and returns the refetched record.
// The update carries no status guard: re-agreeing is an idempotent no-op.
// A missing id affects zero rows and yields (nil, nil); the caller decides
// how to encode that.
func (s *FinanceTermService) Agree(ctx context.Context, id int64) (*domain.FinanceTerm, error) {
	if _, err := s.repo.UpdateStatus(ctx, id, domain.StatusAgreed); err != nil {
		return nil, customError.WrapStorageError(err)
	}

	term, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, customError.WrapStorageError(err)
	}

	return term, nil
}

// List parses the raw query parameters into a storage filter and returns
// the matching records, empty slice when nothing matches
func (s *FinanceTermService) List(ctx context.Context, query domain.ListQuery) ([]*domain.FinanceTerm, error) {
	filter, err := parseListQuery(query)
	if err != nil {
		return nil, err
	}

	terms, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, customError.WrapStorageError(err)
	}

	return terms, nil
}

func parseListQuery(query domain.ListQuery) (domain.ListFilter, error) {
	var filter domain.ListFilter

	if query.Downpayment != "" {
		op := query.Downpayment[:1]
		switch op {
		case ">", "<", "=":
		default:
			return filter, customError.WrapInvalidDownpaymentOperator()
		}

		raw := query.Downpayment[1:]
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, customError.WrapInvalidDownpaymentValue(raw)
		}

		filter.Downpayment = &domain.DownpaymentFilter{Op: op, Value: value}
	}

	if query.Status != "" {
		status := query.Status
		filter.Status = &status
	}

	if query.Sort != "" {
		field, order, _ := strings.Cut(query.Sort, ":")
		if _, ok := repository.SortColumns[field]; !ok {
			return filter, customError.WrapInvalidSortField(field)
		}

		filter.Sort = &domain.SortSpec{
			Field: field,
			Desc:  order == "desc",
		}
	}

	return filter, nil
}
