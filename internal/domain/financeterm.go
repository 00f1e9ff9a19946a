package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

const (
	StatusPending = "pending"
	StatusAgreed  = "agreed"
)

// InsurancePolicy is a single financed policy line.
type InsurancePolicy struct {
	Premium float64 `json:"premium"`
	TaxFee  float64 `json:"taxFee"`
}

// PolicyList is stored as a JSON text blob in a single column.
// Order of entries is preserved through the round trip.
type PolicyList []InsurancePolicy

func (p PolicyList) Value() (driver.Value, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (p *PolicyList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*p = nil
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("cannot scan %T into PolicyList", src)
	}
}

// FinanceTerm represents a premium-finance quote record
type FinanceTerm struct {
	ID                int64      `json:"id" db:"id"`
	InsurancePolicies PolicyList `json:"insurancePolicies" db:"insurancePolicies"`
	Downpayment       float64    `json:"downpayment" db:"downpayment"`
	DueDate           string     `json:"dueDate" db:"dueDate"`
	AmountFinanced    float64    `json:"amountFinanced" db:"amountFinanced"`
	Status            string     `json:"status" db:"status"`
}

// DTOs for requests

type CreateFinanceTermsRequest struct {
	InsurancePolicies PolicyList `json:"insurancePolicies" validate:"required,min=1"`
	DueDate           string     `json:"dueDate"`
}

// ListQuery carries the raw query parameters of the list endpoint.
// Empty string means the parameter was absent.
type ListQuery struct {
	Downpayment string
	Status      string
	Sort        string
}

// ListFilter is the parsed, validated form handed to the repository.
type ListFilter struct {
	Downpayment *DownpaymentFilter
	Status      *string
	Sort        *SortSpec
}

// DownpaymentFilter compares the stored downpayment against a value.
// Op is one of ">", "<", "=".
type DownpaymentFilter struct {
	Op    string
	Value float64
}

type SortSpec struct {
	Field string
	Desc  bool
}
