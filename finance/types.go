package finance

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value that travels as a plain JSON number, the
// encoding the backend uses for every amount field.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// Expense is one expense record as the backend returns it.
type Expense struct {
	ID            string  `json:"id"`
	Description   *string `json:"description"`
	Amount        Amount  `json:"amount"`
	DatePaid      string  `json:"datePaid"` // yyyy-MM-dd
	Category      *string `json:"category,omitempty"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`
	Payer         *string `json:"payer,omitempty"`
}

// ExpenseInput is the creation payload. Absent optional fields are sent
// as explicit nulls, matching what the backend accepts.
type ExpenseInput struct {
	Description   *string `json:"description"`
	Amount        Amount  `json:"amount"`
	DatePaid      string  `json:"datePaid"`
	Category      *string `json:"category"`
	PaymentMethod *string `json:"paymentMethod"`
	Payer         *string `json:"payer"`
}

// ExpensePatch carries only the fields an edit changed.
type ExpensePatch struct {
	Description *string `json:"description,omitempty"`
	Amount      *Amount `json:"amount,omitempty"`
	DatePaid    *string `json:"datePaid,omitempty"`
}

// Revenue is one revenue record.
type Revenue struct {
	ID          string  `json:"id"`
	Description *string `json:"description"`
	Amount      Amount  `json:"amount"`
	DatePaid    string  `json:"datePaid"`
	Category    *string `json:"category,omitempty"`
}

type RevenueInput struct {
	Description *string `json:"description"`
	Amount      Amount  `json:"amount"`
	DatePaid    string  `json:"datePaid"`
	Category    string  `json:"category"`
}

type RevenuePatch struct {
	Description *string `json:"description,omitempty"`
	Amount      *Amount `json:"amount,omitempty"`
	DatePaid    *string `json:"datePaid,omitempty"`
}

// Goal is a savings goal. Target dates travel as dd/MM/yyyy, unlike the
// yyyy-MM-dd used by expense and revenue dates.
type Goal struct {
	ID           string  `json:"id"`
	Description  string  `json:"description"`
	TargetAmount Amount  `json:"targetAmount"`
	TargetDate   string  `json:"targetDate"`
	DateCreated  *string `json:"dateCreated,omitempty"`
	Accumulated  *Amount `json:"accumulated,omitempty"`
	Progress     *Amount `json:"progress,omitempty"`
}

type GoalInput struct {
	Description  string `json:"description"`
	TargetAmount Amount `json:"targetAmount"`
	TargetDate   string `json:"targetDate"` // dd/MM/yyyy
}

type GoalPatch struct {
	Description  *string `json:"description,omitempty"`
	TargetAmount *Amount `json:"targetAmount,omitempty"`
	TargetDate   *string `json:"targetDate,omitempty"`
}

// FinanceInfo is the client's standing financial profile.
type FinanceInfo struct {
	ID         string  `json:"id"`
	Income     Amount  `json:"income"`
	Profession *string `json:"profission,omitempty"` // field name as the backend spells it
	NetWorth   Amount  `json:"netWorth"`
}

// FinanceInfoInput is the create/update payload for a finance-info
// record.
type FinanceInfoInput struct {
	Income     Amount  `json:"income"`
	Profession *string `json:"profission"`
	NetWorth   Amount  `json:"netWorth"`
}

// Category is one entry of the expense category catalog. The backend has
// served both plain strings and objects; Label normalizes either.
type Category struct {
	ID    *string `json:"id,omitempty"`
	Name  *string `json:"name,omitempty"`
	Code  *string `json:"code,omitempty"`
	Value *string `json:"value,omitempty"`
	Text  *string `json:"label,omitempty"`
}

func (c *Category) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		c.Value = &s
		return nil
	}
	type alias Category
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = Category(a)
	return nil
}

// Label returns the display text for a category entry.
func (c Category) Label() string {
	for _, candidate := range []*string{c.Text, c.Name, c.Value, c.Code, c.ID} {
		if candidate != nil && *candidate != "" {
			return *candidate
		}
	}
	return ""
}

// CategoryTotal is one row of a by-category report: how much a single
// category accumulated over the requested period.
type CategoryTotal struct {
	Category string `json:"category"`
	Total    Amount `json:"total"`
}

// ReportTransaction is an expense line inside a financial report.
type ReportTransaction struct {
	ID          string `json:"id"`
	Date        string `json:"date"` // yyyy-MM-dd
	Amount      Amount `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Recurring   bool   `json:"recurring"`
}

// ReportRevenue is a revenue line inside a financial report.
type ReportRevenue struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Amount Amount `json:"amount"`
	Source string `json:"source"`
}

// ReportGoal is a goal's progress snapshot inside a financial report.
type ReportGoal struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Target             Amount `json:"target"`
	Accumulated        Amount `json:"accumulated"`
	ProgressPercentage Amount `json:"progressPercentage"`
	Deadline           string `json:"deadline"` // yyyy-MM-dd
}

// FinancialReport is the period report for one client.
type FinancialReport struct {
	Transactions []ReportTransaction `json:"transactions"`
	Revenues     []ReportRevenue     `json:"revenues"`
	Goals        []ReportGoal        `json:"metas"`
	ReportID     string              `json:"report_id"`
	UserID       int64               `json:"user_id"`
	PeriodStart  string              `json:"period_start"`
	PeriodEnd    string              `json:"period_end"`
}

// Recommendation is one AI-generated advice entry.
type Recommendation struct {
	Rank          int    `json:"rank"`
	MessageShort  string `json:"message_short"`
	MessageDetail string `json:"message_detail"`
}

// ReportWithRecommendations is the AI-enriched report response.
type ReportWithRecommendations struct {
	Report               *FinancialReport `json:"report"`
	Recommendations      []Recommendation `json:"recommendations"`
	HasRecommendations   bool             `json:"has_recommendations"`
	RecommendationsCount int              `json:"recommendations_count"`
}
