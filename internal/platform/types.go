package platform

import "time"

// Case is a delinquent loan assigned for collection
type Case struct {
	ID                     string    `json:"id"`
	LoanID                 string    `json:"loan_id"`
	ExternalCustomerID     string    `json:"external_customer_id"`
	EMIAmount              float64   `json:"emi_amount"`
	PrincipalOutstanding   float64   `json:"principal_outstanding"`
	InterestOutstanding    float64   `json:"interest_outstanding"`
	CaseStatus             string    `json:"case_status"`
	EMIDate                time.Time `json:"emi_date"`
	DPDBucket              string    `json:"dpd_bucket"`
	DPD                    int       `json:"dpd"`
	DisbursalDate          time.Time `json:"disbursal_date"`
	InsuranceActive        bool      `json:"insurance_active"`
	LoanDescription        string    `json:"loan_description"`
	EMIsPaidTillDate       int       `json:"emis_paid_till_date"`
	EMIsPending            int       `json:"emis_pending"`
	BounceCharges          float64   `json:"bounce_charges"`
	NachPresentationStatus string    `json:"nach_presentation_status"`
}

// CasesResult is the case list plus the extra fields the cases endpoint
// reports alongside the envelope
type CasesResult struct {
	Cases         []Case
	TotalEarnings float64
}

// CaseDetail is the expanded single-case view, including the assigned agent
type CaseDetail struct {
	CaseID                 string    `json:"case_id"`
	AgentName              string    `json:"agent_name"`
	LoanID                 string    `json:"loan_id"`
	LoanAmount             float64   `json:"loan_amount"`
	EMIMonthly             float64   `json:"emi_monthly"`
	DaysPastDue            int       `json:"days_past_due"`
	CustomerAddr           string    `json:"customer_addr"`
	CustomerPhone          string    `json:"customer_phone"`
	CaseStatus             string    `json:"case_status"`
	EMIDate                time.Time `json:"emi_date"`
	DPDBucket              string    `json:"dpd_bucket"`
	DPD                    int       `json:"dpd"`
	DisbursalDate          time.Time `json:"disbursal_date"`
	InsuranceActive        bool      `json:"insurance_active"`
	LoanDescription        string    `json:"loan_description"`
	EMIsPaidTillDate       int       `json:"emis_paid_till_date"`
	EMIsPending            int       `json:"emis_pending"`
	BounceCharges          float64   `json:"bounce_charges"`
	NachPresentationStatus string    `json:"nach_presentation_status"`
}

// Trail is one contact/payment-promise record attached to a case
type Trail struct {
	TrailID     int    `json:"trail_id"`
	CaseID      int    `json:"case_id"`
	Contacted   bool   `json:"contacted"`
	PaymentDate string `json:"payment_date"`
	Remarks     string `json:"remarks"`
}

// TrailInput is the client-supplied part of a new trail entry
type TrailInput struct {
	Contacted   bool   `json:"contacted"`
	PaymentDate string `json:"payment_date"`
	Remarks     string `json:"remarks"`
}

// Agency is a third-party collection organization
type Agency struct {
	ID         string `json:"id"`
	AgencyName string `json:"agency_name"`
	Status     string `json:"status"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

// CreateAgencyRequest carries the fields required to create an agency
type CreateAgencyRequest struct {
	AgencyName string `json:"agency_name"`
	Status     string `json:"status"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

// AgencyUser is a user as seen through an agency mapping
type AgencyUser struct {
	UserID     string  `json:"user_id"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	AgencyRole string  `json:"agency_role"`
	ManagerID  *string `json:"manager_id"`
}

// AssignUserToAgencyRequest maps a user into an agency with a role
type AssignUserToAgencyRequest struct {
	UserID     string  `json:"user_id"`
	AgencyID   string  `json:"agency_id"`
	AgencyRole string  `json:"agency_role"`
	ManagerID  *string `json:"manager_id,omitempty"`
}

// Agency roles a user can hold inside an agency
const (
	AgencyRoleAdmin   = "admin"
	AgencyRoleManager = "manager"
	AgencyRoleAgent   = "agent"
)

// AgencyRoles is the fixed set offered when mapping users to agencies
var AgencyRoles = []string{AgencyRoleAdmin, AgencyRoleManager, AgencyRoleAgent}

// User is a dashboard user account
type User struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    *string  `json:"email"`
	IsActive bool     `json:"is_active"`
	RoleList []string `json:"role_list"`
}

// Role is an entry of the role catalog. The backend serializes this record
// with Go-style field names, so the tags match that shape.
type Role struct {
	ID          string `json:"ID"`
	RoleName    string `json:"RoleName"`
	Description string `json:"Description"`
}

// UploadResult reports the outcome of a bulk case import
type UploadResult struct {
	Message       string `json:"message"`
	CasesImported int    `json:"cases_imported"`
}
