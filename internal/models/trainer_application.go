package models

import "time"

const (
	ApplicationPending  = "pending"
	ApplicationApproved = "approved"
	ApplicationRejected = "rejected"
)

type TrainerApplication struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	CredentialsDetails string    `json:"credentials_details"`
	Status             string    `json:"status"`
	SubmittedAt        time.Time `json:"submitted_at"`
}

// ApplicationWithApplicant is the admin review row: the application joined
// with enough of the users table to render who applied.
type ApplicationWithApplicant struct {
	TrainerApplication
	ApplicantEmail       string `json:"applicant_email"`
	ApplicantDisplayName string `json:"applicant_display_name"`
}
