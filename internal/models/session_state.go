package models

// Screen classifications the session resolver can land on. Each one maps to
// exactly one view in the client; the resolver re-derives them from persisted
// rows on every request so nothing depends on client-held state.
const (
	ScreenRoleSelection       = "role_selection"
	ScreenProfileSetup        = "profile_setup"
	ScreenCustomerDashboard   = "customer_dashboard"
	ScreenTrainerVerification = "trainer_verification"
	ScreenTrainerPending      = "trainer_pending"
	ScreenTrainerDashboard    = "trainer_dashboard"
	ScreenTrainerRejected     = "trainer_rejected"
	ScreenAdminDashboard      = "admin_dashboard"
)

type SessionState struct {
	User        User                `json:"user"`
	Screen      string              `json:"screen"`
	Profile     *UserProfile        `json:"profile,omitempty"`
	Application *TrainerApplication `json:"application,omitempty"`
}
