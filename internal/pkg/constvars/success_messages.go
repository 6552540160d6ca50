package constvars

const (
	CreateEventSuccessMessage  = "Successfully scheduled event"
	CancelEventSuccessMessage  = "Successfully cancelled event"
	GetEventsSuccessMessage    = "Successfully retrieved events"
	RegisterSuccessMessage     = "Successfully registered staff member"
	LoginSuccessMessage        = "Successfully logged in"
	GetOnCallSuccessMessage    = "Successfully retrieved on-call staff"
	AddOnCallSuccessMessage    = "Successfully added staff member to on-call roster"
	RemoveOnCallSuccessMessage = "Successfully removed staff member from on-call roster"
	UpdateStaffSuccessMessage  = "Successfully updated staff member"
)
