package timeline

// Event types and their icons.
const (
	TypeAppointment = "appointment"
	TypeHistory     = "history"
	TypeMedicine    = "medicine"
	TypeReport      = "report"

	IconCalendar = "calendar"
	IconHistory  = "history"
	IconPill     = "pill"
	IconFile     = "file"
)

// Event is one entry of the health timeline. Events are derived on every
// request and never stored.
type Event struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Icon        string `json:"icon"`
}
