package models

// Status is the lifecycle phase of a screen.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusError   Status = "error"
)

// UIState holds exactly one active status; Message is set only for errors.
type UIState struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

func Idle() UIState { return UIState{Status: StatusIdle} }
func Loading() UIState { return UIState{Status: StatusLoading} }
func Loaded() UIState { return UIState{Status: StatusLoaded} }

func Failed(message string) UIState {
	return UIState{Status: StatusError, Message: message}
}

// Pagination describes the Prev/Next controls for the current page.
type Pagination struct {
	Visible      bool `json:"visible"`
	PrevDisabled bool `json:"prevDisabled"`
	NextDisabled bool `json:"nextDisabled"`
	PrevPage     int  `json:"prevPage"`
	NextPage     int  `json:"nextPage"`
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
}

// NewPagination derives the controls: hidden when there is at most one
// page, Prev disabled on the first page, Next disabled on the last.
func NewPagination(currentPage, totalPages int) Pagination {
	return Pagination{
		Visible:      totalPages > 1,
		PrevDisabled: currentPage <= 1,
		NextDisabled: currentPage >= totalPages,
		PrevPage:     currentPage - 1,
		NextPage:     currentPage + 1,
		CurrentPage:  currentPage,
		TotalPages:   totalPages,
	}
}
