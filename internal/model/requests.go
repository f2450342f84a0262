package model

// Request DTOs. Validation tags are enforced by the repositories before any
// network I/O (go-playground/validator).

// RegisterRequest is the body of POST auth/register.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=artist promoter"`
}

// LoginRequest is the body of POST auth/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateShowRequest is the body of POST shows.
type CreateShowRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location"    validate:"required"`
	Date        string `json:"date"        validate:"required"`
	Genre       string `json:"genre,omitempty"`
	ArtistID    *int   `json:"artistId,omitempty"`
	EventID     *int   `json:"eventId,omitempty"`
}

// UpdateShowRequest is the body of PUT shows/{id}. Nil fields are omitted so
// the server keeps their current values.
type UpdateShowRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	Date        *string `json:"date,omitempty"`
	Genre       *string `json:"genre,omitempty"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}

// CreateApplicationRequest is the body of POST applications.
type CreateApplicationRequest struct {
	EventID int    `json:"eventId" validate:"required,gt=0"`
	Message string `json:"message" validate:"required"`
}

// ShowFilter collects the optional query parameters of GET shows. Filtering
// is server-side; the client never re-filters the returned list.
type ShowFilter struct {
	Genre    string
	Location string
	DateFrom string
	DateTo   string
	Page     int
	Limit    int
}
