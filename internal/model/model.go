// Package model defines the wire-level entities exchanged with the VibeStage API.
package model

// Role values transported in User.Role. The server sends them as plain
// strings; anything else is passed through untouched.
const (
	RoleArtist   = "artist"
	RolePromoter = "promoter"
)

// Application status values. Transitions are server-driven only (accept,
// reject, delete); the client never derives a status locally.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// User is an account as returned by the server.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Bio      string `json:"bio,omitempty"`
	Phone    string `json:"phone,omitempty"`
	IsActive *bool  `json:"isActive,omitempty"`
}

// AuthResponse is the login/register payload. Depending on the server
// version the bearer value arrives in access_token or the legacy token field.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	Token       string `json:"token"`
	User        User   `json:"user"`
}

// BearerToken returns the bearer value, preferring access_token over the
// legacy token field. Empty string when neither is present.
func (a AuthResponse) BearerToken() string {
	if a.AccessToken != "" {
		return a.AccessToken
	}
	return a.Token
}

// Show is a bookable event/opportunity published by a promoter.
type Show struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genre       string   `json:"genre,omitempty"`
	Location    string   `json:"location"`
	Date        string   `json:"date"`
	Budget      *float64 `json:"budget,omitempty"`
	PromoterID  int      `json:"promoterId,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Status      string   `json:"status,omitempty"`
	IsAvailable *bool    `json:"isAvailable,omitempty"`
	ArtistID    *int     `json:"artistId,omitempty"`
	EventID     *int     `json:"eventId,omitempty"`
	Promoter    *User    `json:"promoter,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
}

// Application is an artist's request to perform at a show.
type Application struct {
	ID        int    `json:"id"`
	ArtistID  int    `json:"artistId"`
	EventID   int    `json:"eventId"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// MessageResponse carries a bare server message (delete confirmations etc.).
type MessageResponse struct {
	Message string `json:"message"`
}
