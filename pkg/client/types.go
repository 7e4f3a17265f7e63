package client

import "time"

// Wire types for the API. These deliberately mirror the server's response
// DTOs without importing them, so the client stays usable without pulling in
// the server's internal packages.

type User struct {
	ID            uint64    `json:"id"`
	Username      string    `json:"username"`
	ContactNumber string    `json:"contactNumber,omitempty"`
	Role          string    `json:"role"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type AuthResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type HelpRequest struct {
	ID          uint64    `json:"id"`
	UserID      *uint64   `json:"userId,omitempty"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Urgency     string    `json:"urgency"`
	ShortNote   string    `json:"shortNote,omitempty"`
	ApproxArea  string    `json:"approxArea,omitempty"`
	ContactType string    `json:"contactType,omitempty"`
	Contact     string    `json:"contact,omitempty"`
	Name        string    `json:"name,omitempty"`
	TotalPeople int       `json:"totalPeople"`
	Elders      int       `json:"elders"`
	Children    int       `json:"children"`
	Pets        int       `json:"pets"`
	RationItems []string  `json:"rationItems"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateHelpRequest is the payload for posting a new help request.
type CreateHelpRequest struct {
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Urgency     string   `json:"urgency"`
	ShortNote   string   `json:"shortNote,omitempty"`
	ApproxArea  string   `json:"approxArea,omitempty"`
	ContactType string   `json:"contactType,omitempty"`
	Contact     string   `json:"contact,omitempty"`
	Name        string   `json:"name,omitempty"`
	TotalPeople int      `json:"totalPeople"`
	Elders      int      `json:"elders"`
	Children    int      `json:"children"`
	Pets        int      `json:"pets"`
	RationItems []string `json:"rationItems"`
}

// HelpRequestFilters narrows the open listing.
type HelpRequestFilters struct {
	Urgency  string
	District string
}

type Donation struct {
	ID                     uint64           `json:"id"`
	HelpRequestID          uint64           `json:"helpRequestId"`
	DonatorID              uint64           `json:"donatorId"`
	DonatorUsername        string           `json:"donatorUsername,omitempty"`
	DonatorContactNumber   string           `json:"donatorContactNumber,omitempty"`
	RationItems            map[string]int64 `json:"rationItems"`
	DonatorMarkedScheduled bool             `json:"donatorMarkedScheduled"`
	DonatorMarkedCompleted bool             `json:"donatorMarkedCompleted"`
	OwnerMarkedCompleted   bool             `json:"ownerMarkedCompleted"`
	CreatedAt              time.Time        `json:"createdAt"`
	UpdatedAt              time.Time        `json:"updatedAt"`
}

type PeopleSummary struct {
	TotalPeople int64 `json:"totalPeople"`
	Elders      int64 `json:"elders"`
	Children    int64 `json:"children"`
	Pets        int64 `json:"pets"`
}

type HelpRequestSummary struct {
	Total       int64            `json:"total"`
	ByUrgency   map[string]int64 `json:"byUrgency"`
	ByStatus    map[string]int64 `json:"byStatus"`
	ByDistrict  map[string]int64 `json:"byDistrict"`
	People      PeopleSummary    `json:"people"`
	RationItems map[string]int64 `json:"rationItems"`
}

type Item struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Unit        string    `json:"unit,omitempty"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateItem struct {
	Name        string `json:"name"`
	Unit        string `json:"unit,omitempty"`
	Description string `json:"description,omitempty"`
	Active      *bool  `json:"active,omitempty"`
}

type Camp struct {
	ID         uint64    `json:"id"`
	Name       string    `json:"name"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	ApproxArea string    `json:"approxArea,omitempty"`
	Capacity   int       `json:"capacity"`
	Contact    string    `json:"contact,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CreateCamp struct {
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	ApproxArea string  `json:"approxArea,omitempty"`
	Capacity   int     `json:"capacity,omitempty"`
	Contact    string  `json:"contact,omitempty"`
}
