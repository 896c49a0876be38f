package body

import "time"

type TeamMember struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	TeamRole     string     `json:"teamRole"`
	MemberStatus string     `json:"memberStatus"`
	JoinedAt     *time.Time `json:"joinedAt,omitempty"`
	AddedAt      *time.Time `json:"addedAt,omitempty"`
}

type TeamResource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type TeamMemberCreate struct {
	ID       string `json:"id"`
	TeamRole string `json:"teamRole"`
}

type TeamMemberUpdate struct {
	ID       string `json:"id"`
	TeamRole string `json:"teamRole"`
}

type TeamCreate struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Resources   []string           `json:"resources"`
	Members     []TeamMemberCreate `json:"members"`
}

type TeamJoin struct {
	InvitationCode string `json:"invitationCode"`
}

type TeamUpdate struct {
	Name        *string             `json:"name,omitempty"`
	Description *string             `json:"description,omitempty"`
	Resources   *[]string           `json:"resources,omitempty"`
	Members     *[]TeamMemberUpdate `json:"members,omitempty"`
}

type TeamRead struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	OwnerID     string         `json:"ownerId"`
	Description *string        `json:"description,omitempty"`
	Resources   []TeamResource `json:"resources"`
	Members     []TeamMember   `json:"members"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   *time.Time     `json:"updatedAt,omitempty"`
}
