package dto

import (
	"github.com/assogestion/assogestion/internal/core/domain"
)

// CreateBureauMemberRequest defines the input for a new directory entry.
type CreateBureauMemberRequest struct {
	Name         string `json:"name" binding:"required"`
	RoleTitle    string `json:"roleTitle" binding:"required"`
	PhotoURL     string `json:"photoURL" binding:"omitempty,url"`
	DisplayOrder int    `json:"displayOrder" binding:"gte=0"`
}

// UpdateBureauMemberRequest defines the fields that may be changed.
type UpdateBureauMemberRequest struct {
	Name         *string `json:"name"`
	RoleTitle    *string `json:"roleTitle"`
	PhotoURL     *string `json:"photoURL" binding:"omitempty,url"`
	DisplayOrder *int    `json:"displayOrder" binding:"omitempty,gte=0"`
}

// BureauMemberResponse is the API shape of a directory entry.
type BureauMemberResponse struct {
	MemberID     string `json:"memberID"`
	Name         string `json:"name"`
	RoleTitle    string `json:"roleTitle"`
	PhotoURL     string `json:"photoURL,omitempty"`
	DisplayOrder int    `json:"displayOrder"`
}

// ToBureauMemberResponse converts a domain.BureauMember.
func ToBureauMemberResponse(m *domain.BureauMember) BureauMemberResponse {
	return BureauMemberResponse{
		MemberID:     m.MemberID,
		Name:         m.Name,
		RoleTitle:    m.RoleTitle,
		PhotoURL:     m.PhotoURL,
		DisplayOrder: m.DisplayOrder,
	}
}

// ListBureauMembersResponse wraps the public directory.
type ListBureauMembersResponse struct {
	Members []BureauMemberResponse `json:"members"`
}

// ToListBureauMembersResponse converts a slice of domain.BureauMember.
func ToListBureauMembersResponse(members []domain.BureauMember) ListBureauMembersResponse {
	out := make([]BureauMemberResponse, len(members))
	for i := range members {
		out[i] = ToBureauMemberResponse(&members[i])
	}
	return ListBureauMembersResponse{Members: out}
}
