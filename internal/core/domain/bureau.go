package domain

// BureauMember is a public directory entry for an elected bureau member.
// Distinct from User: the directory lists people, not accounts.
type BureauMember struct {
	MemberID     string `json:"memberID"` // Primary Key (UUID)
	Name         string `json:"name"`
	RoleTitle    string `json:"roleTitle"` // Displayed title, e.g. "Trésorière"
	PhotoURL     string `json:"photoURL,omitempty"`
	DisplayOrder int    `json:"displayOrder"`
	AuditFields
}
