package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Role is the job a pack member fills.
type Role string

const (
	RoleHunter Role = "hunter"
	RoleScout  Role = "scout"
	RoleGuard  Role = "guard"
	RoleNone   Role = "none"
)

func (r Role) Validate() error {
	switch r {
	case RoleHunter, RoleScout, RoleGuard, RoleNone:
		return nil
	default:
		return fmt.Errorf("unknown role: %s", r)
	}
}

// DefaultLoyalty is the loyalty a freshly recruited member starts with.
const DefaultLoyalty = 50

// PackMember is a wolf recruited into the player's pack.
type PackMember struct {
	Name    string `json:"name"`
	Role    Role   `json:"role"`
	Loyalty int    `json:"loyalty"`
}

func (m *PackMember) Validate() error {
	el := errors.NewErrorList()

	if m.Name == "" {
		el.Add(fmt.Errorf("name must be set"))
	}
	el.Add(m.Role.Validate())

	return el.Err()
}

// Pack holds recruited members in recruitment order. There is no
// capacity limit and no remove operation; members stay for the whole
// session.
type Pack struct {
	Members []PackMember `json:"members,omitempty"`
}

// NewPack creates an empty pack.
func NewPack() *Pack {
	return &Pack{}
}

// Recruit appends a new member with DefaultLoyalty.
func (p *Pack) Recruit(name string, role Role) {
	p.Members = append(p.Members, PackMember{
		Name:    name,
		Role:    role,
		Loyalty: DefaultLoyalty,
	})
}

// Len returns the number of pack members.
func (p *Pack) Len() int {
	return len(p.Members)
}

// Describe returns indented lines describing the pack.
// Returns ["  None"] if the pack is empty.
func (p *Pack) Describe() []string {
	if p == nil || len(p.Members) == 0 {
		return []string{"  None"}
	}
	lines := make([]string, 0, len(p.Members))
	for _, m := range p.Members {
		lines = append(lines, fmt.Sprintf("  %s the %s (loyalty %d)", m.Name, m.Role, m.Loyalty))
	}
	return lines
}

// Validate checks the pack invariants on load.
func (p *Pack) Validate() error {
	el := errors.NewErrorList()

	for i := range p.Members {
		el.Add(p.Members[i].Validate())
	}

	return el.Err()
}
