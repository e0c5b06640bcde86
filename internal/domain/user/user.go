package user

import (
	"fmt"
	"time"

	vo "issuetracker/internal/domain/user/valueobjects"
	"issuetracker/internal/shared/biztime"
)

// User is the identity aggregate. Its capability set and active flag are
// the only inputs authorization decisions read.
type User struct {
	id           uint
	email        *vo.Email
	name         *vo.Name
	lastName     *vo.Name
	capabilities vo.CapabilitySet
	isActive     bool
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates an active user holding caps.
func NewUser(email *vo.Email, name, lastName *vo.Name, caps vo.CapabilitySet) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if name.IsEmpty() {
		return nil, fmt.Errorf("name is required")
	}
	if lastName == nil {
		lastName, _ = vo.NewOptionalName("")
	}

	now := biztime.NowUTC()
	return &User{
		email:        email,
		name:         name,
		lastName:     lastName,
		capabilities: caps,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence
func ReconstructUser(
	id uint,
	email *vo.Email,
	name, lastName *vo.Name,
	caps vo.CapabilitySet,
	isActive bool,
	passwordHash string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if lastName == nil {
		lastName, _ = vo.NewOptionalName("")
	}

	return &User{
		id:           id,
		email:        email,
		name:         name,
		lastName:     lastName,
		capabilities: caps,
		isActive:     isActive,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Email() *vo.Email {
	return u.email
}

func (u *User) Name() *vo.Name {
	return u.name
}

func (u *User) LastName() *vo.Name {
	return u.lastName
}

// FullName joins first and last name in display case.
func (u *User) FullName() string {
	if u.lastName.IsEmpty() {
		return u.name.Display()
	}
	return u.name.Display() + " " + u.lastName.Display()
}

func (u *User) Capabilities() vo.CapabilitySet {
	return u.capabilities
}

func (u *User) HasCapability(c vo.Capability) bool {
	return u.capabilities.Has(c)
}

func (u *User) IsSuperuser() bool {
	return u.capabilities.Has(vo.CapabilitySuperuser)
}

func (u *User) IsActive() bool {
	return u.isActive
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// SetPasswordHash stores an already hashed password.
func (u *User) SetPasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = hash
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) Grant(c vo.Capability) error {
	if !c.IsValid() {
		return fmt.Errorf("invalid capability: %s", c)
	}
	u.capabilities = u.capabilities.With(c)
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) Revoke(c vo.Capability) {
	u.capabilities = u.capabilities.Without(c)
	u.updatedAt = biztime.NowUTC()
}

func (u *User) Activate() {
	u.isActive = true
	u.updatedAt = biztime.NowUTC()
}

func (u *User) Deactivate() {
	u.isActive = false
	u.updatedAt = biztime.NowUTC()
}
