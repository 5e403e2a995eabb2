package admin

import (
	"cmp"
	"fmt"
	"log/slog"
	"net/mail"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/daniilsolovey/blogcraft/internal/blog"
	"github.com/daniilsolovey/blogcraft/internal/listing"
)

var UserListing = listing.Spec[User]{
	Search: func(u User) []string { return []string{u.Name, u.Email} },
	Filters: map[string]func(User, string) bool{
		"role":   listing.Equal(func(u User) string { return string(u.Role) }),
		"status": listing.Equal(func(u User) string { return string(u.Status) }),
	},
	Sorts: map[string]func(a, b User) int{
		"newest": func(a, b User) int { return cmp.Compare(b.JoinDate, a.JoinDate) },
		"oldest": func(a, b User) int { return cmp.Compare(a.JoinDate, b.JoinDate) },
		"name":   func(a, b User) int { return listing.CompareText(a.Name, b.Name) },
		"posts":  func(a, b User) int { return cmp.Compare(b.PostsCount, a.PostsCount) },
	},
	DefaultSort: listing.SortNewest,
}

// Users is the user directory shown on the admin users page.
type Users struct {
	mu    sync.RWMutex
	users []User
	log   *slog.Logger
	now   func() time.Time
}

func NewUsers(seed []User, logger *slog.Logger, now func() time.Time) *Users {
	return &Users{users: slices.Clone(seed), log: logger, now: now}
}

func (u *Users) List(q listing.Query) []User {
	u.mu.RLock()
	defer u.mu.RUnlock()

	return listing.Apply(u.users, UserListing, q)
}

func (u *Users) ByID(id int) *User {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if i := u.index(id); i >= 0 {
		user := u.users[i]
		return &user
	}
	return nil
}

// Create adds an active user who joined today. The role defaults to reader.
func (u *Users) Create(in UserInput) (*User, error) {
	name := strings.TrimSpace(deref(in.Name))
	if name == "" {
		return nil, fmt.Errorf("%w: user name is required", blog.ErrValidation)
	}
	email, err := parseEmail(deref(in.Email))
	if err != nil {
		return nil, err
	}

	role := RoleReader
	if in.Role != nil {
		role = *in.Role
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", blog.ErrValidation, role)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.emailTaken(email, 0) {
		return nil, fmt.Errorf("%w: email %q is already registered", blog.ErrValidation, email)
	}

	maxID := 0
	for i := range u.users {
		maxID = max(maxID, u.users[i].ID)
	}

	user := User{
		ID:       maxID + 1,
		Name:     name,
		Email:    email,
		Role:     role,
		Status:   UserActive,
		JoinDate: u.now().Format(time.DateOnly),
	}
	u.users = append(u.users, user)

	u.log.Info("user created", "id", user.ID, "role", user.Role)
	return &user, nil
}

// Update changes name, email, role or status. It returns nil for an unknown
// id.
func (u *Users) Update(id int, in UserInput) (*User, error) {
	if in.Role != nil && !in.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", blog.ErrValidation, *in.Role)
	}
	if in.Status != nil && !in.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown user status %q", blog.ErrValidation, *in.Status)
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, fmt.Errorf("%w: user name cannot be empty", blog.ErrValidation)
	}

	var email string
	if in.Email != nil {
		var err error
		if email, err = parseEmail(*in.Email); err != nil {
			return nil, err
		}
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	i := u.index(id)
	if i < 0 {
		return nil, nil
	}
	if email != "" && u.emailTaken(email, id) {
		return nil, fmt.Errorf("%w: email %q is already registered", blog.ErrValidation, email)
	}

	user := &u.users[i]
	if in.Name != nil {
		user.Name = strings.TrimSpace(*in.Name)
	}
	if email != "" {
		user.Email = email
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.Status != nil {
		user.Status = *in.Status
	}

	u.log.Info("user updated", "id", id, "role", user.Role, "status", user.Status)
	out := *user
	return &out, nil
}

func (u *Users) Delete(id int) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	i := u.index(id)
	if i < 0 {
		return false
	}
	u.users = slices.Delete(u.users, i, i+1)
	u.log.Info("user deleted", "id", id)
	return true
}

func (u *Users) Stats() UserStats {
	u.mu.RLock()
	defer u.mu.RUnlock()

	stats := UserStats{Total: len(u.users)}
	for _, user := range u.users {
		if user.Status == UserActive {
			stats.Active++
		}
		if user.Role.Contributor() {
			stats.Contributors++
		}
	}
	return stats
}

func (u *Users) index(id int) int {
	return slices.IndexFunc(u.users, func(user User) bool { return user.ID == id })
}

func (u *Users) emailTaken(email string, exceptID int) bool {
	return slices.ContainsFunc(u.users, func(user User) bool {
		return user.ID != exceptID && strings.EqualFold(user.Email, email)
	})
}

func parseEmail(s string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: invalid email %q", blog.ErrValidation, s)
	}
	return addr.Address, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
