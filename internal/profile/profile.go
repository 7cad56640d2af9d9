// Package profile holds the user shown on the profile screen.
package profile

import (
	"strings"

	"github.com/llehouerou/islandprofile/internal/ui/render"
)

// bullet separates the phone number from the nickname.
const bullet = "•"

// User is the displayed account.
type User struct {
	Name       string
	AvatarPath string // empty selects the generated placeholder
	Phone      string
	Nickname   string
}

// Mock returns the demo account.
func Mock() User {
	return User{
		Name:     "Puslan",
		Phone:    "+99999999",
		Nickname: "@puslanus",
	}
}

// WithAvatar returns a copy of u using the image at path.
func (u User) WithAvatar(path string) User {
	if path != "" {
		u.AvatarPath = path
	}
	return u
}

// Title is the sanitized display name.
func (u User) Title() string {
	return render.Sanitize(strings.TrimSpace(u.Name))
}

// Description is the second header line: phone and nickname separated by a
// bullet. Missing parts are left out.
func (u User) Description() string {
	var parts []string
	if p := strings.TrimSpace(u.Phone); p != "" {
		parts = append(parts, p)
	}
	if n := strings.TrimSpace(u.Nickname); n != "" {
		parts = append(parts, n)
	}
	return render.Sanitize(strings.Join(parts, " "+bullet+" "))
}
