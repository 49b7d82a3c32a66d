// Package colors manages personal color roles. Each member gets a role named
// after their user id whose color they control.
package colors

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
)

var (
	// roles from the previous bot were named after the hex color itself
	legacyColorRoleRegex = regexp.MustCompile(`^#[a-fA-F0-9]{6}$`)
	hexRegex             = regexp.MustCompile(`^[a-fA-F0-9]{1,6}$`)

	ErrInvalidColor = errors.New("invalid color")
)

type RoleAPI interface {
	GetRoles(guildID snowflake.ID) ([]discord.Role, error)
	GetMember(guildID snowflake.ID, userID snowflake.ID) (*discord.Member, error)
	CreateRole(guildID snowflake.ID, name string, color int) (*discord.Role, error)
	UpdateRoleColor(guildID snowflake.ID, roleID snowflake.ID, color int) error
	DeleteRole(guildID snowflake.ID, roleID snowflake.ID) error
	AddMemberRole(guildID snowflake.ID, userID snowflake.ID, roleID snowflake.ID) error
}

// ParseColor accepts "#RRGGBB" or "RRGGBB".
func ParseColor(s string) (int, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if !hexRegex.MatchString(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	color, err := strconv.ParseInt(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidColor, err)
	}
	return int(color), nil
}

type Service struct {
	api RoleAPI
}

func New(api RoleAPI) *Service {
	return &Service{api: api}
}

func roleName(userID snowflake.ID) string {
	return userID.String()
}

// Set removes legacy color roles from the member and applies color to their personal role,
// creating and assigning it when missing.
func (s *Service) Set(guildID snowflake.ID, userID snowflake.ID, color int) error {
	member, err := s.api.GetMember(guildID, userID)
	if err != nil {
		return fmt.Errorf("fetching member: %w", err)
	}
	roles, err := s.api.GetRoles(guildID)
	if err != nil {
		return fmt.Errorf("fetching roles: %w", err)
	}
	var userRole *discord.Role
	for i, role := range roles {
		if role.Name == roleName(userID) {
			userRole = &roles[i]
			continue
		}
		if legacyColorRoleRegex.MatchString(role.Name) && hasRole(member, role.ID) {
			if err := s.api.DeleteRole(guildID, role.ID); err != nil {
				return fmt.Errorf("deleting legacy role %s: %w", role.Name, err)
			}
		}
	}
	if userRole == nil {
		created, err := s.api.CreateRole(guildID, roleName(userID), color)
		if err != nil {
			return fmt.Errorf("creating role: %w", err)
		}
		return s.api.AddMemberRole(guildID, userID, created.ID)
	}
	if !hasRole(member, userRole.ID) {
		if err := s.api.AddMemberRole(guildID, userID, userRole.ID); err != nil {
			return fmt.Errorf("assigning role: %w", err)
		}
	}
	return s.api.UpdateRoleColor(guildID, userRole.ID, color)
}

// Clear deletes the personal role and reports whether there was one.
func (s *Service) Clear(guildID snowflake.ID, userID snowflake.ID) (bool, error) {
	roles, err := s.api.GetRoles(guildID)
	if err != nil {
		return false, fmt.Errorf("fetching roles: %w", err)
	}
	for _, role := range roles {
		if role.Name == roleName(userID) {
			return true, s.api.DeleteRole(guildID, role.ID)
		}
	}
	return false, nil
}

func hasRole(member *discord.Member, roleID snowflake.ID) bool {
	for _, id := range member.RoleIDs {
		if id == roleID {
			return true
		}
	}
	return false
}
