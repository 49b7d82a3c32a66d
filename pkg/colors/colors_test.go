package colors

import (
	"testing"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	guildID = snowflake.ID(1)
	userID  = snowflake.ID(555)
)

type fakeRoles struct {
	nextID  snowflake.ID
	roles   []discord.Role
	member  discord.Member
	deleted []snowflake.ID
}

func (f *fakeRoles) GetRoles(snowflake.ID) ([]discord.Role, error) {
	return append([]discord.Role(nil), f.roles...), nil
}

func (f *fakeRoles) GetMember(snowflake.ID, snowflake.ID) (*discord.Member, error) {
	m := f.member
	return &m, nil
}

func (f *fakeRoles) CreateRole(_ snowflake.ID, name string, color int) (*discord.Role, error) {
	f.nextID++
	role := discord.Role{ID: f.nextID, Name: name, Color: color}
	f.roles = append(f.roles, role)
	return &role, nil
}

func (f *fakeRoles) UpdateRoleColor(_ snowflake.ID, roleID snowflake.ID, color int) error {
	for i := range f.roles {
		if f.roles[i].ID == roleID {
			f.roles[i].Color = color
		}
	}
	return nil
}

func (f *fakeRoles) DeleteRole(_ snowflake.ID, roleID snowflake.ID) error {
	f.deleted = append(f.deleted, roleID)
	for i := range f.roles {
		if f.roles[i].ID == roleID {
			f.roles = append(f.roles[:i], f.roles[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeRoles) AddMemberRole(_ snowflake.ID, _ snowflake.ID, roleID snowflake.ID) error {
	f.member.RoleIDs = append(f.member.RoleIDs, roleID)
	return nil
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in    string
		color int
		err   bool
	}{
		{"#FF00AA", 0xFF00AA, false},
		{"ff00aa", 0xFF00AA, false},
		{" #0a0 ", 0x0A0, false},
		{"#GGGGGG", 0, true},
		{"#1234567", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		color, err := ParseColor(tt.in)
		if tt.err {
			assert.ErrorIs(t, err, ErrInvalidColor, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.color, color, tt.in)
	}
}

func TestSetCreatesRole(t *testing.T) {
	api := &fakeRoles{nextID: 100}
	s := New(api)

	require.NoError(t, s.Set(guildID, userID, 0x123456))
	require.Len(t, api.roles, 1)
	assert.Equal(t, "555", api.roles[0].Name)
	assert.Equal(t, 0x123456, api.roles[0].Color)
	assert.Equal(t, []snowflake.ID{101}, api.member.RoleIDs)
}

func TestSetUpdatesRoleAndDropsLegacy(t *testing.T) {
	api := &fakeRoles{
		roles: []discord.Role{
			{ID: 10, Name: "#abcdef"},
			{ID: 11, Name: "555", Color: 0x111111},
			{ID: 12, Name: "#000000"},
		},
		member: discord.Member{RoleIDs: []snowflake.ID{10}},
	}
	s := New(api)

	require.NoError(t, s.Set(guildID, userID, 0xFFFFFF))
	assert.Equal(t, []snowflake.ID{10}, api.deleted)
	assert.Contains(t, api.member.RoleIDs, snowflake.ID(11))
	for _, role := range api.roles {
		if role.ID == 11 {
			assert.Equal(t, 0xFFFFFF, role.Color)
		}
	}
}

func TestClear(t *testing.T) {
	api := &fakeRoles{roles: []discord.Role{{ID: 11, Name: "555"}}}
	s := New(api)

	cleared, err := s.Clear(guildID, userID)
	require.NoError(t, err)
	assert.True(t, cleared)

	cleared, err = s.Clear(guildID, userID)
	require.NoError(t, err)
	assert.False(t, cleared)
}
