package colors

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
)

// RestRoleAPI implements RoleAPI on top of the Discord REST API.
type RestRoleAPI struct {
	Rest rest.Rest
}

func (r *RestRoleAPI) GetRoles(guildID snowflake.ID) ([]discord.Role, error) {
	return r.Rest.GetRoles(guildID)
}

func (r *RestRoleAPI) GetMember(guildID snowflake.ID, userID snowflake.ID) (*discord.Member, error) {
	return r.Rest.GetMember(guildID, userID)
}

func (r *RestRoleAPI) CreateRole(guildID snowflake.ID, name string, color int) (*discord.Role, error) {
	return r.Rest.CreateRole(guildID, discord.RoleCreate{
		Name:        name,
		Color:       color,
		Hoist:       false,
		Mentionable: false,
	})
}

func (r *RestRoleAPI) UpdateRoleColor(guildID snowflake.ID, roleID snowflake.ID, color int) error {
	_, err := r.Rest.UpdateRole(guildID, roleID, discord.RoleUpdate{
		Color: &color,
	})
	return err
}

func (r *RestRoleAPI) DeleteRole(guildID snowflake.ID, roleID snowflake.ID) error {
	return r.Rest.DeleteRole(guildID, roleID)
}

func (r *RestRoleAPI) AddMemberRole(guildID snowflake.ID, userID snowflake.ID, roleID snowflake.ID) error {
	return r.Rest.AddMemberRole(guildID, userID, roleID)
}
