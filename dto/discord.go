package dto

// InteractionType loại interaction Discord gửi tới
type InteractionType int

const (
	InteractionPing               InteractionType = 1
	InteractionApplicationCommand InteractionType = 2
)

// InteractionCallbackType loại phản hồi
type InteractionCallbackType int

const (
	CallbackPong                     InteractionCallbackType = 1
	CallbackChannelMessageWithSource InteractionCallbackType = 4
)

const OptionTypeString = 3

type DiscordUser struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	GlobalName string `json:"global_name,omitempty"`
}

type GuildMember struct {
	User *DiscordUser `json:"user,omitempty"`
	Nick string       `json:"nick,omitempty"`
}

type InteractionOption struct {
	Name  string      `json:"name"`
	Type  int         `json:"type"`
	Value interface{} `json:"value,omitempty"`
}

type InteractionData struct {
	ID      string              `json:"id"`
	Name    string              `json:"name"`
	Options []InteractionOption `json:"options,omitempty"`
}

// Interaction payload Discord gửi tới endpoint
type Interaction struct {
	ID      string           `json:"id"`
	Type    InteractionType  `json:"type"`
	Token   string           `json:"token"`
	Data    *InteractionData `json:"data,omitempty"`
	Member  *GuildMember     `json:"member,omitempty"`
	User    *DiscordUser     `json:"user,omitempty"`
	GuildID string           `json:"guild_id,omitempty"`
}

// Caller lấy user gọi lệnh: trong guild là member.user, trong DM là user
func (i *Interaction) Caller() *DiscordUser {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// StringOption lấy giá trị option kiểu chuỗi
func (i *Interaction) StringOption(name string) string {
	if i.Data == nil {
		return ""
	}
	for _, opt := range i.Data.Options {
		if opt.Name == name {
			if s, ok := opt.Value.(string); ok {
				return s
			}
		}
	}
	return ""
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type EmbedFooter struct {
	Text string `json:"text"`
}

type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
}

type InteractionCallbackData struct {
	Content string  `json:"content,omitempty"`
	Embeds  []Embed `json:"embeds,omitempty"`
}

type InteractionResponse struct {
	Type InteractionCallbackType  `json:"type"`
	Data *InteractionCallbackData `json:"data,omitempty"`
}

type ApplicationCommandOption struct {
	Type        int    `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required,omitempty"`
}

type ApplicationCommand struct {
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	Type        int                        `json:"type,omitempty"`
	Options     []ApplicationCommandOption `json:"options,omitempty"`
}
