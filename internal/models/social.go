package models

import "strings"

// SocialNetwork is a catalog entry carrying the URL template used to
// assemble a user's profile link.
type SocialNetwork struct {
	BaseModel
	Name    string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	BaseURL string `gorm:"size:200;uniqueIndex;not null" json:"base_url"`
	IconURL string `gorm:"size:200;uniqueIndex;not null" json:"icon_url"`
	Suffix  string `gorm:"size:100" json:"suffix,omitempty"`
}

func (SocialNetwork) TableName() string { return "core_social_networks" }

// UserSocialNetwork is a user's handle on a network, unique per
// (user, network) and per (username, network).
type UserSocialNetwork struct {
	BaseModel
	UserID          string         `gorm:"type:uuid;not null;uniqueIndex:idx_user_social_network" json:"user_id"`
	SocialNetworkID string         `gorm:"type:uuid;not null;uniqueIndex:idx_user_social_network;uniqueIndex:idx_username_social_network" json:"social_network_id"`
	SocialNetwork   *SocialNetwork `gorm:"foreignKey:SocialNetworkID" json:"social_network,omitempty"`
	Username        string         `gorm:"size:100;not null;uniqueIndex:idx_username_social_network" json:"username"`
}

func (UserSocialNetwork) TableName() string { return "core_user_social_networks" }

// URL assembles the display link: base url, the network suffix with
// slashes stripped, then the username.
func (usn *UserSocialNetwork) URL() string {
	if usn.SocialNetwork == nil {
		return ""
	}
	url := usn.SocialNetwork.BaseURL
	if !strings.HasSuffix(url, "/") {
		url += "/"
	}
	if suffix := usn.SocialNetwork.Suffix; suffix != "" {
		url += strings.ReplaceAll(suffix, "/", "") + "/"
	}
	return url + usn.Username
}

// Name is the display label: the network's catalog name.
func (usn *UserSocialNetwork) Name() string {
	if usn.SocialNetwork == nil {
		return ""
	}
	return usn.SocialNetwork.Name
}

// IconURL exposes the network icon for the template.
func (usn *UserSocialNetwork) IconURL() string {
	if usn.SocialNetwork == nil {
		return ""
	}
	return usn.SocialNetwork.IconURL
}
