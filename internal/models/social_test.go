package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserSocialNetworkURL(t *testing.T) {
	tests := []struct {
		name     string
		network  *SocialNetwork
		username string
		want     string
	}{
		{
			"no suffix",
			&SocialNetwork{BaseURL: "https://github.com"},
			"ada",
			"https://github.com/ada",
		},
		{
			"base url with trailing slash",
			&SocialNetwork{BaseURL: "https://github.com/"},
			"ada",
			"https://github.com/ada",
		},
		{
			"suffix slashes stripped",
			&SocialNetwork{BaseURL: "https://linkedin.com", Suffix: "/in/"},
			"ada",
			"https://linkedin.com/in/ada",
		},
		{
			"missing network",
			nil,
			"ada",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usn := &UserSocialNetwork{SocialNetwork: tt.network, Username: tt.username}
			assert.Equal(t, tt.want, usn.URL())
		})
	}
}

func TestUserSocialNetworkNilSafety(t *testing.T) {
	usn := &UserSocialNetwork{Username: "ada"}
	assert.Empty(t, usn.Name())
	assert.Empty(t, usn.IconURL())
}
