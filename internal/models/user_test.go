package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTel(t *testing.T) {
	tests := []struct {
		name string
		tel  string
		want string
	}{
		{"raw digits with country code", "5511987654321", "(11) 9 8765-4321"},
		{"plus prefix", "+5511987654321", "(11) 9 8765-4321"},
		{"bare mobile number", "11987654321", "(11) 9 8765-4321"},
		{"too short returned unchanged", "987654321", "987654321"},
		{"formatted input re-normalized", "(11) 9 8765-4321", "(11) 9 8765-4321"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{Tel: tt.tel}
			assert.Equal(t, tt.want, u.FormatTel())
		})
	}
}

func TestUserNames(t *testing.T) {
	u := &User{FirstName: "Ada", MiddleName: "King", LastName: "Lovelace"}
	assert.Equal(t, "Ada Lovelace", u.FullName())
	assert.Equal(t, "Ada K. Lovelace", u.String())

	u.MiddleName = ""
	assert.Equal(t, "Ada Lovelace", u.String())
}

func TestUserAge(t *testing.T) {
	u := &User{BirthDate: time.Now().AddDate(-30, 0, -10)}
	assert.Equal(t, 30, u.Age())

	newborn := &User{BirthDate: time.Now().AddDate(0, 0, -100)}
	assert.Equal(t, 0, newborn.Age())
}
