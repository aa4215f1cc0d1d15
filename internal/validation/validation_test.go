package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "simple address", input: "a@b.cd", valid: true},
		{name: "dotted local and hyphenated domain", input: "a.b@c-d.com", valid: true},
		{name: "typical address", input: "ana@example.com", valid: true},
		{name: "subdomain with two letter tld", input: "user@mail.example.co", valid: true},
		{name: "underscore in local part", input: "_ana-1@example.com", valid: true},
		{name: "missing at sign", input: "ana.example.com", valid: false},
		{name: "missing domain dot", input: "ana@example", valid: false},
		{name: "one letter tld", input: "ana@example.c", valid: false},
		{name: "four letter tld", input: "ana@example.info", valid: false},
		{name: "uppercase local part", input: "Ana@example.com", valid: false},
		{name: "empty", input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, Email(tt.input))
		})
	}
}

func TestNameOrFullname(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "first name", input: "Ana", valid: true},
		{name: "name with space", input: "Ana Lopez", valid: true},
		{name: "three part name", input: "Ana Maria Lopez", valid: true},
		{name: "too short", input: "Jo", valid: false},
		{name: "digits", input: "Ana123", valid: false},
		{name: "leading space", input: " Ana", valid: false},
		{name: "punctuation", input: "Ana-Lopez", valid: false},
		{name: "empty", input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, NameOrFullname(tt.input))
		})
	}
}

func TestNickname(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "letters and digits", input: "ana123", valid: true},
		{name: "minimum length", input: "abcd", valid: true},
		{name: "maximum length", input: "abcdefghijklmno", valid: true},
		{name: "underscore", input: "ana_lopez", valid: true},
		{name: "too short", input: "ana", valid: false},
		{name: "too long", input: "abcdefghijklmnop", valid: false},
		{name: "contains space", input: "ana lopez", valid: false},
		{name: "contains hyphen", input: "ana-123", valid: false},
		{name: "empty", input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, Nickname(tt.input))
		})
	}
}
