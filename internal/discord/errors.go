package discord

import (
	"errors"
	"net/http"

	"github.com/bwmarrin/discordgo"
)

// IsPermission returns true if the error means that the account is not
// allowed to perform the operation.
func IsPermission(err error) bool {
	var re *discordgo.RESTError
	if !errors.As(err, &re) {
		return false
	}
	if re.Message != nil {
		switch re.Message.Code {
		case discordgo.ErrCodeMissingAccess, discordgo.ErrCodeMissingPermissions:
			return true
		}
	}
	return re.Response != nil && re.Response.StatusCode == http.StatusForbidden
}

// IsUnknownMessage returns true if the message does not exist (anymore).
func IsUnknownMessage(err error) bool {
	var re *discordgo.RESTError
	if !errors.As(err, &re) {
		return false
	}
	return re.Message != nil && re.Message.Code == discordgo.ErrCodeUnknownMessage
}
