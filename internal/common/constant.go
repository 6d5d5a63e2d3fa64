// Package common contains shared constants and sentinel errors used across
// the client and the mirror server.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// ShareTokenLength is the fixed length of a safety plan share token.
const ShareTokenLength = 24

// ShareTokenAlphabet is the character set share tokens are drawn from.
const ShareTokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
