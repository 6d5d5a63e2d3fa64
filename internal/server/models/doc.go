// Package models holds the rows persisted by the mirror server.
package models
