// Package client contains the device side of the remote mirror.
//
// # Overview
//
// The package provides:
//  1. The Client interface: Register, Login, Ping and the mirror calls
//     (RecordTriage, UpsertPlan, UpsertContacts, AppendJournal) plus
//     PresignExport for uploading exported documents.
//  2. GRPCClient, a gRPC implementation that attaches the access token to
//     every call, refreshes an expired token once and retries, and maps
//     gRPC status codes to sentinel errors.
//  3. InitDatabase and RunMigrations, which open the local SQLite file and
//     apply the embedded goose migrations.
//
// # Error Handling
//
// Transport conditions surface as ErrUnavailable and ErrUnauthorized and can
// be matched with errors.Is.
package client
