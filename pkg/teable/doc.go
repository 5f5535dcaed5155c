// Package teable provides types, interfaces, and helpers for working with the
// Teable API.
//
// # Overview
//
// The teable package defines the domain types (e.g., Table, Record, Field,
// View, Space, Base) and the interfaces for resource-oriented clients (e.g.,
// TablesClient, RecordsClient). A concrete implementation is constructed by
// the teableclient package, which wires configuration, the HTTP transport,
// rate-limit tracking, and the resource cache. Most consumers construct a
// client there and interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/teable-client/pkg/teable"
//	  "github.com/fivetwenty-io/teable-client/pkg/teableclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := teableclient.New(teable.NewConfig("https://app.teable.io", "teable_xxx"))
//	  if err != nil { log.Fatal(err) }
//
//	  records, err := cli.Records().List(ctx, "tblXXX",
//	    teable.NewRecordQuery().WithTake(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = records
//	}
//
// # Errors
//
// Every failed call surfaces exactly one of the typed errors defined in this
// package: AuthenticationError, ResourceNotFoundError, RateLimitError,
// APIError, NetworkError, or a caller-side ValidationError. Use the Is*
// predicates (IsNotFound, IsRateLimit, ...) to branch on kind.
//
// # Caching
//
// ResourceCache is an explicit-invalidation store used by the resource
// clients to avoid redundant round-trips. It has no TTL or eviction; the
// clients delete entries whenever they mutate the underlying resource.
package teable
