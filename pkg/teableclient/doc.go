// Package teableclient provides the primary entry point for constructing a
// Teable API client that implements the teable.Client interface.
//
// It layers configuration, HTTP transport, rate-limit handling, and resource
// caching on top of the resource interfaces and types defined in the teable
// package. Most applications should import teableclient to build a client,
// then use the returned teable.Client to access resource-specific clients,
// for example Tables(), Records(), Spaces(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//	  "time"
//
//	  "github.com/fivetwenty-io/teable-client/pkg/teable"
//	  "github.com/fivetwenty-io/teable-client/pkg/teableclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: API URL plus API key.
//	  cli, err := teableclient.NewWithAPIKey("https://app.teable.io", "teable_xxx")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a full configuration:
//	  config := teable.NewConfig("https://app.teable.io", "teable_xxx")
//	  config.Timeout = 10 * time.Second
//	  cli, err = teableclient.New(config)
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the teable.Client interface
//	  records, err := cli.Records().List(ctx, "tblXXX",
//	    teable.NewRecordQuery().WithTake(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = records
//	}
//
// The API URL is normalized during construction: a missing scheme is
// rejected, trailing slashes are trimmed, and the "/api" base path is
// appended when absent.
package teableclient
