// Package mcclient provides the primary entry point for constructing a
// Mailchimp Marketing API v3 client that implements the mcapi.Client
// interface.
//
// It layers configuration, HTTP transport and API key authentication on top
// of the resource interfaces and types defined in the mcapi package. Most
// applications import mcclient to build a client, then use the returned
// mcapi.Client to reach the resource clients, for example Lists() and
// Campaigns().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/mcapi/pkg/mcapi"
//	  "github.com/fivetwenty-io/mcapi/pkg/mcclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // The data center is taken from the key suffix ("-us6").
//	  cli, err := mcclient.NewWithAPIKey(ctx, "0123456789abcdef-us6")
//	  if err != nil { log.Fatal(err) }
//
//	  lists, err := cli.Lists().ListAll(ctx, mcapi.NewQueryParams().WithFields("lists.id", "lists.name"))
//	  if err != nil { log.Fatal(err) }
//
//	  members := cli.Lists().Members(lists[0].ID)
//	  _, err = members.Upsert(ctx, "someone@example.com", &mcapi.MemberRequest{
//	    EmailAddress: "someone@example.com",
//	    StatusIfNew:  mcapi.MemberStatusPending,
//	  })
//	  if err != nil { log.Fatal(err) }
//	}
//
// # Validation
//
// Payloads are checked before they are sent. A failed check returns a
// *mcapi.ValidationError listing every violation and makes no request.
//
// # Helpers
//
// NewWithAPIKey and NewWithEndpoint wrap New with the matching
// configuration.
package mcclient
