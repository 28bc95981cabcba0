// Package mcapi provides types, interfaces, and helpers for working with the
// Mailchimp Marketing API v3.
//
// # Overview
//
// The mcapi package defines the domain types (List, Member, Campaign,
// TwitterCard, Webhook, ...) and the interfaces of the resource clients
// (ListsClient, MembersClient, CampaignsClient, ...). The concrete
// implementation lives behind mcclient.New, which wires configuration,
// transport and authentication.
//
// Getting a client
//
//	cli, err := mcclient.New(ctx, &mcapi.Config{APIKey: os.Getenv("MCAPI_API_KEY")})
//	if err != nil { log.Fatal(err) }
//
//	page, err := cli.Lists().List(ctx, mcapi.NewQueryParams().WithCount(10))
//	if err != nil { log.Fatal(err) }
//	_ = page
//
// Resources nested below a list are reached through scoped handles. Handles
// never change after construction, so they can be shared freely:
//
//	members := cli.Lists().Members(listID)
//	member, err := members.Get(ctx, "someone@example.com", nil)
//
// # Queries and pagination
//
// QueryParams carries count, offset, fields, exclude_fields and endpoint
// filters. List returns one Page; ListAll walks the collection with FetchAll,
// which requests pages of PageSize items until a short page arrives. A
// collection that keeps returning full pages is cut off after MaxPages with a
// PaginationError. PageIterator offers the same walk one item at a time.
//
// # Errors
//
// Payloads are checked locally before any request is sent; all violations
// come back together in a ValidationError. Non-2xx responses surface as
// TransportError with the decoded problem document. Helpers such as
// IsNotFound and IsValidation branch on the common cases.
//
// # Interceptors and caching
//
// InterceptorChain hooks run around every request (logging, request ids,
// custom headers, metrics). GET responses can be cached in memory or in a
// NATS JetStream key/value bucket; any successful write clears the cache.
package mcapi
