// Package catalog provides a small net/http handler that returns the
// storefront's available products as JSON.
//
// The default handler responds to GET and HEAD requests and supports q, tag
// and limit parameters to filter results. Products keep their fixture order.
// The backing data is the embedded coffee fixture unless a Source is given.
package catalog
