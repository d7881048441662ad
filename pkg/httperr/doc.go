// Package httperr classifies HTTP exchanges into a closed set of failure kinds.
//
// A request is issued through an httpclient.Client, its body is decoded as an
// optional JSON object, and the status code is mapped to success or to one of
// the Kind values. Failures that carry diagnostic data hold a Transaction: the
// request together with the parsed response.
package httperr
