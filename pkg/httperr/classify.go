package httperr

import "net/http"

// Classify maps resp's status code to success or a classified *Error.
//
// 2xx returns resp unchanged. 3xx is a bad response without diagnostics.
// 400, 401, 404 and 500 map to their named kinds and everything else is
// unclassified; those cases carry a Transaction built from req and resp.
func Classify(req Request, resp Response) (Response, error) {
	code := resp.StatusCode
	switch {
	case code >= 200 && code < 300:
		return resp, nil
	case code >= 300 && code < 400:
		return Response{}, BadResponse(nil)
	}

	tx := NewTransaction(req, resp)
	switch code {
	case http.StatusBadRequest:
		return Response{}, BadRequest(tx)
	case http.StatusUnauthorized:
		return Response{}, Unauthorized(tx)
	case http.StatusNotFound:
		return Response{}, NotFound(tx)
	case http.StatusInternalServerError:
		return Response{}, InternalServerError(tx)
	default:
		return Response{}, Unclassified(tx)
	}
}
