package core

// Request describes one HTTP exchange to be executed by the transport.
// URL holds the absolute, version-rendered venue URL produced by the
// converter; Query holds the already-renamed venue parameters.
type Request struct {
	Method  string            `json:"method"`
	URL     string            `json:"url"`
	Query   map[string]string `json:"query,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

// NewRequest creates a Request with initialized maps.
func NewRequest(method, url string) *Request {
	return &Request{
		Method:  method,
		URL:     url,
		Query:   make(map[string]string),
		Headers: make(map[string]string),
	}
}

// SetQuery stores a query parameter and returns the request for chaining.
func (r *Request) SetQuery(key, value string) *Request {
	if r.Query == nil {
		r.Query = make(map[string]string)
	}
	r.Query[key] = value
	return r
}

// SetQueryParams merges query parameters and returns the request for chaining.
func (r *Request) SetQueryParams(params map[string]string) *Request {
	for k, v := range params {
		r.SetQuery(k, v)
	}
	return r
}

// SetHeader stores a header and returns the request for chaining.
func (r *Request) SetHeader(key, value string) *Request {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[key] = value
	return r
}
