package jsonclient

import "net/url"

// target turns an absolute endpoint into the URL actually requested: always
// https, same host and port, path and query only.
func target(endpoint string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", &EndpointError{Endpoint: endpoint, Err: err}
	}
	if u.Scheme == "" || u.Host == "" {
		return "", &EndpointError{Endpoint: endpoint}
	}

	t := url.URL{
		Scheme:   "https",
		Host:     u.Host,
		Path:     u.Path,
		RawPath:  u.RawPath,
		RawQuery: u.RawQuery,
	}
	if t.Path == "" {
		t.Path = "/"
	}
	return t.String(), nil
}
