package fibertransport

import (
	fibercli "github.com/gofiber/fiber/v3/client"
)

type fiberResp struct {
	status int
	body   []byte
}

// newFiberResp copies the reply and releases r together with its request.
func newFiberResp(r *fibercli.Response) fiberResp {
	defer r.Close()
	b := append([]byte(nil), r.Body()...)
	return fiberResp{
		status: r.StatusCode(),
		body:   b,
	}
}

func (r fiberResp) StatusCode() int { return r.status }
func (r fiberResp) Body() []byte    { return r.body }
