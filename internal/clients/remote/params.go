package remote

import (
	"fmt"
	"github.com/pkg/errors"
	"net/url"
	"strconv"
)

var ErrTooManyPages = errors.New("remote source returned too many pages")

type PageParameters struct {
	Page    int
	PerPage int
}

func (p PageParameters) Validate() error {
	if p.Page < 1 {
		return fmt.Errorf("page must be at least 1")
	}
	if p.PerPage < 1 || p.PerPage > 100 {
		return fmt.Errorf("per page must be between 1 and 100")
	}
	return nil
}

func (p PageParameters) ToUrlParams() url.Values {
	params := url.Values{}
	params.Add("page", strconv.Itoa(p.Page))
	params.Add("per_page", strconv.Itoa(p.PerPage))
	return params
}
