package datamaxiapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/table"
)

// Response is the decoded reply of a non paged endpoint.
type Response struct {
	// Data is the JSON body, a non JSON body is kept as a JSON string
	Data json.RawMessage

	// LimitUsage holds the x-ratelimit-* headers when Config.ShowLimitUsage is set
	LimitUsage map[string]string

	// Header is the full response header when Config.ShowHeader is set
	Header http.Header

	shape table.Shape
}

func (r *Response) Decode(v interface{}) error {
	return json.Unmarshal(r.Data, v)
}

// Strings decodes catalog replies like ["binance","upbit"].
func (r *Response) Strings() ([]string, error) {
	var values []string
	if err := r.Decode(&values); err != nil {
		return nil, errors.Wrap(err, "unable to decode string list")
	}

	return values, nil
}

// Table normalizes the body with the shape of the endpoint that produced it.
func (r *Response) Table() (*table.Table, error) {
	if r.shape == nil {
		return nil, errors.New("the endpoint has no table layout, use TableAs instead")
	}

	return r.shape.Normalize(r.Data)
}

func (r *Response) TableAs(shape table.Shape) (*table.Table, error) {
	return shape.Normalize(r.Data)
}

func queryTable(ctx context.Context, client APIClient, path string, params url.Values, shape table.Shape) (*Response, error) {
	res, err := client.Query(ctx, path, params)
	if err != nil {
		return nil, err
	}

	res.shape = shape
	return res, nil
}

func queryStrings(ctx context.Context, client APIClient, path string, params url.Values) ([]string, error) {
	res, err := client.Query(ctx, path, params)
	if err != nil {
		return nil, err
	}

	return res.Strings()
}
