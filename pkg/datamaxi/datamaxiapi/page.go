package datamaxiapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/valyala/fastjson"

	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/table"
)

// PagedRequest is implemented by the request builders of the paged endpoints.
type PagedRequest interface {
	// WithPage returns a copy of the request pointing at the given page
	WithPage(page int) PagedRequest

	DoPage(ctx context.Context) (*Page, error)
}

// Page is one page of a paged endpoint. There is no server side cursor, the next page is the
// same request with the page number increased.
type Page struct {
	PageNumber int
	Limit      int

	// Body is the full reply envelope
	Body json.RawMessage

	// Data is the data field of the envelope, never null or empty
	Data json.RawMessage

	LimitUsage map[string]string
	Header     http.Header

	request PagedRequest
	shape   table.Shape
}

// Next fetches the following page with the same parameters and validation.
func (p *Page) Next(ctx context.Context) (*Page, error) {
	return p.request.WithPage(p.PageNumber + 1).DoPage(ctx)
}

// Request returns a copy of the request that produced this page.
func (p *Page) Request() PagedRequest {
	return p.request.WithPage(p.PageNumber)
}

func (p *Page) Decode(v interface{}) error {
	return json.Unmarshal(p.Data, v)
}

func (p *Page) Table() (*table.Table, error) {
	return p.shape.Normalize(p.Data)
}

func queryPage(ctx context.Context, client APIClient, path string, params url.Values, pg pagination, shape table.Shape, request PagedRequest) (*Page, error) {
	res, err := client.Query(ctx, path, params)
	if err != nil {
		return nil, err
	}

	data, err := dataField(res.Data)
	if err != nil {
		return nil, err
	}

	// builders are mutable, keep a copy so Next repeats the arguments of this call
	return &Page{
		PageNumber: pg.page,
		Limit:      pg.limit,
		Body:       res.Data,
		Data:       data,
		LimitUsage: res.LimitUsage,
		Header:     res.Header,
		request:    request.WithPage(pg.page),
		shape:      shape,
	}, nil
}

func dataField(body []byte) (json.RawMessage, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(body)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse page body")
	}

	if v.Type() != fastjson.TypeObject {
		return nil, errors.Errorf("unexpected page body, expecting an object, got %s", v.Type())
	}

	data := v.Get("data")
	if data == nil || isEmptyJSON(data) {
		return nil, ErrNoDataFound
	}

	return data.MarshalTo(nil), nil
}

func isEmptyJSON(v *fastjson.Value) bool {
	switch v.Type() {
	case fastjson.TypeNull:
		return true

	case fastjson.TypeArray:
		values, _ := v.Array()
		return len(values) == 0

	case fastjson.TypeObject:
		o, _ := v.Object()
		return o.Len() == 0

	case fastjson.TypeString:
		return len(v.GetStringBytes()) == 0

	}

	return false
}
