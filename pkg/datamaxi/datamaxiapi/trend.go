package datamaxiapi

import (
	"context"
	"net/url"

	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/table"
)

const (
	TrendGoogle = "google"
	TrendNaver  = "naver"
)

// TrendService serves the search trend of a keyword, for either google or naver.
type TrendService struct {
	client APIClient
	source string
}

func (s *TrendService) Keywords(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, s.client, "/v1/"+s.source+"/keywords", nil)
}

func (s *TrendService) NewGetTrendRequest() *GetTrendRequest {
	return &GetTrendRequest{client: s.client, path: "/v1/" + s.source + "/trend"}
}

type GetTrendRequest struct {
	client APIClient
	path   string

	keyword string
}

func (r *GetTrendRequest) Keyword(keyword string) *GetTrendRequest {
	r.keyword = keyword
	return r
}

func (r *GetTrendRequest) GetQueryParameters() (url.Values, error) {
	if err := checkRequired("keyword", r.keyword); err != nil {
		return nil, err
	}

	return url.Values{"keyword": {r.keyword}}, nil
}

func (r *GetTrendRequest) Do(ctx context.Context) (*Response, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryTable(ctx, r.client, r.path, params, table.HeaderRows(1))
}
