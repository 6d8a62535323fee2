package datamaxiapi

import (
	"context"
	"net/url"

	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/table"
)

// CexTokenService serves the token listing and delisting events.
type CexTokenService struct {
	client APIClient
}

func (s *CexTokenService) NewGetTokenUpdatesRequest() *GetTokenUpdatesRequest {
	return &GetTokenUpdatesRequest{
		client: s.client,
		page:   newPagination(),
	}
}

type GetTokenUpdatesRequest struct {
	client APIClient

	// updateType is either listed or delisted when set
	updateType *string

	page pagination
}

func (r *GetTokenUpdatesRequest) Type(updateType string) *GetTokenUpdatesRequest {
	r.updateType = &updateType
	return r
}

func (r *GetTokenUpdatesRequest) Page(page int) *GetTokenUpdatesRequest {
	r.page.page = page
	return r
}

func (r *GetTokenUpdatesRequest) Limit(limit int) *GetTokenUpdatesRequest {
	r.page.limit = limit
	return r
}

func (r *GetTokenUpdatesRequest) Sort(sort string) *GetTokenUpdatesRequest {
	r.page.sort = sort
	return r
}

func (r *GetTokenUpdatesRequest) GetQueryParameters() (url.Values, error) {
	if err := r.page.validate(); err != nil {
		return nil, err
	}

	if r.updateType != nil {
		if err := checkEnum("type", *r.updateType, TokenUpdateListed, TokenUpdateDelisted); err != nil {
			return nil, &ValueError{Field: "type", Message: "type must be either listed or delisted when set"}
		}
	}

	params := url.Values{}
	setOptional(params, "type", r.updateType)
	r.page.encode(params)
	return params, nil
}

func (r *GetTokenUpdatesRequest) WithPage(page int) PagedRequest {
	c := *r
	c.page.page = page
	return &c
}

func (r *GetTokenUpdatesRequest) DoPage(ctx context.Context) (*Page, error) {
	return r.Do(ctx)
}

func (r *GetTokenUpdatesRequest) Do(ctx context.Context) (*Page, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryPage(ctx, r.client, "/api/v1/cex/token/updates", params, r.page, table.RecordsAsIs(""), r)
}
