package datamaxiapi

import (
	"context"
	"net/url"

	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/table"
)

// CexAnnouncementService serves the exchange announcement feed.
type CexAnnouncementService struct {
	client APIClient
}

func (s *CexAnnouncementService) NewGetAnnouncementRequest() *GetAnnouncementRequest {
	return &GetAnnouncementRequest{
		client: s.client,
		page:   newPagination(),
	}
}

type GetAnnouncementRequest struct {
	client APIClient

	category *string

	page pagination
}

func (r *GetAnnouncementRequest) Category(category string) *GetAnnouncementRequest {
	r.category = &category
	return r
}

func (r *GetAnnouncementRequest) Page(page int) *GetAnnouncementRequest {
	r.page.page = page
	return r
}

func (r *GetAnnouncementRequest) Limit(limit int) *GetAnnouncementRequest {
	r.page.limit = limit
	return r
}

func (r *GetAnnouncementRequest) Sort(sort string) *GetAnnouncementRequest {
	r.page.sort = sort
	return r
}

func (r *GetAnnouncementRequest) GetQueryParameters() (url.Values, error) {
	if err := r.page.validate(); err != nil {
		return nil, err
	}

	params := url.Values{}
	setOptional(params, "category", r.category)
	r.page.encode(params)
	return params, nil
}

func (r *GetAnnouncementRequest) WithPage(page int) PagedRequest {
	c := *r
	c.page.page = page
	return &c
}

func (r *GetAnnouncementRequest) DoPage(ctx context.Context) (*Page, error) {
	return r.Do(ctx)
}

func (r *GetAnnouncementRequest) Do(ctx context.Context) (*Page, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryPage(ctx, r.client, "/api/v1/cex/announcements", params, r.page, table.RecordsAsIs(""), r)
}
