package datamaxiapi

import (
	"context"
	"net/url"

	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/table"
)

// TelegramService serves the crypto telegram channels and their posts.
type TelegramService struct {
	client APIClient
}

func (s *TelegramService) NewGetChannelsRequest() *GetTelegramChannelsRequest {
	return &GetTelegramChannelsRequest{client: s.client, page: newPagination()}
}

func (s *TelegramService) NewGetPostsRequest() *GetTelegramPostsRequest {
	return &GetTelegramPostsRequest{client: s.client, page: newPagination()}
}

type GetTelegramChannelsRequest struct {
	client APIClient

	category *string

	page pagination
}

func (r *GetTelegramChannelsRequest) Category(category string) *GetTelegramChannelsRequest {
	r.category = &category
	return r
}

func (r *GetTelegramChannelsRequest) Page(page int) *GetTelegramChannelsRequest {
	r.page.page = page
	return r
}

func (r *GetTelegramChannelsRequest) Limit(limit int) *GetTelegramChannelsRequest {
	r.page.limit = limit
	return r
}

func (r *GetTelegramChannelsRequest) Sort(sort string) *GetTelegramChannelsRequest {
	r.page.sort = sort
	return r
}

func (r *GetTelegramChannelsRequest) GetQueryParameters() (url.Values, error) {
	if err := r.page.validate(); err != nil {
		return nil, err
	}

	params := url.Values{}
	setOptional(params, "category", r.category)
	r.page.encode(params)
	return params, nil
}

func (r *GetTelegramChannelsRequest) WithPage(page int) PagedRequest {
	c := *r
	c.page.page = page
	return &c
}

func (r *GetTelegramChannelsRequest) DoPage(ctx context.Context) (*Page, error) {
	return r.Do(ctx)
}

func (r *GetTelegramChannelsRequest) Do(ctx context.Context) (*Page, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryPage(ctx, r.client, "/api/v1/telegram/channels", params, r.page, table.RecordsAsIs(""), r)
}

type GetTelegramPostsRequest struct {
	client APIClient

	channel *string

	page pagination
}

// ChannelName filters the posts of one channel, it is sent as the channel query parameter.
func (r *GetTelegramPostsRequest) ChannelName(channel string) *GetTelegramPostsRequest {
	r.channel = &channel
	return r
}

// ChannelUsername is the former name of ChannelName.
//
// Deprecated: use ChannelName.
func (r *GetTelegramPostsRequest) ChannelUsername(username string) *GetTelegramPostsRequest {
	return r.ChannelName(username)
}

func (r *GetTelegramPostsRequest) Page(page int) *GetTelegramPostsRequest {
	r.page.page = page
	return r
}

func (r *GetTelegramPostsRequest) Limit(limit int) *GetTelegramPostsRequest {
	r.page.limit = limit
	return r
}

func (r *GetTelegramPostsRequest) Sort(sort string) *GetTelegramPostsRequest {
	r.page.sort = sort
	return r
}

func (r *GetTelegramPostsRequest) GetQueryParameters() (url.Values, error) {
	if err := r.page.validate(); err != nil {
		return nil, err
	}

	params := url.Values{}
	setOptional(params, "channel", r.channel)
	r.page.encode(params)
	return params, nil
}

func (r *GetTelegramPostsRequest) WithPage(page int) PagedRequest {
	c := *r
	c.page.page = page
	return &c
}

func (r *GetTelegramPostsRequest) DoPage(ctx context.Context) (*Page, error) {
	return r.Do(ctx)
}

func (r *GetTelegramPostsRequest) Do(ctx context.Context) (*Page, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryPage(ctx, r.client, "/api/v1/telegram/posts", params, r.page, table.RecordsAsIs(""), r)
}
