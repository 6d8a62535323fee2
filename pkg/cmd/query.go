package cmd

import (
	"context"
	"net/url"

	"github.com/cheggaaa/pb/v3"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/datamaxiplus/datamaxi-go/pkg/cmd/cmdutil"
	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi"
	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/datamaxiapi"
	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/table"
	"github.com/datamaxiplus/datamaxi-go/pkg/util/backoff"
)

// retryQuery retries server errors and transport failures --retries times, other errors are returned at once.
func retryQuery[T any](ctx context.Context, query func() (T, error)) (T, error) {
	retries := viper.GetInt("retries")
	if retries <= 0 {
		return query()
	}

	var result T
	err := backoff.RetryGeneral(ctx, uint64(retries), func() (err error) {
		result, err = query()
		if err == nil {
			return nil
		}

		if isTransient(err) {
			log.WithError(err).Warn("query failed, retrying")
			return err
		}

		return backoff.Permanent(err)
	})
	return result, err
}

func isTransient(err error) bool {
	var serverErr *datamaxiapi.ServerError
	if errors.As(err, &serverErr) {
		return true
	}

	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

func withClient(cmd *cobra.Command, f func(ctx context.Context, client *datamaxi.Client, p *printer) error) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	p, err := newPrinter(cmd)
	if err != nil {
		return err
	}

	err = f(cmd.Context(), client, p)
	return multierr.Append(err, p.Close())
}

// runResponse prints a non paged reply as a table, replies without a table layout are printed as json.
// An empty dataset is an error.
func runResponse(cmd *cobra.Command, query func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Response, error)) error {
	return withClient(cmd, func(ctx context.Context, client *datamaxi.Client, p *printer) error {
		res, err := retryQuery(ctx, func() (*datamaxiapi.Response, error) {
			return query(ctx, client)
		})
		if err != nil {
			return err
		}

		p.printUsage(res.LimitUsage, res.Header)

		if p.raw {
			return p.printRaw(res.Data)
		}

		tbl, err := res.Table()
		if errors.Is(err, table.ErrEmptyData) {
			return errors.Wrap(err, "no data found")
		} else if err != nil {
			log.WithError(err).Warn("unable to build the table, printing the reply as it is")
			return p.printRaw(res.Data)
		}

		return p.printRows(newRows(tbl))
	})
}

// runJSON prints the replies of the catalog endpoints returning objects.
func runJSON(cmd *cobra.Command, query func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Response, error)) error {
	return withClient(cmd, func(ctx context.Context, client *datamaxi.Client, p *printer) error {
		res, err := retryQuery(ctx, func() (*datamaxiapi.Response, error) {
			return query(ctx, client)
		})
		if err != nil {
			return err
		}

		p.printUsage(res.LimitUsage, res.Header)
		return p.printRaw(res.Data)
	})
}

func runStrings(cmd *cobra.Command, name string, query func(ctx context.Context, client *datamaxi.Client) ([]string, error)) error {
	return withClient(cmd, func(ctx context.Context, client *datamaxi.Client, p *printer) error {
		values, err := retryQuery(ctx, func() ([]string, error) {
			return query(ctx, client)
		})
		if err != nil {
			return err
		}

		return p.printStrings(name, values)
	})
}

// runPages fetches opts.Pages pages starting from the first one and prints them as one table.
func runPages(cmd *cobra.Command, opts cmdutil.PageOptions, query func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Page, error)) error {
	if opts.Pages < 0 {
		return errors.New("--pages can not be negative")
	}

	return withClient(cmd, func(ctx context.Context, client *datamaxi.Client, p *printer) error {
		page, err := retryQuery(ctx, func() (*datamaxiapi.Page, error) {
			return query(ctx, client)
		})
		if err != nil {
			return err
		}

		pages, err := fetchPages(ctx, page, opts.Pages, p)
		if err != nil {
			return err
		}

		last := pages[len(pages)-1]
		p.printUsage(last.LimitUsage, last.Header)

		if p.raw {
			for _, page := range pages {
				if err := p.printRaw(page.Body); err != nil {
					return err
				}
			}
			return nil
		}

		var merged *rows
		for _, page := range pages {
			tbl, err := page.Table()
			if err != nil {
				return errors.Wrapf(err, "page %d", page.PageNumber)
			}

			if merged == nil {
				merged = newRows(tbl)
				continue
			}

			if err := merged.append(newRows(tbl)); err != nil {
				return err
			}
		}

		return p.printRows(merged)
	})
}

func fetchPages(ctx context.Context, first *datamaxiapi.Page, limit int, p *printer) ([]*datamaxiapi.Page, error) {
	pages := []*datamaxiapi.Page{first}

	var bar *pb.ProgressBar
	if limit != 1 && p.colored {
		bar = pb.New(limit).SetWriter(p.errOut).Start()
		bar.Increment()
		defer bar.Finish()
	}

	for page := first; limit == 0 || len(pages) < limit; {
		next, err := retryQuery(ctx, func() (*datamaxiapi.Page, error) {
			return page.Next(ctx)
		})
		if errors.Is(err, datamaxiapi.ErrNoDataFound) {
			log.Debugf("no data after page %d", page.PageNumber)
			break
		} else if err != nil {
			return nil, err
		}

		pages = append(pages, next)
		page = next

		if bar != nil {
			bar.Increment()
		}
	}

	return pages, nil
}
