package cmdutil

import "github.com/spf13/pflag"

// PageFlags defines the flags of the paged datasets
func PageFlags(flags *pflag.FlagSet) {
	flags.Int("page", 1, "the page to start from")
	flags.Int("limit", 1000, "the number of rows per page")
	flags.String("sort", "desc", "sort order, asc or desc")
	flags.Int("pages", 1, "the number of pages to fetch, 0 fetches until there is no data left")
}

// TimeRangeFlags defines the --from and --to flags, only one of them can be set
func TimeRangeFlags(flags *pflag.FlagSet) {
	flags.String("from", "", "start time, e.g, 2024-01-01 or \"2024-01-01 09:00:00\"")
	flags.String("to", "", "end time, e.g, 2024-01-31 or \"2024-01-31 09:00:00\"")
}

type PageOptions struct {
	Page  int
	Limit int
	Sort  string

	// Pages is the number of pages to fetch, 0 means all of them
	Pages int
}

func GetPageOptions(flags *pflag.FlagSet) (opts PageOptions, err error) {
	if opts.Page, err = flags.GetInt("page"); err != nil {
		return opts, err
	}

	if opts.Limit, err = flags.GetInt("limit"); err != nil {
		return opts, err
	}

	if opts.Sort, err = flags.GetString("sort"); err != nil {
		return opts, err
	}

	if opts.Pages, err = flags.GetInt("pages"); err != nil {
		return opts, err
	}

	return opts, nil
}

type TimeRange struct {
	From string
	To   string
}

func GetTimeRange(flags *pflag.FlagSet) (r TimeRange, err error) {
	if r.From, err = flags.GetString("from"); err != nil {
		return r, err
	}

	r.To, err = flags.GetString("to")
	return r, err
}
