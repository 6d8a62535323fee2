package datamaxiapi

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	var nilString *string
	empty := ""
	value := "binance"
	zero := 0

	cases := []struct {
		name  string
		value interface{}
		empty bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"string", "binance", false},
		{"nil pointer", nilString, true},
		{"pointer to empty", &empty, true},
		{"pointer to value", &value, false},
		{"empty list", []string{}, true},
		{"list", []string{"aave"}, false},
		{"zero", 0, false},
		{"pointer to zero", &zero, false},
		{"false", false, false},
		{"float zero", 0.0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.empty, isEmpty(c.value))
		})
	}
}

func TestCheckRequiredParameters(t *testing.T) {
	err := checkRequiredParameters(
		param{"exchange", "binance"},
		param{"symbol", ""},
		param{"interval", ""},
	)

	var requiredErr *ParameterRequiredError
	require.True(t, errors.As(err, &requiredErr))
	assert.Equal(t, []string{"symbol"}, requiredErr.Params)
	assert.Equal(t, "symbol is mandatory, but received empty", err.Error())

	assert.NoError(t, checkRequiredParameters(param{"page", 0}, param{"daily", false}))
}

func TestCheckRequiredList(t *testing.T) {
	assert.Error(t, checkRequiredList("protocols", nil))
	assert.Error(t, checkRequiredList("protocols", []string{"aave", ""}))
	assert.NoError(t, checkRequiredList("protocols", []string{"aave", "lido"}))
}

func TestCheckAtLeastOne(t *testing.T) {
	var protocol, chain *string
	err := checkAtLeastOne(param{"protocol", protocol}, param{"chain", chain})

	var atLeastOneErr *AtLeastOneParameterRequiredError
	require.True(t, errors.As(err, &atLeastOneErr))
	assert.Equal(t, []string{"protocol", "chain"}, atLeastOneErr.Params)

	c := "ethereum"
	assert.NoError(t, checkAtLeastOne(param{"protocol", protocol}, param{"chain", &c}))
}

func TestCheckExactlyOne(t *testing.T) {
	p, c := "aave", "ethereum"
	var unset *string

	assert.Error(t, checkExactlyOne(param{"protocol", unset}, param{"chain", unset}))
	assert.Error(t, checkExactlyOne(param{"protocol", &p}, param{"chain", &c}))
	assert.NoError(t, checkExactlyOne(param{"protocol", &p}, param{"chain", unset}))
	assert.NoError(t, checkExactlyOne(param{"protocol", unset}, param{"chain", &c}))

	// an empty value counts as given, so it is reported as missing rather than as a conflict
	empty := ""
	err := checkExactlyOne(param{"protocol", &empty}, param{"chain", unset})

	var requiredErr *ParameterRequiredError
	require.True(t, errors.As(err, &requiredErr))
	assert.Equal(t, []string{"protocol"}, requiredErr.Params)

	err = checkExactlyOne(param{"protocol", unset}, param{"chain", &empty})
	require.True(t, errors.As(err, &requiredErr))
	assert.Equal(t, []string{"chain"}, requiredErr.Params)

	var valueErr *ValueError
	err = checkExactlyOne(param{"protocol", &empty}, param{"chain", &c})
	assert.True(t, errors.As(err, &valueErr))
}

func TestCheckEnum(t *testing.T) {
	err := checkEnum("sort", "random", SortAsc, SortDesc)

	var valueErr *ValueError
	require.True(t, errors.As(err, &valueErr))
	assert.Equal(t, "sort", valueErr.Field)
	assert.Equal(t, "sort must be either asc or desc", valueErr.Message)

	err = checkEnum("color", "red", "green", "blue", "yellow")
	assert.EqualError(t, err, "color must be one of green, blue, yellow")
}

func TestPagination_Validate(t *testing.T) {
	p := newPagination()
	assert.NoError(t, p.validate())

	p.page = 0
	assert.EqualError(t, p.validate(), "page must be greater than 0")

	p = newPagination()
	p.limit = 0
	assert.EqualError(t, p.validate(), "limit must be greater than 0")

	p = newPagination()
	p.sort = "newest"
	assert.EqualError(t, p.validate(), "sort must be either asc or desc")
}

func TestTimeRange_Validate(t *testing.T) {
	from, to := "2024-01-01", "2024-02-01"

	window := newTimeRange("from", "to")
	window.from = &from
	assert.NoError(t, window.validate())

	window.to = &to
	assert.EqualError(t, window.validate(), "from and to cannot be set at the same time")
}

func TestEncodeStringList(t *testing.T) {
	assert.Equal(t, `["aave"]`, EncodeStringList([]string{"aave"}))
	assert.Equal(t, `["aave","lido"]`, EncodeStringList([]string{"aave", "lido"}))
	assert.Equal(t, `[]`, EncodeStringList(nil))
}

func TestEnumPassThroughProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	svc := &CexCandleService{}

	properties.Property("accepted enum values are sent verbatim", prop.ForAll(
		func(market, sort string, page, limit int) bool {
			params, err := svc.NewGetCandleRequest().
				Exchange("binance").
				Symbol("BTC-USDT").
				Market(market).
				Sort(sort).
				Page(page).
				Limit(limit).
				GetQueryParameters()
			if err != nil {
				return false
			}

			return params.Get("market") == market && params.Get("sort") == sort
		},
		gen.OneConstOf(MarketSpot, MarketFutures),
		gen.OneConstOf(SortAsc, SortDesc),
		gen.IntRange(1, 1000),
		gen.IntRange(1, 5000),
	))

	properties.Property("other market values are rejected", prop.ForAll(
		func(market string) bool {
			_, err := svc.NewGetCandleRequest().
				Exchange("binance").
				Symbol("BTC-USDT").
				Market(market).
				GetQueryParameters()

			if market == MarketSpot || market == MarketFutures {
				return err == nil
			}

			var valueErr *ValueError
			if len(market) == 0 {
				var requiredErr *ParameterRequiredError
				return errors.As(err, &requiredErr)
			}
			return errors.As(err, &valueErr) && valueErr.Field == "market"
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
