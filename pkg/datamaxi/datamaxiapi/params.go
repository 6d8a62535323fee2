package datamaxiapi

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"

	MarketSpot    = "spot"
	MarketFutures = "futures"

	TokenUpdateListed   = "listed"
	TokenUpdateDelisted = "delisted"

	defaultPage     = 1
	defaultLimit    = 1000
	defaultInterval = "1d"
)

type param struct {
	name  string
	value interface{}
}

// isEmpty follows the vendor rule: nil, nil pointers, empty strings and empty collections are
// unset, numbers (0 included) and booleans are set.
func isEmpty(value interface{}) bool {
	if value == nil {
		return true
	}

	switch v := value.(type) {
	case string:
		return len(v) == 0
	case *string:
		return v == nil || len(*v) == 0
	case []string:
		return len(v) == 0
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return isEmpty(rv.Elem().Interface())

	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0

	case reflect.String:
		return rv.Len() == 0

	}

	return false
}

func checkRequired(name string, value interface{}) error {
	if isEmpty(value) {
		return &ParameterRequiredError{Params: []string{name}}
	}
	return nil
}

// checkRequiredParameters reports the first missing parameter in the given order.
func checkRequiredParameters(params ...param) error {
	for _, p := range params {
		if err := checkRequired(p.name, p.value); err != nil {
			return err
		}
	}
	return nil
}

func checkRequiredList(name string, values []string) error {
	if len(values) == 0 {
		return &ParameterRequiredError{Params: []string{name}}
	}

	for _, v := range values {
		if err := checkRequired(name, v); err != nil {
			return err
		}
	}
	return nil
}

func checkAtLeastOne(params ...param) error {
	names := make([]string, 0, len(params))
	for _, p := range params {
		if !isEmpty(p.value) {
			return nil
		}
		names = append(names, p.name)
	}

	return &AtLeastOneParameterRequiredError{Params: names}
}

// checkExactlyOne is the protocol-or-chain rule of the fee and revenue endpoints. Exactly one of
// the two must be set, and the one that is set must not be empty.
func checkExactlyOne(a, b param) error {
	if isUnset(a.value) == isUnset(b.value) {
		return &ValueError{
			Field:   a.name,
			Message: fmt.Sprintf("either %s or %s should be provided, but not both", a.name, b.name),
		}
	}

	if !isUnset(a.value) {
		return checkRequired(a.name, a.value)
	}
	return checkRequired(b.name, b.value)
}

// isUnset reports whether the optional parameter was never given, an empty value still counts as given.
func isUnset(value interface{}) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
		return rv.IsNil()
	}
	return false
}

func checkEnum(name, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}

	var message string
	if len(allowed) == 2 {
		message = fmt.Sprintf("%s must be either %s or %s", name, allowed[0], allowed[1])
	} else {
		message = fmt.Sprintf("%s must be one of %s", name, strings.Join(allowed, ", "))
	}

	return &ValueError{Field: name, Message: message}
}

func checkMarket(market string) error {
	return checkEnum("market", market, MarketSpot, MarketFutures)
}

// EncodeStringList encodes a list parameter as ["a","b"].
func EncodeStringList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + v + `"`
	}
	return "[" + strings.Join(quoted, ",") + "]"
}

func setOptional(params url.Values, key string, value *string) {
	if value != nil {
		params.Set(key, *value)
	}
}

func setOptionalNonEmpty(params url.Values, key string, value *string) {
	if value != nil && len(*value) > 0 {
		params.Set(key, *value)
	}
}

// pagination carries the page, limit and sort parameters shared by the paged endpoints.
type pagination struct {
	page  int
	limit int
	sort  string
}

func newPagination() pagination {
	return pagination{
		page:  defaultPage,
		limit: defaultLimit,
		sort:  SortDesc,
	}
}

func (p pagination) validate() error {
	if p.page < 1 {
		return &ValueError{Field: "page", Message: "page must be greater than 0"}
	}

	if p.limit < 1 {
		return &ValueError{Field: "limit", Message: "limit must be greater than 0"}
	}

	return checkEnum("sort", p.sort, SortAsc, SortDesc)
}

func (p pagination) encode(params url.Values) {
	params.Set("page", strconv.Itoa(p.page))
	params.Set("limit", strconv.Itoa(p.limit))
	params.Set("sort", p.sort)
}

// timeRange is the optional from/to window, at most one side can be set. The query keys differ
// between the endpoint generations.
type timeRange struct {
	fromKey, toKey string
	from, to       *string
}

func newTimeRange(fromKey, toKey string) timeRange {
	return timeRange{fromKey: fromKey, toKey: toKey}
}

func (t timeRange) validate() error {
	if t.from != nil && t.to != nil {
		return &ValueError{
			Field:   t.fromKey,
			Message: fmt.Sprintf("%s and %s cannot be set at the same time", t.fromKey, t.toKey),
		}
	}
	return nil
}

func (t timeRange) encode(params url.Values) {
	setOptional(params, t.fromKey, t.from)
	setOptional(params, t.toKey, t.to)
}
