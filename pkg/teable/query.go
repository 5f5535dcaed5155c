package teable

import (
	"encoding/json"
	"net/url"
	"strconv"
)

// MaxTake is the largest page size the records endpoint accepts.
const MaxTake = 2000

// SearchTerm is one search condition: a value, the field to match it
// against, and whether the match must be exact.
type SearchTerm struct {
	Value string
	Field string
	Exact bool
}

// RecordQuery builds the query parameters for record list calls. The zero
// value is usable; methods return the receiver for chaining.
type RecordQuery struct {
	projection        []string
	cellFormat        string
	fieldKeyType      string
	viewID            string
	ignoreViewQuery   *bool
	filterByTql       string
	filter            map[string]interface{}
	search            []SearchTerm
	selectedRecordIDs []string
	orderBy           string
	groupBy           string
	take              *int
	skip              *int
}

// NewRecordQuery creates an empty record query.
func NewRecordQuery() *RecordQuery {
	return &RecordQuery{}
}

// WithProjection limits the returned fields.
func (q *RecordQuery) WithProjection(fields ...string) *RecordQuery {
	q.projection = append(q.projection, fields...)

	return q
}

// WithCellFormat sets the cell format ("json" or "text").
func (q *RecordQuery) WithCellFormat(format string) *RecordQuery {
	q.cellFormat = format

	return q
}

// WithFieldKeyType sets the key type for record fields ("id" or "name").
func (q *RecordQuery) WithFieldKeyType(keyType string) *RecordQuery {
	q.fieldKeyType = keyType

	return q
}

// WithView scopes the query to a view.
func (q *RecordQuery) WithView(viewID string) *RecordQuery {
	q.viewID = viewID

	return q
}

// WithIgnoreViewQuery bypasses the view's own filter and sort.
func (q *RecordQuery) WithIgnoreViewQuery(ignore bool) *RecordQuery {
	q.ignoreViewQuery = &ignore

	return q
}

// WithFilterByTql filters using a Teable query language expression.
func (q *RecordQuery) WithFilterByTql(tql string) *RecordQuery {
	q.filterByTql = tql

	return q
}

// WithFilter filters using a structured filter object, serialized to JSON on
// the wire.
func (q *RecordQuery) WithFilter(filter map[string]interface{}) *RecordQuery {
	q.filter = filter

	return q
}

// WithSearch adds a search condition.
func (q *RecordQuery) WithSearch(value, field string, exact bool) *RecordQuery {
	q.search = append(q.search, SearchTerm{Value: value, Field: field, Exact: exact})

	return q
}

// WithSelectedRecordIDs limits results to the given record IDs.
func (q *RecordQuery) WithSelectedRecordIDs(ids ...string) *RecordQuery {
	q.selectedRecordIDs = append(q.selectedRecordIDs, ids...)

	return q
}

// WithOrderBy sets the sort specification.
func (q *RecordQuery) WithOrderBy(orderBy string) *RecordQuery {
	q.orderBy = orderBy

	return q
}

// WithGroupBy sets the group specification.
func (q *RecordQuery) WithGroupBy(groupBy string) *RecordQuery {
	q.groupBy = groupBy

	return q
}

// WithTake limits the number of records returned.
func (q *RecordQuery) WithTake(take int) *RecordQuery {
	q.take = &take

	return q
}

// WithSkip skips the given number of records.
func (q *RecordQuery) WithSkip(skip int) *RecordQuery {
	q.skip = &skip

	return q
}

// Validate checks the query for values the API would reject.
func (q *RecordQuery) Validate() error {
	if q.take != nil && (*q.take < 1 || *q.take > MaxTake) {
		return NewValidationError("take must be between 1 and %d", MaxTake)
	}

	if q.skip != nil && *q.skip < 0 {
		return NewValidationError("skip cannot be negative")
	}

	if q.cellFormat != "" && q.cellFormat != "json" && q.cellFormat != "text" {
		return NewValidationError("cellFormat must be 'json' or 'text'")
	}

	return nil
}

// ToValues encodes the query as URL parameters. Structured values (filter,
// search) are JSON-serialized the way the API expects them.
func (q *RecordQuery) ToValues() url.Values {
	values := url.Values{}

	for _, field := range q.projection {
		values.Add("projection", field)
	}

	if q.cellFormat != "" {
		values.Set("cellFormat", q.cellFormat)
	}

	if q.fieldKeyType != "" {
		values.Set("fieldKeyType", q.fieldKeyType)
	}

	if q.viewID != "" {
		values.Set("viewId", q.viewID)
	}

	if q.ignoreViewQuery != nil {
		values.Set("ignoreViewQuery", strconv.FormatBool(*q.ignoreViewQuery))
	}

	if q.filterByTql != "" {
		values.Set("filterByTql", q.filterByTql)
	}

	if q.filter != nil {
		if encoded, err := json.Marshal(q.filter); err == nil {
			values.Set("filter", string(encoded))
		}
	}

	if len(q.search) > 0 {
		terms := make([][]string, 0, len(q.search))
		for _, term := range q.search {
			terms = append(terms, []string{term.Value, term.Field, strconv.FormatBool(term.Exact)})
		}

		if encoded, err := json.Marshal(terms); err == nil {
			values.Set("search", string(encoded))
		}
	}

	for _, id := range q.selectedRecordIDs {
		values.Add("selectedRecordIds", id)
	}

	if q.orderBy != "" {
		values.Set("orderBy", q.orderBy)
	}

	if q.groupBy != "" {
		values.Set("groupBy", q.groupBy)
	}

	if q.take != nil {
		values.Set("take", strconv.Itoa(*q.take))
	}

	if q.skip != nil {
		values.Set("skip", strconv.Itoa(*q.skip))
	}

	return values
}
