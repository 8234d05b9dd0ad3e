package tableview

import (
	"slices"
	"time"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 200
)

type Pagination struct {
	PageIndex int `json:"page_index"`
	PageSize  int `json:"page_size"`
	TotalRows int `json:"total_rows"`
}

// NewPagination clamps the page size into (0, MaxPageSize] and the index to >= 0.
func NewPagination(pageIndex, pageSize, totalRows int) Pagination {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if pageIndex < 0 {
		pageIndex = 0
	}
	if totalRows < 0 {
		totalRows = 0
	}
	return Pagination{PageIndex: pageIndex, PageSize: pageSize, TotalRows: totalRows}
}

func (p Pagination) Offset() int {
	return p.PageIndex * p.PageSize
}

func (p Pagination) PageCount() int {
	if p.PageSize <= 0 || p.TotalRows == 0 {
		return 0
	}
	return (p.TotalRows + p.PageSize - 1) / p.PageSize
}

func (p Pagination) HasNext() bool {
	return p.PageIndex+1 < p.PageCount()
}

func (p Pagination) HasPrevious() bool {
	return p.PageIndex > 0
}

// WithTotal returns p with the row count reported by the latest fetch.
func (p Pagination) WithTotal(total int) Pagination {
	p.TotalRows = max(total, 0)
	return p
}

type Tone string

const (
	ToneSuccess Tone = "success"
	ToneMuted   Tone = "muted"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
	ToneInfo    Tone = "info"
)

type Badge struct {
	Label string `json:"label"`
	Tone  Tone   `json:"tone"`
}

type Cell struct {
	Text      string `json:"text"`
	Secondary string `json:"secondary,omitempty"`
	Badge     *Badge `json:"badge,omitempty"`
	Link      string `json:"link,omitempty"`
	Image     string `json:"image,omitempty"`
}

// Plain flattens a cell for non-HTML outputs such as spreadsheets.
func (c Cell) Plain() string {
	text := c.Text
	if text == "" && c.Badge != nil {
		text = c.Badge.Label
	}
	if c.Secondary != "" {
		text += " / " + c.Secondary
	}
	return text
}

// Column renders one display column from an entity. Less, when set, makes it sortable.
type Column[T any] struct {
	Key    string
	Header string
	Render func(row T, now time.Time) Cell
	Less   func(a, b T) bool
}

type Sort struct {
	Key  string `json:"key"`
	Desc bool   `json:"desc"`
}

type Header struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Sortable bool   `json:"sortable"`
	Sorted   string `json:"sorted,omitempty"`
}

type Row struct {
	Cells []Cell `json:"cells"`
}

type Table struct {
	Columns    []Header   `json:"columns"`
	Rows       []Row      `json:"rows"`
	Pagination Pagination `json:"pagination"`
	PageCount  int        `json:"page_count"`
}

// Build renders entities as the current page. It does not fetch and never mutates
// entities; sorting applies to a copy.
func Build[T any](entities []T, columns []Column[T], page Pagination, sort Sort, now time.Time) Table {
	headers, ordered := sortRows(entities, columns, sort)
	return Table{
		Columns:    headers,
		Rows:       render(ordered, columns, now),
		Pagination: page,
		PageCount:  page.PageCount(),
	}
}

// BuildLocal is Build for lists fetched whole: it sorts all entities, then cuts out
// the requested page and reports the full length as TotalRows.
func BuildLocal[T any](entities []T, columns []Column[T], page Pagination, sort Sort, now time.Time) Table {
	headers, ordered := sortRows(entities, columns, sort)
	page = page.WithTotal(len(ordered))
	start := min(page.Offset(), len(ordered))
	end := min(start+page.PageSize, len(ordered))
	return Table{
		Columns:    headers,
		Rows:       render(ordered[start:end], columns, now),
		Pagination: page,
		PageCount:  page.PageCount(),
	}
}

func sortRows[T any](entities []T, columns []Column[T], sort Sort) ([]Header, []T) {
	ordered := entities
	headers := make([]Header, len(columns))
	for i, col := range columns {
		headers[i] = Header{Key: col.Key, Title: col.Header, Sortable: col.Less != nil}
		if col.Key != sort.Key || col.Less == nil {
			continue
		}
		headers[i].Sorted = "asc"
		less := col.Less
		if sort.Desc {
			headers[i].Sorted = "desc"
			less = func(a, b T) bool { return col.Less(b, a) }
		}
		ordered = slices.Clone(entities)
		slices.SortStableFunc(ordered, func(a, b T) int {
			switch {
			case less(a, b):
				return -1
			case less(b, a):
				return 1
			default:
				return 0
			}
		})
		break
	}
	return headers, ordered
}

func render[T any](entities []T, columns []Column[T], now time.Time) []Row {
	rows := make([]Row, 0, len(entities))
	for _, entity := range entities {
		cells := make([]Cell, len(columns))
		for i, col := range columns {
			cells[i] = col.Render(entity, now)
		}
		rows = append(rows, Row{Cells: cells})
	}
	return rows
}
