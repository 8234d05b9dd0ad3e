package queries

import "market-admin/internal/usecase/tableview"

// TableQuery is the paging and sorting state of one table view.
type TableQuery struct {
	PageIndex int
	PageSize  int
	Sort      tableview.Sort
	Search    string
	Status    string
}

func (q TableQuery) pagination() tableview.Pagination {
	return tableview.NewPagination(q.PageIndex, q.PageSize, 0)
}
