package request

import (
	"market-admin/internal/usecase/queries"
	"market-admin/internal/usecase/tableview"
)

// TableQuery is the query string shared by every table endpoint.
type TableQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=0"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=200"`
	Sort     string `form:"sort"`
	Desc     bool   `form:"desc"`
	Search   string `form:"search"`
	Status   string `form:"status"`
}

func (q TableQuery) ToQuery() queries.TableQuery {
	return queries.TableQuery{
		PageIndex: q.Page,
		PageSize:  q.PageSize,
		Sort:      tableview.Sort{Key: q.Sort, Desc: q.Desc},
		Search:    q.Search,
		Status:    q.Status,
	}
}

type StartDateQuery struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
}
