package domain

type Pagination struct {
	Page     int
	PageSize int
}

func (p Pagination) Limit() int {
	return p.PageSize
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Metadata describes the page p selects out of totalRecords. LastPage is 0 when there are no
// records.
func (p Pagination) Metadata(totalRecords int) *Metadata {
	return &Metadata{
		CurrentPage:  p.Page,
		FirstPage:    1,
		LastPage:     (totalRecords + p.PageSize - 1) / p.PageSize,
		PageSize:     p.PageSize,
		TotalRecords: totalRecords,
	}
}

type Metadata struct {
	CurrentPage  int
	FirstPage    int
	LastPage     int
	PageSize     int
	TotalRecords int
}
