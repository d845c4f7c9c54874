package dto_test

import (
	"testing"

	"lodge/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestPagination_FromQuery(t *testing.T) {
	tests := []struct {
		name      string
		params    dto.QueryParams
		total     int
		wantPages int
	}{
		{
			name:      "even division",
			params:    dto.QueryParams{Page: 1, Limit: 10},
			total:     20,
			wantPages: 2,
		},
		{
			name:      "partial last page rounds up",
			params:    dto.QueryParams{Page: 1, Limit: 10},
			total:     21,
			wantPages: 3,
		},
		{
			name:      "empty result still has one page",
			params:    dto.QueryParams{Page: 1, Limit: 10},
			total:     0,
			wantPages: 1,
		},
		{
			name:      "zero limit does not divide by zero",
			params:    dto.QueryParams{Page: 1, Limit: 0},
			total:     50,
			wantPages: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := dto.Pagination{}
			p.FromQuery(tt.params, tt.total)

			assert.Equal(t, tt.params.Page, p.Page)
			assert.Equal(t, tt.params.Limit, p.Limit)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.wantPages, p.Pages)
		})
	}
}
