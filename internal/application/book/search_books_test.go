package book

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/dgsw/bookice/internal/domain/book"
)

// stubSearchService 只实现搜索方法的领域服务替身
// 记录收到的分页参数,用于验证归一化逻辑
type stubSearchService struct {
	domain.Service

	gotKeyword string
	gotPage    domain.PageRequest
	books      []*domain.Book
	total      int64
}

func (s *stubSearchService) SearchByKeyword(_ context.Context, keyword string, page domain.PageRequest) ([]*domain.Book, int64, error) {
	s.gotKeyword = keyword
	s.gotPage = page
	return s.books, s.total, nil
}

func (s *stubSearchService) SearchByConditions(_ context.Context, _, _, _ string, page domain.PageRequest) ([]*domain.Book, int64, error) {
	s.gotPage = page
	return s.books, s.total, nil
}

// TestSearchPageNormalization 测试分页参数归一化
func TestSearchPageNormalization(t *testing.T) {
	tests := []struct {
		name string
		in   PageRequest
		want domain.PageRequest
	}{
		{
			name: "全部缺省时使用默认值",
			in:   PageRequest{},
			want: domain.PageRequest{Page: 1, PageSize: 10, Sort: "created_at", Order: "desc"},
		},
		{
			name: "页码小于1回落到1",
			in:   PageRequest{Page: -3, PageSize: 20},
			want: domain.PageRequest{Page: 1, PageSize: 20, Sort: "created_at", Order: "desc"},
		},
		{
			name: "每页数量超上限截断到100",
			in:   PageRequest{Page: 2, PageSize: 500},
			want: domain.PageRequest{Page: 2, PageSize: 100, Sort: "created_at", Order: "desc"},
		},
		{
			name: "显式排序参数原样透传",
			in:   PageRequest{Page: 3, PageSize: 5, Sort: "price", Order: "asc"},
			want: domain.PageRequest{Page: 3, PageSize: 5, Sort: "price", Order: "asc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubSearchService{}
			uc := NewSearchBooksUseCase(stub)

			_, err := uc.Keyword(context.Background(), KeywordSearchRequest{Page: tt.in})
			require.NoError(t, err)

			assert.Equal(t, tt.want, stub.gotPage)
		})
	}
}

// TestSearchResultEnvelope 测试分页结果封装
func TestSearchResultEnvelope(t *testing.T) {
	b := domain.NewBook("Go语言实战", "张三", "编程", "", "", 25000, 10, "")
	b.ID = 7

	stub := &stubSearchService{books: []*domain.Book{b}, total: 42}
	uc := NewSearchBooksUseCase(stub)

	result, err := uc.Keyword(context.Background(), KeywordSearchRequest{
		Keyword: "Go",
		Page:    PageRequest{Page: 2, PageSize: 10},
	})
	require.NoError(t, err)

	assert.Equal(t, "Go", stub.gotKeyword)
	assert.Equal(t, int64(42), result.Total)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 10, result.PageSize)
	require.Len(t, result.List, 1)
	assert.Equal(t, uint(7), result.List[0].ID)
	assert.Equal(t, "Go语言实战", result.List[0].Title)
}

// TestConditionSearchPassthrough 测试组合条件搜索透传
func TestConditionSearchPassthrough(t *testing.T) {
	stub := &stubSearchService{total: 0}
	uc := NewSearchBooksUseCase(stub)

	result, err := uc.Conditions(context.Background(), ConditionSearchRequest{
		Title:    "Go",
		Category: "编程",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PageRequest{Page: 1, PageSize: 10, Sort: "created_at", Order: "desc"}, stub.gotPage)
	assert.Empty(t, result.List)
	assert.Equal(t, int64(0), result.Total)
}
