package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewBook 测试图书创建
func TestNewBook(t *testing.T) {
	b := NewBook("Go语言实战", "张三", "编程", "测试出版社", "9791234567890", 25000, 10, "实战教程")

	assert.Equal(t, "Go语言实战", b.Title)
	assert.Equal(t, "张三", b.Author)
	assert.Equal(t, "编程", b.Category)
	assert.Equal(t, "测试出版社", b.Publisher)
	assert.Equal(t, "9791234567890", b.ISBN)
	assert.Equal(t, 25000, b.Price)
	assert.Equal(t, 10, b.StockQuantity)
	assert.False(t, b.CreatedAt.IsZero(), "创建时间应该被设置")
	assert.Equal(t, b.CreatedAt, b.UpdatedAt, "新建图书的创建时间与更新时间应该一致")
}

// TestBookUpdate 测试图书信息整体替换
func TestBookUpdate(t *testing.T) {
	t.Run("正常修改", func(t *testing.T) {
		b := NewBook("旧书名", "旧作者", "旧分类", "旧出版社", "", 1000, 5, "旧描述")
		oldUpdatedAt := b.UpdatedAt
		time.Sleep(10 * time.Millisecond)

		err := b.Update("新书名", "新作者", "新分类", "新出版社", 2000, "新描述")
		require.NoError(t, err)

		assert.Equal(t, "新书名", b.Title)
		assert.Equal(t, "新作者", b.Author)
		assert.Equal(t, "新分类", b.Category)
		assert.Equal(t, "新出版社", b.Publisher)
		assert.Equal(t, 2000, b.Price)
		assert.Equal(t, "新描述", b.Description)
		assert.True(t, b.UpdatedAt.After(oldUpdatedAt), "更新时间应该被刷新")
	})

	t.Run("可选字段允许置空", func(t *testing.T) {
		b := NewBook("书名", "作者", "分类", "出版社", "", 1000, 5, "描述")

		err := b.Update("书名", "作者", "分类", "", 1000, "")
		require.NoError(t, err)

		assert.Empty(t, b.Publisher, "出版社应该被清空")
		assert.Empty(t, b.Description, "描述应该被清空")
	})

	t.Run("负数价格应失败", func(t *testing.T) {
		b := NewBook("书名", "作者", "分类", "", "", 1000, 5, "")

		err := b.Update("书名", "作者", "分类", "", -1, "")
		assert.ErrorIs(t, err, ErrInvalidPrice)
		assert.Equal(t, 1000, b.Price, "修改失败时价格应该不变")
	})

	t.Run("修改不影响ISBN与库存", func(t *testing.T) {
		b := NewBook("书名", "作者", "分类", "", "9791234567890", 1000, 5, "")

		err := b.Update("新书名", "作者", "分类", "", 2000, "")
		require.NoError(t, err)

		assert.Equal(t, "9791234567890", b.ISBN)
		assert.Equal(t, 5, b.StockQuantity)
	})
}

// TestIncreaseStock 测试库存增加
func TestIncreaseStock(t *testing.T) {
	t.Run("正常增加", func(t *testing.T) {
		b := NewBook("书名", "作者", "分类", "", "", 1000, 10, "")

		err := b.IncreaseStock(5)
		require.NoError(t, err)
		assert.Equal(t, 15, b.StockQuantity)
	})

	t.Run("数量为0应失败", func(t *testing.T) {
		b := NewBook("书名", "作者", "分类", "", "", 1000, 10, "")

		err := b.IncreaseStock(0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		assert.Equal(t, 10, b.StockQuantity)
	})

	t.Run("负数数量应失败", func(t *testing.T) {
		b := NewBook("书名", "作者", "分类", "", "", 1000, 10, "")

		err := b.IncreaseStock(-3)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		assert.Equal(t, 10, b.StockQuantity)
	})
}

// TestDecreaseStock 测试库存扣减
func TestDecreaseStock(t *testing.T) {
	t.Run("正常扣减", func(t *testing.T) {
		b := NewBook("书名", "作者", "分类", "", "", 1000, 10, "")

		err := b.DecreaseStock(3)
		require.NoError(t, err)
		assert.Equal(t, 7, b.StockQuantity)
	})

	t.Run("扣减到0", func(t *testing.T) {
		b := NewBook("书名", "作者", "分类", "", "", 1000, 10, "")

		err := b.DecreaseStock(10)
		require.NoError(t, err)
		assert.Equal(t, 0, b.StockQuantity)
		assert.False(t, b.InStock(), "库存为0时应视为无库存")
	})

	t.Run("超量扣减应失败且库存不变", func(t *testing.T) {
		b := NewBook("书名", "作者", "分类", "", "", 1000, 10, "")

		err := b.DecreaseStock(11)
		assert.ErrorIs(t, err, ErrInsufficientStock)
		assert.Equal(t, 10, b.StockQuantity, "扣减失败时库存应该不变")
	})

	t.Run("数量为0应失败", func(t *testing.T) {
		b := NewBook("书名", "作者", "分类", "", "", 1000, 10, "")

		err := b.DecreaseStock(0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		assert.Equal(t, 10, b.StockQuantity)
	})
}

// TestInStock 测试有货判断
func TestInStock(t *testing.T) {
	b := NewBook("书名", "作者", "分类", "", "", 1000, 0, "")
	assert.False(t, b.InStock(), "库存0应视为无货")

	require.NoError(t, b.IncreaseStock(1))
	assert.True(t, b.InStock(), "库存1应视为有货")
}

// TestStockRoundTrip 测试增减往返
func TestStockRoundTrip(t *testing.T) {
	b := NewBook("书名", "作者", "分类", "", "", 1000, 0, "")

	require.NoError(t, b.IncreaseStock(20))
	require.NoError(t, b.DecreaseStock(8))
	require.NoError(t, b.DecreaseStock(12))

	assert.Equal(t, 0, b.StockQuantity)
}
