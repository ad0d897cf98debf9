package repository

import (
	"strings"

	"gorm.io/gorm"
)

// buildOrderClause 解析 ordering 参数（逗号分隔，"-" 前缀表示降序），
// 仅接受白名单字段，未知字段直接忽略，最后追加主键降序保证分页稳定。
func buildOrderClause(raw string, allowed map[string]string, fallback, primaryKey string) string {
	parts := make([]string, 0, 4)
	seen := make(map[string]struct{})
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		direction := "ASC"
		if strings.HasPrefix(field, "-") {
			direction = "DESC"
			field = strings.TrimPrefix(field, "-")
		}
		column, ok := allowed[field]
		if !ok {
			continue
		}
		if _, dup := seen[column]; dup {
			continue
		}
		seen[column] = struct{}{}
		parts = append(parts, column+" "+direction)
	}
	if len(parts) == 0 && fallback != "" {
		parts = append(parts, fallback)
	}
	if primaryKey != "" {
		if _, ok := seen[primaryKey]; !ok {
			parts = append(parts, primaryKey+" DESC")
		}
	}
	return strings.Join(parts, ", ")
}

// pageWindow 将页码换算为 LIMIT/OFFSET，pageSize 非正时不分页
func pageWindow(page, pageSize int) (limit, offset int, paged bool) {
	if pageSize <= 0 {
		return 0, 0, false
	}
	if page < 1 {
		page = 1
	}
	return pageSize, (page - 1) * pageSize, true
}

// countAndFind 先按过滤条件统计总数，再按排序取当前页；
// orderBy 由 buildOrderClause 生成并以主键收尾，翻页结果不重不漏
func countAndFind(query *gorm.DB, orderBy string, page, pageSize int, dest interface{}) (int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	if limit, offset, paged := pageWindow(page, pageSize); paged {
		if int64(offset) >= total {
			return total, nil
		}
		query = query.Limit(limit).Offset(offset)
	}
	if orderBy != "" {
		query = query.Order(orderBy)
	}
	if err := query.Find(dest).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// findOne 取单条记录，未找到返回 false 且不返回错误
func findOne(query *gorm.DB, dest interface{}) (bool, error) {
	if err := query.Take(dest).Error; err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
