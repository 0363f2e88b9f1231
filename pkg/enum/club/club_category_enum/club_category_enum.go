package club_category_enum

// 社团类别
const (
	ACADEMIC   = "ACADEMIC"
	SPORTS     = "SPORTS"
	CULTURAL   = "CULTURAL"
	TECHNOLOGY = "TECHNOLOGY"
	SOCIAL     = "SOCIAL"
)

// Valid 校验类别是否在枚举范围内
func Valid(category string) bool {
	switch category {
	case ACADEMIC, SPORTS, CULTURAL, TECHNOLOGY, SOCIAL:
		return true
	}
	return false
}
