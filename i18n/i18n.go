// Package i18n holds the user-facing message catalog. The shop runs in
// Vietnamese; English is kept for foreign staff. Unknown codes fall back to
// the code itself so a missing translation is visible instead of silent.
package i18n

import (
	"fmt"
	"strings"
)

const DefaultLang = "vi"

var messages = map[string]map[string]string{
	"vi": {
		"select_at_least_one":   "Vui lòng chọn ít nhất 1 sản phẩm!",
		"enter_weight_for":      "Vui lòng nhập cân nặng cho: %s",
		"enter_weight_all":      "Vui lòng nhập cân nặng cho tất cả sản phẩm!",
		"enter_customer_phone":  "Vui lòng nhập số điện thoại khách hàng!",
		"cart_empty":            "Giỏ hàng trống!",
		"load_failed":           "Không thể tải dữ liệu. Vui lòng thử lại!",
		"order_success":         "Tạo đơn hàng thành công! Mã đơn: %s",
		"order_failed":          "Tạo đơn hàng thất bại: %s",
		"please_sign_in":        "Phiên làm việc đã hết hạn. Vui lòng đăng nhập lại.",
		"permission_denied":     "Bạn không có quyền thực hiện thao tác này.",
		"processing":            "Đang xử lý...",
		"required":              "bắt buộc",
		"must_be_positive":      "phải lớn hơn 0",
		"must_not_be_negative":  "không được âm",
		"exceeds_maximum":       "vượt quá giá trị cho phép",
		"validation_failed":     "Dữ liệu không hợp lệ: %s",
		"draft_held":            "Đã lưu đơn tạm: %s",
		"draft_recalled":        "Đã mở lại đơn tạm: %s",
	},
	"en": {
		"select_at_least_one":   "Please select at least 1 product!",
		"enter_weight_for":      "Please enter a weight for: %s",
		"enter_weight_all":      "Please enter a weight for every product!",
		"enter_customer_phone":  "Please enter the customer's phone number!",
		"cart_empty":            "Cart is empty!",
		"load_failed":           "Could not load data. Please try again!",
		"order_success":         "Order created! Code: %s",
		"order_failed":          "Order submission failed: %s",
		"please_sign_in":        "Session expired. Please sign in again.",
		"permission_denied":     "You do not have permission for this action.",
		"processing":            "Processing...",
		"required":              "required",
		"must_be_positive":      "must be greater than 0",
		"must_not_be_negative":  "must not be negative",
		"exceeds_maximum":       "exceeds the allowed maximum",
		"validation_failed":     "Invalid input: %s",
		"draft_held":            "Draft held: %s",
		"draft_recalled":        "Draft recalled: %s",
	},
}

// DetectLanguage maps a locale string (LANG env var or Accept-Language style)
// to a supported language, defaulting to Vietnamese.
func DetectLanguage(locale string) string {
	l := strings.ToLower(strings.TrimSpace(locale))
	switch {
	case strings.HasPrefix(l, "en"):
		return "en"
	case strings.HasPrefix(l, "vi"):
		return "vi"
	default:
		return DefaultLang
	}
}

// T returns the translation of code in lang. Unknown languages fall back to
// the default language; unknown codes fall back to the code itself.
func T(lang, code string) string {
	if m, ok := messages[lang]; ok {
		if s, ok := m[code]; ok {
			return s
		}
	}
	if s, ok := messages[DefaultLang][code]; ok {
		return s
	}
	return code
}

// Tf is T with fmt.Sprintf arguments.
func Tf(lang, code string, args ...any) string {
	return fmt.Sprintf(T(lang, code), args...)
}
